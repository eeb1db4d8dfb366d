package components

import (
	"tutorhive/internal/handler"
	"tutorhive/internal/handler/api"
	"tutorhive/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSlotHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewTutorHandler,
		api.NewCategoryHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	slot *api.SlotHandler,
	booking *api.BookingHandler,
	review *api.ReviewHandler,
	tutor *api.TutorHandler,
	category *api.CategoryHandler,
	user *api.UserHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Slot:     slot,
		Booking:  booking,
		Review:   review,
		Tutor:    tutor,
		Category: category,
		User:     user,
	}
}
