package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tutorhive/internal/domain/user"
	"tutorhive/internal/handler/api"
	"tutorhive/internal/handler/middleware"
	"tutorhive/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Slot     *api.SlotHandler
	Booking  *api.BookingHandler
	Review   *api.ReviewHandler
	Tutor    *api.TutorHandler
	Category *api.CategoryHandler
	User     *api.UserHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		slots := apiGroup.Group("/slots")
		{
			addRoutes(slots, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Slot.ListSlots},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Slot.GetSlot},
			})

			tutorOnly := slots.Group("")
			tutorOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleTutor))
			addRoutes(tutorOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Slot.CreateSlot},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Slot.UpdateSlot},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Slot.DeleteSlot},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			studentOnly := bookings.Group("")
			studentOnly.Use(authMiddleware.RequireRole(user.RoleStudent))
			addRoutes(studentOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "/my-bookings", Handler: h.Booking.ListMyBookings},
				{Method: http.MethodGet, Path: "/my-bookings/:id", Handler: h.Booking.GetMyBooking},
				{Method: http.MethodPatch, Path: "/my-bookings/:id/cancel", Handler: h.Booking.CancelBooking},
			})

			tutorOnly := bookings.Group("")
			tutorOnly.Use(authMiddleware.RequireRole(user.RoleTutor))
			addRoutes(tutorOnly, []route{
				{Method: http.MethodGet, Path: "/tutor-bookings", Handler: h.Booking.ListTutorBookings},
				{Method: http.MethodPatch, Path: "/tutor-bookings/:id/complete", Handler: h.Booking.CompleteBooking},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleStudent))
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.CreateReview},
			})
		}

		tutors := apiGroup.Group("/tutors")
		{
			addRoutes(tutors, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Tutor.ListTutors},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Tutor.GetTutor},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListTutorReviews},
				{Method: http.MethodGet, Path: "/:id/rating", Handler: h.Review.GetTutorRating},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: h.User.ListUsers},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.User.UpdateUserStatus},
			})
		}

		categories := apiGroup.Group("/categories")
		{
			addRoutes(categories, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Category.ListCategories},
			})

			adminOnly := categories.Group("")
			adminOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Category.CreateCategory},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
