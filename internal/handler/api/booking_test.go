//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"tutorhive/internal/domain/user"
	"tutorhive/internal/handler/api"
	resdto "tutorhive/internal/handler/dto/response"
	"tutorhive/internal/usecase/commands"
	"tutorhive/internal/usecase/queries"
	"tutorhive/tests/common/builder"
	"tutorhive/tests/common/httptest"
	commandsmock "tutorhive/tests/mock/commands"
	queriesmock "tutorhive/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleStudent)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings/my-bookings", authMiddleware, s.handler.ListMyBookings)
	s.router.GET("/bookings/my-bookings/:id", authMiddleware, s.handler.GetMyBooking)
	s.router.PATCH("/bookings/my-bookings/:id/cancel", authMiddleware, s.handler.CancelBooking)
	s.router.PATCH("/bookings/tutor-bookings/:id/complete", authMiddleware, s.handler.CompleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	s.Run("success: returns 201 with the created booking", func() {
		view := builder.NewBookingBuilder().WithStudentID(s.userID).BuildView()
		reqBody := map[string]any{"slot_id": view.SlotID.String()}

		s.mockCommands.EXPECT().Create(gomock.Any(), view.SlotID, s.userID).
			Return(&commands.BookingResult{BookingID: view.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetMyBooking(gomock.Any(), view.ID, s.userID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal("CONFIRMED", body.Status)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"slot_id": uuid.New().String()}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 400 when slot_id missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 when slot does not exist", func() {
		slotID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), slotID, s.userID).
			Return(nil, commands.ErrSlotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"slot_id": slotID.String()}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Slot not found")
	})

	s.Run("error: 409 when slot is already booked", func() {
		slotID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), slotID, s.userID).
			Return(nil, commands.ErrSlotUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"slot_id": slotID.String()}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no longer available")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	s.Run("success: returns 200 with the cancelled booking", func() {
		cancelledBy := "STUDENT"
		view := builder.NewBookingBuilder().WithStudentID(s.userID).BuildView()
		view.Status = "CANCELLED"
		view.CancelledBy = &cancelledBy

		s.mockCommands.EXPECT().Cancel(gomock.Any(), view.ID, gomock.Any(), s.userID).
			Return(&commands.BookingResult{BookingID: view.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetMyBooking(gomock.Any(), view.ID, s.userID).
			Return(view, nil).Times(1)

		url := "/bookings/my-bookings/" + view.ID.String() + "/cancel"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"reason": "sick"}, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CANCELLED", body.Status)
		s.NotNil(body.CancelledBy)
	})

	s.Run("success: cancel without body", func() {
		view := builder.NewBookingBuilder().WithStudentID(s.userID).BuildView()

		s.mockCommands.EXPECT().Cancel(gomock.Any(), view.ID, commands.CancelBookingRequest{}, s.userID).
			Return(&commands.BookingResult{BookingID: view.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetMyBooking(gomock.Any(), view.ID, s.userID).
			Return(view, nil).Times(1)

		url := "/bookings/my-bookings/" + view.ID.String() + "/cancel"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/my-bookings/not-a-uuid/cancel", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 404 when booking does not belong to caller", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, gomock.Any(), s.userID).
			Return(nil, commands.ErrBookingNotFound).Times(1)

		url := "/bookings/my-bookings/" + bookingID.String() + "/cancel"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: 400 when booking is completed", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, gomock.Any(), s.userID).
			Return(nil, commands.ErrBookingAlreadyCompleted).Times(1)

		url := "/bookings/my-bookings/" + bookingID.String() + "/cancel"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "cannot be cancelled")
	})
}

func (s *BookingHandlerTestSuite) TestCompleteBooking() {
	s.Run("success: returns 200 with the completed booking", func() {
		view := builder.NewBookingBuilder().BuildView()
		view.Status = "COMPLETED"

		s.mockCommands.EXPECT().Complete(gomock.Any(), view.ID, s.userID).
			Return(&commands.BookingResult{BookingID: view.ID}, nil).Times(1)
		s.mockQueries.EXPECT().GetTutorBooking(gomock.Any(), view.ID, s.userID).
			Return(view, nil).Times(1)

		url := "/bookings/tutor-bookings/" + view.ID.String() + "/complete"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("COMPLETED", body.Status)
	})

	s.Run("error: 400 when booking is cancelled", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().Complete(gomock.Any(), bookingID, s.userID).
			Return(nil, commands.ErrBookingAlreadyCancelled).Times(1)

		url := "/bookings/tutor-bookings/" + bookingID.String() + "/complete"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "cannot be completed")
	})

	s.Run("error: 404 when caller has no tutor profile", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().Complete(gomock.Any(), bookingID, s.userID).
			Return(nil, commands.ErrTutorProfileNotFound).Times(1)

		url := "/bookings/tutor-bookings/" + bookingID.String() + "/complete"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Tutor profile not found")
	})
}

func (s *BookingHandlerTestSuite) TestListMyBookings() {
	url := "/bookings/my-bookings"

	s.Run("success: returns paged bookings", func() {
		v1 := builder.NewBookingBuilder().WithStudentID(s.userID).BuildView()
		v2 := builder.NewBookingBuilder().WithStudentID(s.userID).BuildView()
		info := queries.PageInfo{Total: 2, Page: 1, Limit: 10, TotalPages: 1}

		s.mockQueries.EXPECT().ListMyBookings(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).
			Return([]*queries.BookingView{v1, v2}, info, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?page=1&limit=10", nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Bookings, 2)
		s.Equal(int64(2), body.Meta.Total)
	})

	s.Run("error: 400 for invalid status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=PENDING", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
