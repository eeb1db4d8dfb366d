//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

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

type SlotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSlotCommands
	mockQueries  *queriesmock.MockSlotQueries
	handler      *api.SlotHandler
	userID       uuid.UUID
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSlotCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSlotQueries(s.mockCtrl)
	s.handler = api.NewSlotHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleTutor)
		c.Next()
	}

	s.router.GET("/slots", s.handler.ListSlots)
	s.router.GET("/slots/:id", s.handler.GetSlot)
	s.router.POST("/slots", authMiddleware, s.handler.CreateSlot)
	s.router.PATCH("/slots/:id", authMiddleware, s.handler.UpdateSlot)
	s.router.DELETE("/slots/:id", authMiddleware, s.handler.DeleteSlot)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

func (s *SlotHandlerTestSuite) TestCreateSlot() {
	url := "/slots"
	start := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	reqBody := map[string]any{
		"start_at": start.Format(time.RFC3339),
		"end_at":   start.Add(time.Hour).Format(time.RFC3339),
	}

	s.Run("success: returns 201 with the new slot id", func() {
		slotID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			Return(&commands.CreateSlotResult{SlotID: slotID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(slotID.String(), body.ID)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 404 when caller has no tutor profile", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, commands.ErrTutorProfileNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Tutor profile not found")
	})
}

func (s *SlotHandlerTestSuite) TestUpdateSlot() {
	s.Run("success: returns 200 with the updated slot", func() {
		view := builder.NewSlotBuilder().BuildView()
		url := "/slots/" + view.ID.String()
		reqBody := map[string]any{"end_at": view.EndAt.Format(time.RFC3339)}

		gomock.InOrder(
			s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any(), s.userID).
				Return(nil).Times(1),
			s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
				Return(view, nil).Times(1),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var body resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal("OPEN", body.Status)
	})

	s.Run("error: 400 when the slot is booked", func() {
		slotID := uuid.New()
		s.mockCommands.EXPECT().Update(gomock.Any(), slotID, gomock.Any(), s.userID).
			Return(commands.ErrSlotBooked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/slots/"+slotID.String(), map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Booked slots cannot be modified")
	})

	s.Run("error: 404 when the slot does not exist", func() {
		slotID := uuid.New()
		s.mockCommands.EXPECT().Update(gomock.Any(), slotID, gomock.Any(), s.userID).
			Return(commands.ErrSlotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/slots/"+slotID.String(), map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Slot not found")
	})

	s.Run("error: 400 for malformed slot id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/slots/not-a-uuid", map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *SlotHandlerTestSuite) TestDeleteSlot() {
	s.Run("success: returns 200 with a confirmation message", func() {
		slotID := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), slotID, s.userID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/slots/"+slotID.String(), nil, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Slot deleted", body["message"])
	})

	s.Run("error: 400 when the slot is booked", func() {
		slotID := uuid.New()
		s.mockCommands.EXPECT().Delete(gomock.Any(), slotID, s.userID).
			Return(commands.ErrSlotBooked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/slots/"+slotID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Booked slots cannot be modified")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/slots/"+uuid.New().String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *SlotHandlerTestSuite) TestGetSlot() {
	s.Run("success: returns the slot", func() {
		view := builder.NewSlotBuilder().BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots/"+view.ID.String(), nil, "")

		var body resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
	})

	s.Run("error: 404 when not found", func() {
		slotID := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), slotID).
			Return(nil, queries.ErrSlotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots/"+slotID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Slot not found")
	})
}

func (s *SlotHandlerTestSuite) TestListSlots() {
	s.Run("success: returns paged slots", func() {
		v1 := builder.NewSlotBuilder().BuildView()
		v2 := builder.NewSlotBuilder().BuildView()
		info := queries.PageInfo{Total: 2, Page: 1, Limit: 10, TotalPages: 1}

		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]*queries.SlotView{v1, v2}, info, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?page=1&limit=10", nil, "")

		var body resdto.SlotListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Slots, 2)
		s.Equal(int64(2), body.Meta.Total)
	})

	s.Run("error: 400 for invalid status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?status=PENDING", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
