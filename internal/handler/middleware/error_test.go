//go:build unit

package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tutorhive/internal/handler/httperr"
	"tutorhive/internal/handler/middleware"
	"tutorhive/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func performGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(rec, req)
	return rec
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("abort writes the error envelope", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/boom", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusConflict, errs.New("slot taken"), "Slot no longer available", nil)
		})

		rec := performGet(router, "/boom")

		assert.Equal(t, http.StatusConflict, rec.Code)
		var body errorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Slot no longer available", body.Error.Message)
	})

	t.Run("renders a recorded public error when nothing was written", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/deferred", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusBadRequest}
			resp.Error.Message = "Invalid request data"
			_ = c.Error(gin.Error{
				Err:  errs.New("validation failed"),
				Type: gin.ErrorTypePublic,
				Meta: resp,
			})
		})

		rec := performGet(router, "/deferred")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body errorEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Invalid request data", body.Error.Message)
	})

	t.Run("handler response passes through untouched", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		rec := performGet(router, "/ok")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})

	rec := performGet(router, "/panic")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error.Message)
}
