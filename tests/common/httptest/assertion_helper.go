//go:build unit || integration

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// AssertErrorResponse accepts both error body shapes the service emits:
// handlers abort with {"error":{"message":"..."}} while auth middleware
// writes a flat {"error":"..."}.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var errorResponse struct {
		Error json.RawMessage `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg == "" {
		return
	}

	var flat string
	if json.Unmarshal(errorResponse.Error, &flat) == nil {
		assert.Contains(t, flat, expectedErrorMsg,
			"Response error message doesn't contain expected text")
		return
	}

	var nested struct {
		Message string `json:"message"`
	}
	err = json.Unmarshal(errorResponse.Error, &nested)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error envelope: %s", w.Body.String()))
	assert.Contains(t, nested.Message, expectedErrorMsg,
		"Response error message doesn't contain expected text")
}
