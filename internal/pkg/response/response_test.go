package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, fn func(c *gin.Context)) (int, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestSuccess_MergesFields(t *testing.T) {
	code, body := render(t, func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"key": "rzp_test"})
	})
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "rzp_test", body["key"])
}

func TestErrorWithDetails(t *testing.T) {
	code, body := render(t, func(c *gin.Context) {
		ErrorWithDetails(c, http.StatusBadRequest, "Invalid amount", errors.New("amount must be greater than zero"))
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid amount", body["message"])
	assert.Equal(t, "amount must be greater than zero", body["error"])
}

func TestErrorWithDetails_NilError(t *testing.T) {
	_, body := render(t, func(c *gin.Context) {
		ErrorWithDetails(c, http.StatusInternalServerError, "boom", nil)
	})
	_, ok := body["error"]
	assert.False(t, ok)
}

func TestError(t *testing.T) {
	code, body := render(t, func(c *gin.Context) {
		Error(c, http.StatusBadRequest, "Payment verification failed")
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, map[string]any{"success": false, "message": "Payment verification failed"}, body)
}
