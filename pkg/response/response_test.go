package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(t *testing.T, write func(c *gin.Context)) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	write(c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestOK_MergesPayloadAtTopLevel(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		OK(c, gin.H{"order_id": "NSH000007", "message": "Order placed successfully!"})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "NSH000007", body["order_id"])
	assert.Equal(t, "Order placed successfully!", body["message"])

	// Payload fields sit beside success, not nested under a data key
	_, nested := body["data"]
	assert.False(t, nested)
}

func TestFail_IsStillHTTP200(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Fail(c, "Your cart is empty.")
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Your cart is empty.", body["message"])
}

func TestMessage(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Message(c, "Logged out.")
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Logged out.", body["message"])
}

func TestUnauthorized_IsTheOnlyErrorStatus(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Unauthorized(c, "Please login first.")
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Please login first.", body["message"])
}
