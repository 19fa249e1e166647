// Package response writes the storefront's uniform JSON envelope:
// {success: bool, message?: string, ...payload}.
//
// The envelope predates this service and is relied on by the deployed
// frontend: validation failures are reported as HTTP 200 with
// success=false, while missing/expired sessions are the only failures
// surfaced as HTTP 401. Keep that asymmetry.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with success=true and the given payload
// fields merged at the top level.
func OK(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Message writes a 200 response with success=true and a message.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// Fail writes a 200 response with success=false and a user-facing
// message. Used for validation and recoverable business failures.
func Fail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": false,
		"message": message,
	})
}

// Unauthorized writes a 401 response with success=false.
func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}
