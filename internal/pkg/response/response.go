package response

import "github.com/gin-gonic/gin"

// Success writes {"success": true, ...fields}.
func Success(c *gin.Context, statusCode int, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Error writes {"success": false, "message": message}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

// ErrorWithDetails also carries the underlying error text under "error".
func ErrorWithDetails(c *gin.Context, statusCode int, message string, err error) {
	body := gin.H{
		"success": false,
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(statusCode, body)
}
