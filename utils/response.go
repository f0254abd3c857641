package utils

import "github.com/gin-gonic/gin"

// JSONError writes the flat {"error": message} shape the API uses for every
// failure response.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
