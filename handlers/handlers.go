// handlers.go - Shared helpers for the resource handlers
// Every error response uses the same envelope: {"message": <string>}.

package handlers // Declares the package name

import ( // Import required packages
	"net/http" // HTTP status codes
	"strconv"  // Path parameter parsing

	"github.com/gin-gonic/gin" // Gin web framework
)

// paramID parses the :id path parameter. On a malformed id it writes a 400
// response and reports false; callers must return immediately.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// storeError turns an unexpected store failure into a 500 response instead
// of letting it crash the request.
func storeError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}
