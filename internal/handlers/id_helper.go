package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// queryID reads a numeric id from the query string. Missing or malformed
// values return 0.
func queryID(c *gin.Context, name string) uint {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
