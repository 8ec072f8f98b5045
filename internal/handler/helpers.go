package handler

import (
	"ceslar/internal/pagination"

	"github.com/gin-gonic/gin"
)

// pageRequest reads page, limit, cursor and sort from the query string.
func pageRequest(c *gin.Context) pagination.Request {
	return pagination.FromQuery(c.Request.URL.Query())
}

// cursorRequest is pageRequest for cursor-only endpoints.
func cursorRequest(c *gin.Context) pagination.Request {
	return pagination.FromCursorQuery(c.Request.URL.Query())
}
