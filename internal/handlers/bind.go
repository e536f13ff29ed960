package handlers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into obj. An empty body leaves obj at its
// zero value, the same as sending {}.
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
