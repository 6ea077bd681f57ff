package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"rolehub/internal/shared/errors"
)

// ParseUintParam parses a positive integer path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError(fmt.Sprintf("invalid %s", name), raw)
	}
	return uint(id), nil
}

// QueryUint parses an optional positive integer query parameter, returning
// nil when absent.
func QueryUint(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, errors.NewBadRequestError(fmt.Sprintf("invalid %s", name), raw)
	}
	v := uint(id)
	return &v, nil
}
