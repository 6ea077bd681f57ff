package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"rolehub/internal/shared/constants"
	"rolehub/internal/shared/errors"
)

// Pagination holds validated pagination parameters.
type Pagination struct {
	Page int
	Size int
}

// Offset returns the row offset for the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Size
}

// ValidatePagination checks explicit pagination parameters. Unlike a
// normalizing helper, out-of-range values are rejected so a caller mistake
// never silently returns a different page than requested.
func ValidatePagination(page, size int) (Pagination, error) {
	if page < 1 {
		return Pagination{}, errors.NewValidationError("invalid pagination",
			fmt.Sprintf("page must be >= 1, got %d", page))
	}
	if size < 1 || size > constants.MaxPageSize {
		return Pagination{}, errors.NewValidationError("invalid pagination",
			fmt.Sprintf("size must be between 1 and %d, got %d", constants.MaxPageSize, size))
	}
	return Pagination{Page: page, Size: size}, nil
}

// ParsePagination parses page/size query parameters from the Gin context.
// Missing parameters fall back to defaults; present but malformed or
// out-of-range values are an error.
func ParsePagination(c *gin.Context) (Pagination, error) {
	page, err := parseQueryInt(c, "page", constants.DefaultPage)
	if err != nil {
		return Pagination{}, err
	}
	size, err := parseQueryInt(c, "size", constants.DefaultPageSize)
	if err != nil {
		return Pagination{}, err
	}
	return ValidatePagination(page, size)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) (int, error) {
	val := c.Query(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, errors.NewValidationError("invalid pagination",
			fmt.Sprintf("%s must be an integer, got %q", key, val))
	}
	return n, nil
}

// TotalPages calculates the number of pages for a given total count.
func TotalPages(total int64, size int) int {
	if size == 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}
