package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rolehub/internal/shared/constants"
	"rolehub/internal/shared/errors"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		size    int
		wantErr bool
	}{
		{name: "valid values", page: 2, size: 20},
		{name: "minimum bounds", page: 1, size: 1},
		{name: "maximum size", page: 1, size: constants.MaxPageSize},
		{name: "page zero", page: 0, size: 20, wantErr: true},
		{name: "negative page", page: -1, size: 20, wantErr: true},
		{name: "size zero", page: 1, size: 0, wantErr: true},
		{name: "size above maximum", page: 1, size: constants.MaxPageSize + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ValidatePagination(tt.page, tt.size)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.page, p.Page)
			assert.Equal(t, tt.size, p.Size)
		})
	}
}

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(query string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/?"+query, nil)
		return c
	}

	t.Run("defaults when absent", func(t *testing.T) {
		p, err := ParsePagination(newCtx(""))
		require.NoError(t, err)
		assert.Equal(t, constants.DefaultPage, p.Page)
		assert.Equal(t, constants.DefaultPageSize, p.Size)
	})

	t.Run("explicit values", func(t *testing.T) {
		p, err := ParsePagination(newCtx("page=3&size=10"))
		require.NoError(t, err)
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 10, p.Size)
		assert.Equal(t, 20, p.Offset())
	})

	t.Run("non-numeric page rejected", func(t *testing.T) {
		_, err := ParsePagination(newCtx("page=abc"))
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("out-of-range size rejected", func(t *testing.T) {
		_, err := ParsePagination(newCtx("size=500"))
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		size  int
		want  int
	}{
		{total: 0, size: 50, want: 0},
		{total: 1, size: 50, want: 1},
		{total: 50, size: 50, want: 1},
		{total: 51, size: 50, want: 2},
		{total: 101, size: 50, want: 3},
		{total: 10, size: 0, want: 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.size), "total=%d size=%d", tt.total, tt.size)
	}
}
