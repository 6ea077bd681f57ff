package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rolehub/internal/shared/errors"
)

// ErrorInfo represents error information in an API response
type ErrorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ListResponse is the envelope every listing endpoint returns. The key names
// are a stable contract with the reporting UI.
type ListResponse struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Size  int         `json:"size"`
	Pages int         `json:"pages"`
}

// NewListResponse builds the envelope for one page of items.
func NewListResponse(items interface{}, total int64, p Pagination) ListResponse {
	return ListResponse{
		Items: items,
		Total: total,
		Page:  p.Page,
		Size:  p.Size,
		Pages: TotalPages(total, p.Size),
	}
}

// SuccessResponse sends a successful response with custom status code
func SuccessResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// CreatedResponse sends a created response
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// ListSuccessResponse sends one page of a listing with its envelope.
func ListSuccessResponse(c *gin.Context, items interface{}, total int64, p Pagination) {
	c.JSON(http.StatusOK, NewListResponse(items, total, p))
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": ErrorInfo{
		Type:    "error",
		Message: message,
	}})
}

// ErrorResponseWithError sends an error response based on error type
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, gin.H{"error": ErrorInfo{
			Type:    string(appErr.Type),
			Message: appErr.Message,
			Details: appErr.Details,
		}})
		return
	}

	// Do not expose internal error details to the client.
	c.JSON(http.StatusInternalServerError, gin.H{"error": ErrorInfo{
		Type:    string(errors.ErrorTypeInternal),
		Message: "Internal server error occurred",
	}})
}

// NoContentResponse sends a no content response
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
