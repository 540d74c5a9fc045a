package response

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const timestampLayout = "2006-01-02T15:04:05"

// ErrorBody là uniform error body cho mọi domain error ở API boundary
type ErrorBody struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Reason    string `json:"reason"`
	Path      string `json:"path"`
}

// statusName đổi status text sang dạng hằng số: "Not Found" => "NOT_FOUND"
func statusName(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

// Error ghi error body với status cho trước và abort request
func Error(c *gin.Context, status int, reason string) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Timestamp: time.Now().Format(timestampLayout),
		Status:    status,
		Error:     statusName(status),
		Reason:    reason,
		Path:      c.Request.URL.Path,
	})
}

func BadRequest(c *gin.Context, reason string) {
	Error(c, http.StatusBadRequest, reason)
}

func NotFound(c *gin.Context, reason string) {
	Error(c, http.StatusNotFound, reason)
}

func Conflict(c *gin.Context, reason string) {
	Error(c, http.StatusConflict, reason)
}

func InternalServerError(c *gin.Context, reason string) {
	Error(c, http.StatusInternalServerError, reason)
}
