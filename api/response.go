package api

import (
	"net/http"

	"nhatro/config"

	"github.com/gin-gonic/gin"
)

// ListResponse bọc danh sách dạng { data: [...] }
type ListResponse struct {
	Data interface{} `json:"data"`
}

// ItemsResponse bọc danh sách dạng { items: [...] }
type ItemsResponse struct {
	Items interface{} `json:"items"`
}

// UserPageResponse phân trang phía server cho tài nguyên người dùng
type UserPageResponse struct {
	Users interface{} `json:"users"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// Error trả lỗi với thông điệp đọc được
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// BadRequest lỗi 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// ValidationError lỗi 400 với nhiều thông điệp; client sẽ nối bằng ", "
func ValidationError(c *gin.Context, messages []string) {
	if len(messages) == 1 {
		BadRequest(c, messages[0])
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"message": messages})
}

// NotFound lỗi 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError lỗi 500
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// SafeErrorMessage ở chế độ release không lộ chi tiết lỗi nội bộ
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}
