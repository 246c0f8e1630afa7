package api

import (
	"net/http"
	"strconv"

	"nhatro/database"
	"nhatro/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// UserHandler xử lý người dùng hệ thống
// Đây là tài nguyên duy nhất phân trang thật phía server
type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required"`
	Status   string `json:"status"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
	Password *string `json:"password"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UserStatsResponse thống kê người dùng cho thẻ tổng quan
type UserStatsResponse struct {
	Total    int64            `json:"total"`
	Active   int64            `json:"active"`
	Inactive int64            `json:"inactive"`
	ByRole   map[string]int64 `json:"byRole"`
}

// List trả về trang người dùng dạng { users, total, page, limit }
// Hỗ trợ lọc theo từ khóa, vai trò, trạng thái
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	query := database.DB.Model(&models.User{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ? OR phone LIKE ?", like, like, like)
	}
	if role := c.Query("role"); role != "" && role != "all" {
		query = query.Where("role = ?", role)
	}
	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	offset := (page - 1) * limit
	if err := query.Order("created_at").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể lấy danh sách người dùng"))
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, UserPageResponse{Users: users, Total: total, Page: page, Limit: limit})
}

// Get trả về một người dùng theo ID
func (h *UserHandler) Get(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy người dùng")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Stats thống kê người dùng theo trạng thái và vai trò
func (h *UserHandler) Stats(c *gin.Context) {
	stats := UserStatsResponse{ByRole: map[string]int64{}}
	database.DB.Model(&models.User{}).Count(&stats.Total)
	database.DB.Model(&models.User{}).Where("status = ?", models.UserActive).Count(&stats.Active)
	database.DB.Model(&models.User{}).Where("status = ?", models.UserInactive).Count(&stats.Inactive)
	for _, role := range models.UserRoles() {
		var n int64
		database.DB.Model(&models.User{}).Where("role = ?", role).Count(&n)
		stats.ByRole[role] = n
	}
	c.JSON(http.StatusOK, stats)
}

// Create thêm người dùng mới, mật khẩu được băm bcrypt trước khi lưu
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}
	if req.Status == "" {
		req.Status = models.UserActive
	}

	var msgs []string
	if !models.ValidUserRole(req.Role) {
		msgs = append(msgs, "Vai trò không hợp lệ")
	}
	if !models.ValidUserStatus(req.Status) {
		msgs = append(msgs, "Trạng thái người dùng không hợp lệ")
	}
	if len(msgs) > 0 {
		ValidationError(c, msgs)
		return
	}

	var existing int64
	database.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&existing)
	if existing > 0 {
		BadRequest(c, "Email đã được sử dụng")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể tạo người dùng"))
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
		Status:   req.Status,
		Password: string(hashed),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể tạo người dùng"))
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update cập nhật một phần thông tin người dùng
func (h *UserHandler) Update(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy người dùng")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	var msgs []string
	if req.Role != nil && !models.ValidUserRole(*req.Role) {
		msgs = append(msgs, "Vai trò không hợp lệ")
	}
	if req.Status != nil && !models.ValidUserStatus(*req.Status) {
		msgs = append(msgs, "Trạng thái người dùng không hợp lệ")
	}
	if req.Password != nil && len(*req.Password) < 6 {
		msgs = append(msgs, "Mật khẩu phải có ít nhất 6 ký tự")
	}
	if len(msgs) > 0 {
		ValidationError(c, msgs)
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			InternalError(c, SafeErrorMessage(err, "Không thể cập nhật người dùng"))
			return
		}
		user.Password = string(hashed)
	}

	if err := database.DB.Save(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể cập nhật người dùng"))
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateStatus khóa/kích hoạt tài khoản: PATCH /api/users/:id/status
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy người dùng")
		return
	}

	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}
	if !models.ValidUserStatus(req.Status) {
		BadRequest(c, "Trạng thái người dùng không hợp lệ")
		return
	}

	if err := database.DB.Model(&user).Update("status", req.Status).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể đổi trạng thái người dùng"))
		return
	}
	user.Status = req.Status
	c.JSON(http.StatusOK, user)
}

// Delete xóa người dùng (xóa mềm)
func (h *UserHandler) Delete(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy người dùng")
		return
	}
	if err := database.DB.Delete(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể xóa người dùng"))
		return
	}
	c.Status(http.StatusNoContent)
}
