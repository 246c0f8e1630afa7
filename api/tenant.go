package api

import (
	"net/http"

	"nhatro/database"
	"nhatro/models"

	"github.com/gin-gonic/gin"
)

// TenantHandler xử lý khách thuê
type TenantHandler struct{}

func NewTenantHandler() *TenantHandler {
	return &TenantHandler{}
}

type CreateTenantRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IDNumber  string `json:"idNumber"`
	RoomID    string `json:"roomId"`
	StartDate string `json:"startDate"`
	Status    string `json:"status"`
}

type UpdateTenantRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	IDNumber  *string `json:"idNumber"`
	RoomID    *string `json:"roomId"`
	StartDate *string `json:"startDate"`
	Status    *string `json:"status"`
}

// List trả về danh sách khách thuê dạng { data: [...] }
func (h *TenantHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.Tenant{})
	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR phone LIKE ? OR email LIKE ?", like, like, like)
	}

	var tenants []models.Tenant
	if err := query.Order("created_at").Find(&tenants).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể lấy danh sách khách thuê"))
		return
	}
	if tenants == nil {
		tenants = []models.Tenant{}
	}
	c.JSON(http.StatusOK, ListResponse{Data: tenants})
}

// Get trả về một khách thuê theo ID
func (h *TenantHandler) Get(c *gin.Context) {
	var tenant models.Tenant
	if err := database.DB.First(&tenant, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy khách thuê")
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// Create thêm khách thuê mới
func (h *TenantHandler) Create(c *gin.Context) {
	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}
	if req.Status == "" {
		req.Status = models.TenantActive
	}

	tenant := models.Tenant{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		IDNumber:  req.IDNumber,
		RoomID:    req.RoomID,
		StartDate: req.StartDate,
		Status:    req.Status,
	}
	if err := database.DB.Create(&tenant).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể thêm khách thuê"))
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// Update cập nhật một phần thông tin khách thuê
func (h *TenantHandler) Update(c *gin.Context) {
	var tenant models.Tenant
	if err := database.DB.First(&tenant, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy khách thuê")
		return
	}

	var req UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.Email != nil {
		tenant.Email = *req.Email
	}
	if req.Phone != nil {
		tenant.Phone = *req.Phone
	}
	if req.IDNumber != nil {
		tenant.IDNumber = *req.IDNumber
	}
	if req.RoomID != nil {
		tenant.RoomID = *req.RoomID
	}
	if req.StartDate != nil {
		tenant.StartDate = *req.StartDate
	}
	if req.Status != nil {
		tenant.Status = *req.Status
	}

	if err := database.DB.Save(&tenant).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể cập nhật khách thuê"))
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// Delete xóa khách thuê (xóa mềm)
func (h *TenantHandler) Delete(c *gin.Context) {
	var tenant models.Tenant
	if err := database.DB.First(&tenant, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy khách thuê")
		return
	}
	if err := database.DB.Delete(&tenant).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể xóa khách thuê"))
		return
	}
	c.Status(http.StatusNoContent)
}
