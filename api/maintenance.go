package api

import (
	"net/http"

	"nhatro/database"
	"nhatro/models"

	"github.com/gin-gonic/gin"
)

// MaintenanceHandler xử lý phiếu bảo trì
type MaintenanceHandler struct{}

func NewMaintenanceHandler() *MaintenanceHandler {
	return &MaintenanceHandler{}
}

type CreateMaintenanceRequest struct {
	EquipmentID     string `json:"equipmentId"`
	EquipmentName   string `json:"equipmentName" binding:"required"`
	MaintenanceType string `json:"maintenanceType" binding:"required"`
	Status          string `json:"status"`
	Description     string `json:"description"`
	StartDate       string `json:"startDate" binding:"required"`
	EndDate         string `json:"endDate"`
	AssignedTo      string `json:"assignedTo"`
	Priority        string `json:"priority"`
	Cost            int64  `json:"cost"`
	Notes           string `json:"notes"`
}

type UpdateMaintenanceRequest struct {
	EquipmentID     *string `json:"equipmentId"`
	EquipmentName   *string `json:"equipmentName"`
	MaintenanceType *string `json:"maintenanceType"`
	Status          *string `json:"status"`
	Description     *string `json:"description"`
	StartDate       *string `json:"startDate"`
	EndDate         *string `json:"endDate"`
	AssignedTo      *string `json:"assignedTo"`
	Priority        *string `json:"priority"`
	Cost            *int64  `json:"cost"`
	Notes           *string `json:"notes"`
}

func validMaintenanceType(t string) bool {
	return t == models.MaintenancePreventive || t == models.MaintenanceCorrective || t == models.MaintenancePredictive
}

func validMaintenanceStatus(s string) bool {
	switch s {
	case models.MaintenancePending, models.MaintenanceInProgress, models.MaintenanceCompleted, models.MaintenanceCancelled:
		return true
	}
	return false
}

func validPriority(p string) bool {
	return p == models.PriorityLow || p == models.PriorityMedium || p == models.PriorityHigh
}

// List trả về danh sách phiếu bảo trì dạng { items: [...] }
// Bộ lọc không hỗ trợ bị bỏ qua thay vì báo lỗi
func (h *MaintenanceHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.Maintenance{})
	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if mt := c.Query("maintenanceType"); mt != "" && mt != "all" {
		query = query.Where("maintenance_type = ?", mt)
	}
	if priority := c.Query("priority"); priority != "" && priority != "all" {
		query = query.Where("priority = ?", priority)
	}
	if equipmentID := c.Query("equipmentId"); equipmentID != "" {
		query = query.Where("equipment_id = ?", equipmentID)
	}
	if start := c.Query("start_date"); start != "" {
		query = query.Where("start_date >= ?", start)
	}
	if end := c.Query("end_date"); end != "" {
		query = query.Where("start_date <= ?", end)
	}

	var tickets []models.Maintenance
	if err := query.Order("created_at").Find(&tickets).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể lấy danh sách bảo trì"))
		return
	}
	if tickets == nil {
		tickets = []models.Maintenance{}
	}
	c.JSON(http.StatusOK, ItemsResponse{Items: tickets})
}

// Get trả về một phiếu bảo trì theo ID
func (h *MaintenanceHandler) Get(c *gin.Context) {
	var ticket models.Maintenance
	if err := database.DB.First(&ticket, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy phiếu bảo trì")
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// Create tạo phiếu bảo trì mới
func (h *MaintenanceHandler) Create(c *gin.Context) {
	var req CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}
	if req.Status == "" {
		req.Status = models.MaintenancePending
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}

	var msgs []string
	if !validMaintenanceType(req.MaintenanceType) {
		msgs = append(msgs, "Loại bảo trì không hợp lệ")
	}
	if !validMaintenanceStatus(req.Status) {
		msgs = append(msgs, "Trạng thái bảo trì không hợp lệ")
	}
	if !validPriority(req.Priority) {
		msgs = append(msgs, "Mức ưu tiên không hợp lệ")
	}
	if len(msgs) > 0 {
		ValidationError(c, msgs)
		return
	}

	ticket := models.Maintenance{
		EquipmentID:     req.EquipmentID,
		EquipmentName:   req.EquipmentName,
		MaintenanceType: req.MaintenanceType,
		Status:          req.Status,
		Description:     req.Description,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		AssignedTo:      req.AssignedTo,
		Priority:        req.Priority,
		Cost:            req.Cost,
		Notes:           req.Notes,
	}
	if err := database.DB.Create(&ticket).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể tạo phiếu bảo trì"))
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// Update cập nhật một phần phiếu bảo trì
func (h *MaintenanceHandler) Update(c *gin.Context) {
	var ticket models.Maintenance
	if err := database.DB.First(&ticket, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy phiếu bảo trì")
		return
	}

	var req UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	var msgs []string
	if req.MaintenanceType != nil && !validMaintenanceType(*req.MaintenanceType) {
		msgs = append(msgs, "Loại bảo trì không hợp lệ")
	}
	if req.Status != nil && !validMaintenanceStatus(*req.Status) {
		msgs = append(msgs, "Trạng thái bảo trì không hợp lệ")
	}
	if req.Priority != nil && !validPriority(*req.Priority) {
		msgs = append(msgs, "Mức ưu tiên không hợp lệ")
	}
	if len(msgs) > 0 {
		ValidationError(c, msgs)
		return
	}

	if req.EquipmentID != nil {
		ticket.EquipmentID = *req.EquipmentID
	}
	if req.EquipmentName != nil {
		ticket.EquipmentName = *req.EquipmentName
	}
	if req.MaintenanceType != nil {
		ticket.MaintenanceType = *req.MaintenanceType
	}
	if req.Status != nil {
		ticket.Status = *req.Status
	}
	if req.Description != nil {
		ticket.Description = *req.Description
	}
	if req.StartDate != nil {
		ticket.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		ticket.EndDate = *req.EndDate
	}
	if req.AssignedTo != nil {
		ticket.AssignedTo = *req.AssignedTo
	}
	if req.Priority != nil {
		ticket.Priority = *req.Priority
	}
	if req.Cost != nil {
		ticket.Cost = *req.Cost
	}
	if req.Notes != nil {
		ticket.Notes = *req.Notes
	}

	if err := database.DB.Save(&ticket).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể cập nhật phiếu bảo trì"))
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// Delete xóa phiếu bảo trì (xóa mềm)
func (h *MaintenanceHandler) Delete(c *gin.Context) {
	var ticket models.Maintenance
	if err := database.DB.First(&ticket, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy phiếu bảo trì")
		return
	}
	if err := database.DB.Delete(&ticket).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể xóa phiếu bảo trì"))
		return
	}
	c.Status(http.StatusNoContent)
}
