package api

import (
	"net/http"

	"nhatro/database"
	"nhatro/models"
	"nhatro/reports"

	"github.com/gin-gonic/gin"
)

// ContractHandler xử lý hợp đồng thuê phòng
type ContractHandler struct{}

func NewContractHandler() *ContractHandler {
	return &ContractHandler{}
}

type CreateContractRequest struct {
	TenantName  string `json:"tenantName" binding:"required"`
	RoomNumber  string `json:"roomNumber" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	Status      string `json:"status"`
	MonthlyRent int64  `json:"monthlyRent" binding:"required,gte=0"`
	Deposit     int64  `json:"deposit"`
}

type UpdateContractRequest struct {
	TenantName  *string `json:"tenantName"`
	RoomNumber  *string `json:"roomNumber"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Status      *string `json:"status"`
	MonthlyRent *int64  `json:"monthlyRent"`
	Deposit     *int64  `json:"deposit"`
}

// ContractStatsResponse số liệu thống kê cho thẻ tổng quan hợp đồng
type ContractStatsResponse struct {
	Total            int64 `json:"total"`
	Active           int64 `json:"active"`
	Expired          int64 `json:"expired"`
	Pending          int64 `json:"pending"`
	TotalMonthlyRent int64 `json:"totalMonthlyRent"`
}

func validContractStatus(status string) bool {
	return status == models.ContractActive || status == models.ContractExpired || status == models.ContractPending
}

// List trả về danh sách hợp đồng dạng { items: [...] }
// Lọc theo tab trạng thái và từ khóa được tính lại trên toàn bộ danh sách
func (h *ContractHandler) List(c *gin.Context) {
	var contracts []models.Contract
	if err := database.DB.Order("created_at").Find(&contracts).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể lấy danh sách hợp đồng"))
		return
	}

	tab := c.DefaultQuery("tab", reports.ContractTabAll)
	filtered := reports.FilterContracts(contracts, tab, c.Query("search"))
	c.JSON(http.StatusOK, ItemsResponse{Items: filtered})
}

// Get trả về một hợp đồng theo ID
func (h *ContractHandler) Get(c *gin.Context) {
	var contract models.Contract
	if err := database.DB.First(&contract, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy hợp đồng")
		return
	}
	c.JSON(http.StatusOK, contract)
}

// Stats thống kê hợp đồng theo trạng thái và tổng tiền thuê hằng tháng
func (h *ContractHandler) Stats(c *gin.Context) {
	var contracts []models.Contract
	if err := database.DB.Find(&contracts).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể lấy thống kê hợp đồng"))
		return
	}

	stats := ContractStatsResponse{
		Total:            int64(len(contracts)),
		TotalMonthlyRent: reports.TotalMonthlyRent(contracts),
	}
	for _, ct := range contracts {
		switch ct.Status {
		case models.ContractActive:
			stats.Active++
		case models.ContractExpired:
			stats.Expired++
		case models.ContractPending:
			stats.Pending++
		}
	}
	c.JSON(http.StatusOK, stats)
}

// Create thêm hợp đồng mới
func (h *ContractHandler) Create(c *gin.Context) {
	var req CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}
	if req.Status == "" {
		req.Status = models.ContractPending
	}
	if !validContractStatus(req.Status) {
		BadRequest(c, "Trạng thái hợp đồng không hợp lệ")
		return
	}

	contract := models.Contract{
		TenantName:  req.TenantName,
		RoomNumber:  req.RoomNumber,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
		MonthlyRent: req.MonthlyRent,
		Deposit:     req.Deposit,
	}
	if err := database.DB.Create(&contract).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể thêm hợp đồng"))
		return
	}
	c.JSON(http.StatusOK, contract)
}

// Update cập nhật một phần hợp đồng
func (h *ContractHandler) Update(c *gin.Context) {
	var contract models.Contract
	if err := database.DB.First(&contract, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy hợp đồng")
		return
	}

	var req UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}
	if req.Status != nil && !validContractStatus(*req.Status) {
		BadRequest(c, "Trạng thái hợp đồng không hợp lệ")
		return
	}

	if req.TenantName != nil {
		contract.TenantName = *req.TenantName
	}
	if req.RoomNumber != nil {
		contract.RoomNumber = *req.RoomNumber
	}
	if req.StartDate != nil {
		contract.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		contract.EndDate = *req.EndDate
	}
	if req.Status != nil {
		contract.Status = *req.Status
	}
	if req.MonthlyRent != nil {
		contract.MonthlyRent = *req.MonthlyRent
	}
	if req.Deposit != nil {
		contract.Deposit = *req.Deposit
	}

	if err := database.DB.Save(&contract).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể cập nhật hợp đồng"))
		return
	}
	c.JSON(http.StatusOK, contract)
}

// Delete xóa hợp đồng (xóa mềm)
func (h *ContractHandler) Delete(c *gin.Context) {
	var contract models.Contract
	if err := database.DB.First(&contract, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy hợp đồng")
		return
	}
	if err := database.DB.Delete(&contract).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể xóa hợp đồng"))
		return
	}
	c.Status(http.StatusNoContent)
}
