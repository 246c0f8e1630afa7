package api

import (
	"net/http"

	"nhatro/database"
	"nhatro/models"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler xử lý hóa đơn
type InvoiceHandler struct{}

func NewInvoiceHandler() *InvoiceHandler {
	return &InvoiceHandler{}
}

type InvoiceItemRequest struct {
	Description string `json:"description" binding:"required"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice" binding:"gte=0"`
}

type CreateInvoiceRequest struct {
	InvoiceNumber string               `json:"invoiceNumber" binding:"required"`
	Date          string               `json:"date" binding:"required"`
	DueDate       string               `json:"dueDate" binding:"required"`
	RoomID        string               `json:"roomId"`
	TenantID      string               `json:"tenantId"`
	Items         []InvoiceItemRequest `json:"items" binding:"required,min=1"`
	Status        string               `json:"status"`
	Notes         string               `json:"notes"`
}

type UpdateInvoiceRequest struct {
	InvoiceNumber *string               `json:"invoiceNumber"`
	Date          *string               `json:"date"`
	DueDate       *string               `json:"dueDate"`
	RoomID        *string               `json:"roomId"`
	TenantID      *string               `json:"tenantId"`
	Items         *[]InvoiceItemRequest `json:"items"`
	Status        *string               `json:"status"`
	Notes         *string               `json:"notes"`
}

func validInvoiceStatus(status string) bool {
	return status == models.InvoicePending || status == models.InvoicePaid || status == models.InvoiceOverdue
}

func buildInvoiceItems(reqs []InvoiceItemRequest) []models.InvoiceItem {
	items := make([]models.InvoiceItem, 0, len(reqs))
	for _, it := range reqs {
		items = append(items, models.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return items
}

// List trả về danh sách hóa đơn dạng { items: [...] }
// Lọc theo trạng thái, khoảng ngày và từ khóa (số hóa đơn)
func (h *InvoiceHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.Invoice{}).Preload("Items")
	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if start := c.Query("start_date"); start != "" {
		query = query.Where("date >= ?", start)
	}
	if end := c.Query("end_date"); end != "" {
		query = query.Where("date <= ?", end)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("invoice_number LIKE ?", "%"+search+"%")
	}

	var invoices []models.Invoice
	if err := query.Order("created_at").Find(&invoices).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể lấy danh sách hóa đơn"))
		return
	}
	if invoices == nil {
		invoices = []models.Invoice{}
	}
	c.JSON(http.StatusOK, ItemsResponse{Items: invoices})
}

// Get trả về một hóa đơn kèm các dòng
func (h *InvoiceHandler) Get(c *gin.Context) {
	var invoice models.Invoice
	if err := database.DB.Preload("Items").First(&invoice, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy hóa đơn")
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// Create lập hóa đơn mới; thành tiền từng dòng và tổng luôn do server tính
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}
	if req.Status == "" {
		req.Status = models.InvoicePending
	}
	if !validInvoiceStatus(req.Status) {
		BadRequest(c, "Trạng thái hóa đơn không hợp lệ")
		return
	}

	invoice := models.Invoice{
		InvoiceNumber: req.InvoiceNumber,
		Date:          req.Date,
		DueDate:       req.DueDate,
		RoomID:        req.RoomID,
		TenantID:      req.TenantID,
		Items:         buildInvoiceItems(req.Items),
		Status:        req.Status,
		Notes:         req.Notes,
	}
	invoice.ComputeTotals()

	if err := database.DB.Create(&invoice).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể lập hóa đơn"))
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// Update cập nhật một phần hóa đơn; gửi lại danh sách dòng sẽ thay toàn bộ dòng cũ
func (h *InvoiceHandler) Update(c *gin.Context) {
	var invoice models.Invoice
	if err := database.DB.Preload("Items").First(&invoice, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy hóa đơn")
		return
	}

	var req UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}
	if req.Status != nil && !validInvoiceStatus(*req.Status) {
		BadRequest(c, "Trạng thái hóa đơn không hợp lệ")
		return
	}

	if req.InvoiceNumber != nil {
		invoice.InvoiceNumber = *req.InvoiceNumber
	}
	if req.Date != nil {
		invoice.Date = *req.Date
	}
	if req.DueDate != nil {
		invoice.DueDate = *req.DueDate
	}
	if req.RoomID != nil {
		invoice.RoomID = *req.RoomID
	}
	if req.TenantID != nil {
		invoice.TenantID = *req.TenantID
	}
	if req.Status != nil {
		invoice.Status = *req.Status
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	if req.Items != nil {
		if err := database.DB.Where("invoice_id = ?", invoice.ID).
			Delete(&models.InvoiceItem{}).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "Không thể cập nhật hóa đơn"))
			return
		}
		invoice.Items = buildInvoiceItems(*req.Items)
	}
	invoice.ComputeTotals()

	if err := database.DB.Save(&invoice).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể cập nhật hóa đơn"))
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// Delete xóa hóa đơn (xóa mềm)
func (h *InvoiceHandler) Delete(c *gin.Context) {
	var invoice models.Invoice
	if err := database.DB.First(&invoice, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy hóa đơn")
		return
	}
	if err := database.DB.Delete(&invoice).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể xóa hóa đơn"))
		return
	}
	c.Status(http.StatusNoContent)
}
