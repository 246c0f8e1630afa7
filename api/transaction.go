package api

import (
	"net/http"
	"strconv"
	"time"

	"nhatro/database"
	"nhatro/finance"
	"nhatro/models"

	"github.com/gin-gonic/gin"
)

// TransactionHandler xử lý giao dịch thu chi
type TransactionHandler struct{}

func NewTransactionHandler() *TransactionHandler {
	return &TransactionHandler{}
}

type CreateTransactionRequest struct {
	Date        string `json:"date" binding:"required"`
	Amount      int64  `json:"amount" binding:"required,gte=0"`
	Type        string `json:"type" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	RoomID      string `json:"roomId"`
	TenantID    string `json:"tenantId"`
}

type UpdateTransactionRequest struct {
	Date        *string `json:"date"`
	Amount      *int64  `json:"amount"`
	Type        *string `json:"type"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	RoomID      *string `json:"roomId"`
	TenantID    *string `json:"tenantId"`
}

// FinanceSummaryResponse tổng thu chi của tập giao dịch đã lọc
type FinanceSummaryResponse struct {
	TotalIncome  int64 `json:"totalIncome"`
	TotalExpense int64 `json:"totalExpense"`
	Balance      int64 `json:"balance"`
}

// validateTransaction kiểm tra loại, danh mục và ngày; trả về danh sách lỗi
// (danh mục phải thuộc đúng loại giao dịch, không cho lưu cặp lệch)
func validateTransaction(date, transactionType, category string, amount int64) []string {
	var msgs []string
	if transactionType != models.TransactionIncome && transactionType != models.TransactionExpense {
		msgs = append(msgs, "Loại giao dịch không hợp lệ")
	} else if !models.ValidCategory(transactionType, category) {
		msgs = append(msgs, "Danh mục không thuộc loại giao dịch này")
	}
	if amount < 0 {
		msgs = append(msgs, "Số tiền không được âm")
	}
	if _, err := time.Parse(finance.DateLayout, date); err != nil {
		msgs = append(msgs, "Ngày giao dịch phải có dạng 2006-01-02")
	}
	return msgs
}

// loadTransactions đọc toàn bộ giao dịch theo thứ tự tạo
func loadTransactions() ([]models.Transaction, error) {
	var txs []models.Transaction
	err := database.DB.Order("created_at").Find(&txs).Error
	return txs, err
}

// queryFilters gom điều kiện lọc của request thành bộ lọc thuần
func queryFilters(c *gin.Context) finance.Filters {
	return finance.Filters{
		Type:        c.Query("type"),
		StartDate:   c.Query("start_date"),
		EndDate:     c.Query("end_date"),
		SearchQuery: c.Query("search"),
	}
}

// List trả về danh sách giao dịch dạng { items: [...] }
// Toàn bộ việc lọc đi qua finance.FilterTransactions để đồng nhất với màn hình tài chính
func (h *TransactionHandler) List(c *gin.Context) {
	txs, err := loadTransactions()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể lấy danh sách giao dịch"))
		return
	}
	c.JSON(http.StatusOK, ItemsResponse{Items: finance.FilterTransactions(txs, queryFilters(c))})
}

// Get trả về một giao dịch theo ID
func (h *TransactionHandler) Get(c *gin.Context) {
	var tx models.Transaction
	if err := database.DB.First(&tx, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy giao dịch")
		return
	}
	c.JSON(http.StatusOK, tx)
}

// Create ghi giao dịch mới
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}
	if msgs := validateTransaction(req.Date, req.Type, req.Category, req.Amount); len(msgs) > 0 {
		ValidationError(c, msgs)
		return
	}

	tx := models.Transaction{
		Date:        req.Date,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		RoomID:      req.RoomID,
		TenantID:    req.TenantID,
	}
	if err := database.DB.Create(&tx).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể ghi giao dịch"))
		return
	}
	c.JSON(http.StatusOK, tx)
}

// Update cập nhật một phần giao dịch; cặp loại/danh mục sau cập nhật vẫn phải khớp nhau
func (h *TransactionHandler) Update(c *gin.Context) {
	var tx models.Transaction
	if err := database.DB.First(&tx, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy giao dịch")
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	next := tx
	if req.Date != nil {
		next.Date = *req.Date
	}
	if req.Amount != nil {
		next.Amount = *req.Amount
	}
	if req.Type != nil {
		next.Type = *req.Type
	}
	if req.Category != nil {
		next.Category = *req.Category
	}
	if req.Description != nil {
		next.Description = *req.Description
	}
	if req.RoomID != nil {
		next.RoomID = *req.RoomID
	}
	if req.TenantID != nil {
		next.TenantID = *req.TenantID
	}

	if msgs := validateTransaction(next.Date, next.Type, next.Category, next.Amount); len(msgs) > 0 {
		ValidationError(c, msgs)
		return
	}

	if err := database.DB.Save(&next).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể cập nhật giao dịch"))
		return
	}
	c.JSON(http.StatusOK, next)
}

// Delete xóa giao dịch (xóa mềm)
func (h *TransactionHandler) Delete(c *gin.Context) {
	var tx models.Transaction
	if err := database.DB.First(&tx, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy giao dịch")
		return
	}
	if err := database.DB.Delete(&tx).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể xóa giao dịch"))
		return
	}
	c.Status(http.StatusNoContent)
}

// Summary tổng thu chi theo cùng bộ lọc với List
func (h *TransactionHandler) Summary(c *gin.Context) {
	txs, err := loadTransactions()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể tính tổng thu chi"))
		return
	}
	filtered := finance.FilterTransactions(txs, queryFilters(c))
	income := finance.CalculateTotal(filtered, models.TransactionIncome)
	expense := finance.CalculateTotal(filtered, models.TransactionExpense)
	c.JSON(http.StatusOK, FinanceSummaryResponse{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income - expense,
	})
}

// Categories tổng hợp theo danh mục của một loại giao dịch
func (h *TransactionHandler) Categories(c *gin.Context) {
	transactionType := c.DefaultQuery("type", models.TransactionIncome)
	if transactionType != models.TransactionIncome && transactionType != models.TransactionExpense {
		BadRequest(c, "Loại giao dịch không hợp lệ")
		return
	}

	txs, err := loadTransactions()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể tổng hợp danh mục"))
		return
	}
	filtered := finance.FilterTransactions(txs, finance.Filters{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	summaries := finance.SummarizeByCategory(filtered, transactionType)
	if summaries == nil {
		summaries = []finance.CategorySummary{}
	}
	c.JSON(http.StatusOK, summaries)
}

// Monthly dữ liệu biểu đồ thu chi theo tháng, mặc định 6 tháng gần nhất
func (h *TransactionHandler) Monthly(c *gin.Context) {
	months, _ := strconv.Atoi(c.DefaultQuery("months", strconv.Itoa(finance.DefaultMonthWindow)))

	txs, err := loadTransactions()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể dựng dữ liệu theo tháng"))
		return
	}
	c.JSON(http.StatusOK, finance.GenerateMonthlyData(txs, months))
}
