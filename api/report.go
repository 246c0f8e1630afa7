package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"nhatro/database"
	"nhatro/finance"
	"nhatro/models"
	"nhatro/reports"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ReportHandler xử lý báo cáo tổng hợp
type ReportHandler struct{}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

// Summary số liệu tổng quan: doanh thu, tỷ lệ lấp đầy, khách thuê, hợp đồng, bảo trì
func (h *ReportHandler) Summary(c *gin.Context) {
	txs, err := loadTransactions()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể dựng báo cáo"))
		return
	}

	var rooms []models.Room
	if err := database.DB.Find(&rooms).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể dựng báo cáo"))
		return
	}

	var totalTenants, activeContracts, maintenanceCount int64
	database.DB.Model(&models.Tenant{}).Count(&totalTenants)
	database.DB.Model(&models.Contract{}).Where("status = ?", models.ContractActive).Count(&activeContracts)
	database.DB.Model(&models.Maintenance{}).
		Where("status IN ?", []string{models.MaintenancePending, models.MaintenanceInProgress}).
		Count(&maintenanceCount)

	c.JSON(http.StatusOK, reports.Summary{
		TotalRevenue:     finance.CalculateTotal(txs, models.TransactionIncome),
		AverageOccupancy: reports.CalculateOccupancy(rooms).OccupancyRate,
		TotalTenants:     totalTenants,
		ActiveContracts:  activeContracts,
		MaintenanceCount: maintenanceCount,
	})
}

// Revenue dữ liệu doanh thu theo tháng cho biểu đồ báo cáo
func (h *ReportHandler) Revenue(c *gin.Context) {
	months, _ := strconv.Atoi(c.DefaultQuery("months", strconv.Itoa(finance.DefaultMonthWindow)))

	txs, err := loadTransactions()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể dựng dữ liệu doanh thu"))
		return
	}
	c.JSON(http.StatusOK, reports.GenerateRevenueData(txs, months, time.Now()))
}

// Occupancy tỷ lệ lấp đầy phòng hiện tại
func (h *ReportHandler) Occupancy(c *gin.Context) {
	var rooms []models.Room
	if err := database.DB.Find(&rooms).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể tính tỷ lệ lấp đầy"))
		return
	}
	c.JSON(http.StatusOK, reports.CalculateOccupancy(rooms))
}

// ExportExcel xuất giao dịch thu chi trong khoảng thời gian ra file Excel
func (h *ReportHandler) ExportExcel(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	if startDate == "" || endDate == "" {
		BadRequest(c, "Vui lòng cung cấp ngày bắt đầu và ngày kết thúc")
		return
	}
	if _, err := time.Parse(finance.DateLayout, startDate); err != nil {
		BadRequest(c, "Ngày bắt đầu phải có dạng 2006-01-02")
		return
	}
	if _, err := time.Parse(finance.DateLayout, endDate); err != nil {
		BadRequest(c, "Ngày kết thúc phải có dạng 2006-01-02")
		return
	}

	txs, err := loadTransactions()
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể xuất dữ liệu"))
		return
	}
	filtered := finance.FilterTransactions(txs, finance.Filters{
		Type:      c.DefaultQuery("type", finance.TypeAll),
		StartDate: startDate,
		EndDate:   endDate,
	})

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Giao dịch"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetColWidth(sheetName, "A", "A", 38)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 22)
	f.SetColWidth(sheetName, "E", "E", 18)
	f.SetColWidth(sheetName, "F", "F", 40)

	headers := []string{"Mã giao dịch", "Ngày", "Loại", "Danh mục", "Số tiền", "Mô tả"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, tx := range filtered {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), tx.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), tx.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), finance.GetTypeInfo(tx.Type).Text)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), finance.GetCategoryInfo(tx.Category).Text)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), finance.FormatCurrency(tx.Amount))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), tx.Description)

		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), dataStyle)
	}

	summaryRow := len(filtered) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	income := finance.CalculateTotal(filtered, models.TransactionIncome)
	expense := finance.CalculateTotal(filtered, models.TransactionExpense)

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Tổng cộng")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("D%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", summaryRow), finance.FormatCurrency(income-expense))
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", summaryRow),
		fmt.Sprintf("Thu %s / Chi %s, %d giao dịch", finance.FormatCurrency(income), finance.FormatCurrency(expense), len(filtered)))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("F%d", summaryRow), summaryStyle)

	filename := fmt.Sprintf("giao-dich_%s_%s.xlsx", startDate, endDate)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "Không thể tạo file Excel")
		return
	}
}
