// Package finance tổng hợp và lọc giao dịch thu chi cho màn hình tài chính.
// Mọi hàm trong package đều thuần, không gọi mạng hay CSDL và không bao giờ
// trả lỗi: dữ liệu xấu (ngày sai định dạng, tổng bằng 0...) rơi về giá trị
// an toàn thay vì làm hỏng báo cáo.
package finance

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"nhatro/models"
)

// DateLayout định dạng ngày của giao dịch
const DateLayout = "2006-01-02"

// DefaultMonthWindow số tháng mặc định của biểu đồ
const DefaultMonthWindow = 6

// TypeAll giá trị bộ lọc "mọi loại giao dịch"
const TypeAll = "all"

// Filters điều kiện lọc giao dịch. Trường bỏ trống thì không lọc theo trường đó.
type Filters struct {
	Type        string `json:"type,omitempty" form:"type"`
	StartDate   string `json:"startDate,omitempty" form:"start_date"`
	EndDate     string `json:"endDate,omitempty" form:"end_date"`
	SearchQuery string `json:"searchQuery,omitempty" form:"search"`
}

// CategorySummary tổng hợp theo danh mục (dữ liệu dẫn xuất, không lưu)
type CategorySummary struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
	Percent  int    `json:"percent"`
}

// MonthlyData thu chi của một tháng trên biểu đồ, nhãn dạng "1/2024"
type MonthlyData struct {
	Month   string `json:"month"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

// TransactionTypeInfo bảng hiển thị loại giao dịch
var TransactionTypeInfo = map[string]models.DisplayInfo{
	models.TransactionIncome:  {Text: "Khoản thu", ClassName: "text-emerald-600"},
	models.TransactionExpense: {Text: "Khoản chi", ClassName: "text-rose-600"},
}

// CategoryInfo bảng hiển thị danh mục giao dịch
var CategoryInfo = map[string]models.DisplayInfo{
	// Thu
	models.CategoryRent:        {Text: "Tiền thuê phòng", ClassName: "bg-violet-100 text-violet-800"},
	models.CategoryDeposit:     {Text: "Tiền đặt cọc", ClassName: "bg-blue-100 text-blue-800"},
	models.CategoryService:     {Text: "Phí dịch vụ", ClassName: "bg-cyan-100 text-cyan-800"},
	models.CategoryPenalty:     {Text: "Tiền phạt", ClassName: "bg-amber-100 text-amber-800"},
	models.CategoryOtherIncome: {Text: "Thu khác", ClassName: "bg-slate-100 text-slate-800"},

	// Chi
	models.CategoryMaintenance:  {Text: "Bảo trì sửa chữa", ClassName: "bg-orange-100 text-orange-800"},
	models.CategoryUtility:      {Text: "Điện nước", ClassName: "bg-emerald-100 text-emerald-800"},
	models.CategorySalary:       {Text: "Lương nhân viên", ClassName: "bg-purple-100 text-purple-800"},
	models.CategoryTax:          {Text: "Thuế phí", ClassName: "bg-pink-100 text-pink-800"},
	models.CategoryOtherExpense: {Text: "Chi khác", ClassName: "bg-slate-100 text-slate-800"},
}

// GetCategoryInfo tra thông tin hiển thị danh mục; danh mục lạ trả về giá trị mặc định
func GetCategoryInfo(category string) models.DisplayInfo {
	if info, ok := CategoryInfo[category]; ok {
		return info
	}
	return models.UnknownDisplay
}

// GetTypeInfo tra thông tin hiển thị loại giao dịch
func GetTypeInfo(transactionType string) models.DisplayInfo {
	if info, ok := TransactionTypeInfo[transactionType]; ok {
		return info
	}
	return models.UnknownDisplay
}

// FilterTransactions lọc giao dịch theo loại, khoảng ngày rồi mới đến từ khóa.
// Không có điều kiện nào thì trả về đúng danh sách ban đầu (giữ nguyên thứ tự).
func FilterTransactions(transactions []models.Transaction, filters Filters) []models.Transaction {
	result := make([]models.Transaction, 0, len(transactions))

	startDate, hasStart := parseDate(filters.StartDate)
	endDate, hasEnd := parseDate(filters.EndDate)
	query := strings.ToLower(strings.TrimSpace(filters.SearchQuery))

	for _, tx := range transactions {
		// Lọc theo loại giao dịch
		if filters.Type != "" && filters.Type != TypeAll && tx.Type != filters.Type {
			continue
		}

		// Lọc theo khoảng ngày (bao gồm cả hai đầu). Giao dịch có ngày sai
		// định dạng bị loại khỏi kết quả khi đang lọc theo ngày.
		if hasStart || hasEnd {
			txDate, ok := parseDate(tx.Date)
			if !ok {
				continue
			}
			if hasStart && txDate.Before(startDate) {
				continue
			}
			if hasEnd && txDate.After(endDate) {
				continue
			}
		}

		// Lọc theo từ khóa: khớp một trong các trường là đủ
		if query != "" && !matchesQuery(tx, query) {
			continue
		}

		result = append(result, tx)
	}
	return result
}

func matchesQuery(tx models.Transaction, query string) bool {
	return strings.Contains(strings.ToLower(tx.Description), query) ||
		strings.Contains(strings.ToLower(tx.ID), query) ||
		(tx.RoomID != "" && strings.Contains(strings.ToLower(tx.RoomID), query)) ||
		(tx.TenantID != "" && strings.Contains(strings.ToLower(tx.TenantID), query))
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// CalculateTotal tính tổng tiền của các giao dịch thuộc một loại
func CalculateTotal(transactions []models.Transaction, transactionType string) int64 {
	var total int64
	for _, tx := range transactions {
		if tx.Type == transactionType {
			total += tx.Amount
		}
	}
	return total
}

// SummarizeByCategory gom giao dịch của một loại theo danh mục, tính tổng và
// phần trăm rồi xếp giảm dần theo tổng. Hai danh mục bằng tổng thì danh mục
// xuất hiện trước đứng trước. Tổng chung bằng 0 thì phần trăm bằng 0.
func SummarizeByCategory(transactions []models.Transaction, transactionType string) []CategorySummary {
	var grandTotal int64
	index := map[string]int{}
	var result []CategorySummary

	for _, tx := range transactions {
		if tx.Type != transactionType {
			continue
		}
		grandTotal += tx.Amount
		if i, ok := index[tx.Category]; ok {
			result[i].Total += tx.Amount
		} else {
			index[tx.Category] = len(result)
			result = append(result, CategorySummary{Category: tx.Category})
			result[len(result)-1].Total = tx.Amount
		}
	}

	for i := range result {
		if grandTotal > 0 {
			// Làm tròn độc lập từng danh mục nên tổng phần trăm có thể lệch 100
			result[i].Percent = int(float64(result[i].Total)/float64(grandTotal)*100 + 0.5)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total > result[j].Total
	})
	return result
}

// GenerateMonthlyData tạo dữ liệu biểu đồ cho monthCount tháng gần nhất,
// neo tại tháng hiện tại
func GenerateMonthlyData(transactions []models.Transaction, monthCount int) []MonthlyData {
	return GenerateMonthlyDataAt(transactions, monthCount, time.Now())
}

// GenerateMonthlyDataAt như GenerateMonthlyData nhưng neo tại một thời điểm chỉ định.
// Luôn trả về đủ monthCount tháng (tháng không có giao dịch giữ giá trị 0),
// xếp từ cũ đến mới. Giao dịch ngoài cửa sổ hoặc ngày sai định dạng bị bỏ qua.
func GenerateMonthlyDataAt(transactions []models.Transaction, monthCount int, anchor time.Time) []MonthlyData {
	if monthCount <= 0 {
		monthCount = DefaultMonthWindow
	}

	result := make([]MonthlyData, 0, monthCount)
	index := map[string]int{}
	for i := monthCount - 1; i >= 0; i-- {
		m := time.Date(anchor.Year(), anchor.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)
		label := monthLabel(m)
		index[label] = len(result)
		result = append(result, MonthlyData{Month: label})
	}

	for _, tx := range transactions {
		txDate, ok := parseDate(tx.Date)
		if !ok {
			continue
		}
		i, ok := index[monthLabel(txDate)]
		if !ok {
			continue
		}
		switch tx.Type {
		case models.TransactionIncome:
			result[i].Income += tx.Amount
		case models.TransactionExpense:
			result[i].Expense += tx.Amount
		}
	}
	return result
}

// monthLabel nhãn tháng dạng "1/2024" (không đệm số 0)
func monthLabel(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Year())
}

// FormatCurrency định dạng tiền VND kiểu vi-VN: 5.000.000 ₫
func FormatCurrency(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	s := b.String() + " ₫"
	if negative {
		s = "-" + s
	}
	return s
}
