package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nhatro/models"
)

// Hai giao dịch mẫu dùng xuyên suốt (thu tiền phòng + chi bảo trì)
func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{
			ID:          "TRX001",
			Date:        "2024-01-01",
			Amount:      5000000,
			Type:        models.TransactionIncome,
			Category:    models.CategoryRent,
			Description: "Tiền thuê phòng 101 tháng 1/2024",
			RoomID:      "R101",
			TenantID:    "T001",
		},
		{
			ID:          "TRX002",
			Date:        "2024-01-10",
			Amount:      1500000,
			Type:        models.TransactionExpense,
			Category:    models.CategoryMaintenance,
			Description: "Sửa chữa điều hòa phòng 101",
			RoomID:      "R101",
		},
	}
}

func TestCalculateTotal(t *testing.T) {
	txs := sampleTransactions()

	assert.Equal(t, int64(5000000), CalculateTotal(txs, models.TransactionIncome))
	assert.Equal(t, int64(1500000), CalculateTotal(txs, models.TransactionExpense))
	assert.Equal(t, int64(0), CalculateTotal(nil, models.TransactionIncome))
}

func TestFilterTransactions_NoFilters(t *testing.T) {
	txs := sampleTransactions()

	// Không có điều kiện nào thì trả về nguyên vẹn cả nội dung lẫn thứ tự
	got := FilterTransactions(txs, Filters{})
	assert.Equal(t, txs, got)
}

func TestFilterTransactions_ByType(t *testing.T) {
	txs := sampleTransactions()

	income := FilterTransactions(txs, Filters{Type: models.TransactionIncome})
	require.Len(t, income, 1)
	assert.Equal(t, "TRX001", income[0].ID)

	// "all" tương đương không lọc loại
	all := FilterTransactions(txs, Filters{Type: TypeAll})
	assert.Len(t, all, 2)
}

func TestFilterTransactions_DateRangeInclusive(t *testing.T) {
	txs := sampleTransactions()

	// Biên trùng ngày giao dịch vẫn được giữ lại
	got := FilterTransactions(txs, Filters{StartDate: "2024-01-01", EndDate: "2024-01-10"})
	assert.Len(t, got, 2)

	got = FilterTransactions(txs, Filters{StartDate: "2024-01-02"})
	require.Len(t, got, 1)
	assert.Equal(t, "TRX002", got[0].ID)

	got = FilterTransactions(txs, Filters{EndDate: "2024-01-09"})
	require.Len(t, got, 1)
	assert.Equal(t, "TRX001", got[0].ID)
}

func TestFilterTransactions_MalformedDate(t *testing.T) {
	txs := sampleTransactions()
	txs = append(txs, models.Transaction{
		ID:     "TRX999",
		Date:   "không-phải-ngày",
		Amount: 100,
		Type:   models.TransactionIncome,
	})

	// Không lọc theo ngày thì bản ghi ngày hỏng vẫn đi qua
	got := FilterTransactions(txs, Filters{})
	assert.Len(t, got, 3)

	// Lọc theo ngày thì bản ghi ngày hỏng bị loại êm, không lỗi
	got = FilterTransactions(txs, Filters{StartDate: "2024-01-01"})
	assert.Len(t, got, 2)
	for _, tx := range got {
		assert.NotEqual(t, "TRX999", tx.ID)
	}
}

func TestFilterTransactions_Search(t *testing.T) {
	txs := sampleTransactions()

	// Khớp mô tả, không phân biệt hoa thường
	got := FilterTransactions(txs, Filters{SearchQuery: "sửa chữa"})
	require.Len(t, got, 1)
	assert.Equal(t, "TRX002", got[0].ID)

	// Khớp mã giao dịch
	got = FilterTransactions(txs, Filters{SearchQuery: "trx001"})
	require.Len(t, got, 1)
	assert.Equal(t, "TRX001", got[0].ID)

	// Khớp mã phòng / mã khách thuê
	got = FilterTransactions(txs, Filters{SearchQuery: "r101"})
	assert.Len(t, got, 2)
	got = FilterTransactions(txs, Filters{SearchQuery: "t001"})
	require.Len(t, got, 1)
	assert.Equal(t, "TRX001", got[0].ID)

	// Không khớp gì
	got = FilterTransactions(txs, Filters{SearchQuery: "không tồn tại"})
	assert.Empty(t, got)
}

func TestFilterTransactions_SequentialFiltering(t *testing.T) {
	txs := sampleTransactions()

	// Từ khóa chỉ áp lên tập đã được thu hẹp bởi loại + ngày:
	// "r101" khớp cả hai nhưng loại expense chỉ còn TRX002
	got := FilterTransactions(txs, Filters{Type: models.TransactionExpense, SearchQuery: "r101"})
	require.Len(t, got, 1)
	assert.Equal(t, "TRX002", got[0].ID)
}

func TestFilterTransactions_RestrictionIdempotent(t *testing.T) {
	txs := sampleTransactions()

	// Tổng theo loại trên tập đã lọc theo loại bằng tổng trên tập gốc
	for _, typ := range []string{models.TransactionIncome, models.TransactionExpense} {
		filtered := FilterTransactions(txs, Filters{Type: typ})
		assert.Equal(t, CalculateTotal(txs, typ), CalculateTotal(filtered, typ))
	}
}

func TestSummarizeByCategory(t *testing.T) {
	txs := sampleTransactions()

	got := SummarizeByCategory(txs, models.TransactionIncome)
	require.Len(t, got, 1)
	assert.Equal(t, CategorySummary{Category: models.CategoryRent, Total: 5000000, Percent: 100}, got[0])
}

func TestSummarizeByCategory_Empty(t *testing.T) {
	// Tập rỗng: không chia cho 0, trả về danh sách rỗng
	assert.Empty(t, SummarizeByCategory(nil, models.TransactionIncome))
	assert.Empty(t, SummarizeByCategory([]models.Transaction{}, models.TransactionExpense))
}

func TestSummarizeByCategory_SortAndPercent(t *testing.T) {
	txs := []models.Transaction{
		{ID: "1", Type: models.TransactionExpense, Category: models.CategoryUtility, Amount: 1000000},
		{ID: "2", Type: models.TransactionExpense, Category: models.CategoryMaintenance, Amount: 3000000},
		{ID: "3", Type: models.TransactionExpense, Category: models.CategoryUtility, Amount: 500000},
		{ID: "4", Type: models.TransactionIncome, Category: models.CategoryRent, Amount: 9000000},
	}

	got := SummarizeByCategory(txs, models.TransactionExpense)
	require.Len(t, got, 2)
	assert.Equal(t, models.CategoryMaintenance, got[0].Category)
	assert.Equal(t, int64(3000000), got[0].Total)
	assert.Equal(t, 67, got[0].Percent)
	assert.Equal(t, models.CategoryUtility, got[1].Category)
	assert.Equal(t, int64(1500000), got[1].Total)
	assert.Equal(t, 33, got[1].Percent)
}

func TestSummarizeByCategory_TieKeepsEncounterOrder(t *testing.T) {
	txs := []models.Transaction{
		{ID: "1", Type: models.TransactionIncome, Category: models.CategoryService, Amount: 200000},
		{ID: "2", Type: models.TransactionIncome, Category: models.CategoryDeposit, Amount: 200000},
	}

	got := SummarizeByCategory(txs, models.TransactionIncome)
	require.Len(t, got, 2)
	assert.Equal(t, models.CategoryService, got[0].Category)
	assert.Equal(t, models.CategoryDeposit, got[1].Category)
}

func TestSummarizeByCategory_TotalMatchesCalculateTotal(t *testing.T) {
	txs := append(sampleTransactions(),
		models.Transaction{ID: "TRX003", Date: "2024-01-20", Amount: 300000, Type: models.TransactionIncome, Category: models.CategoryService},
		models.Transaction{ID: "TRX004", Date: "2024-01-21", Amount: 700000, Type: models.TransactionIncome, Category: models.CategoryRent},
	)

	var sum int64
	for _, c := range SummarizeByCategory(txs, models.TransactionIncome) {
		sum += c.Total
	}
	assert.Equal(t, CalculateTotal(txs, models.TransactionIncome), sum)
}

func TestGenerateMonthlyData(t *testing.T) {
	anchor := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	got := GenerateMonthlyDataAt(sampleTransactions(), 2, anchor)
	require.Len(t, got, 2)
	assert.Equal(t, MonthlyData{Month: "12/2023", Income: 0, Expense: 0}, got[0])
	assert.Equal(t, MonthlyData{Month: "1/2024", Income: 5000000, Expense: 1500000}, got[1])
}

func TestGenerateMonthlyData_AlwaysFullWindow(t *testing.T) {
	anchor := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	// Không có giao dịch vẫn đủ số tháng, toàn 0
	got := GenerateMonthlyDataAt(nil, 6, anchor)
	require.Len(t, got, 6)
	assert.Equal(t, "10/2023", got[0].Month)
	assert.Equal(t, "3/2024", got[5].Month)
	for _, m := range got {
		assert.Zero(t, m.Income)
		assert.Zero(t, m.Expense)
	}
}

func TestGenerateMonthlyData_DropsOutsideWindow(t *testing.T) {
	anchor := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		{ID: "1", Date: "2020-05-01", Amount: 999999, Type: models.TransactionIncome, Category: models.CategoryRent},
		{ID: "2", Date: "ngày hỏng", Amount: 111111, Type: models.TransactionExpense, Category: models.CategoryTax},
		{ID: "3", Date: "2024-01-02", Amount: 100000, Type: models.TransactionIncome, Category: models.CategoryRent},
	}

	got := GenerateMonthlyDataAt(txs, 3, anchor)
	require.Len(t, got, 3)
	assert.Equal(t, int64(100000), got[2].Income)
	var totalIncome, totalExpense int64
	for _, m := range got {
		totalIncome += m.Income
		totalExpense += m.Expense
	}
	assert.Equal(t, int64(100000), totalIncome)
	assert.Equal(t, int64(0), totalExpense)
}

func TestGenerateMonthlyData_YearBoundaryLabels(t *testing.T) {
	anchor := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)

	got := GenerateMonthlyDataAt(nil, 4, anchor)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"11/2023", "12/2023", "1/2024", "2/2024"},
		[]string{got[0].Month, got[1].Month, got[2].Month, got[3].Month})
}

func TestGetCategoryInfo(t *testing.T) {
	info := GetCategoryInfo(models.CategoryRent)
	assert.Equal(t, "Tiền thuê phòng", info.Text)

	// Danh mục lạ trả về mặc định, không lỗi
	info = GetCategoryInfo("danh_muc_la")
	assert.Equal(t, "Không xác định", info.Text)
	assert.Equal(t, "bg-gray-100 text-gray-800", info.ClassName)
}

func TestGetTypeInfo(t *testing.T) {
	assert.Equal(t, "Khoản thu", GetTypeInfo(models.TransactionIncome).Text)
	assert.Equal(t, "Khoản chi", GetTypeInfo(models.TransactionExpense).Text)
	assert.Equal(t, "Không xác định", GetTypeInfo("transfer").Text)
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "5.000.000 ₫", FormatCurrency(5000000))
	assert.Equal(t, "0 ₫", FormatCurrency(0))
	assert.Equal(t, "999 ₫", FormatCurrency(999))
	assert.Equal(t, "1.000 ₫", FormatCurrency(1000))
	assert.Equal(t, "-1.500.000 ₫", FormatCurrency(-1500000))
}
