// Package reports tính các số liệu tổng hợp cho màn hình hợp đồng và báo cáo.
package reports

import (
	"strings"
	"time"

	"nhatro/finance"
	"nhatro/models"
)

// Tab lọc hợp đồng
const (
	ContractTabAll     = "all"
	ContractTabActive  = "active"
	ContractTabExpired = "expired"
)

// Summary số liệu tổng quan của báo cáo
type Summary struct {
	TotalRevenue     int64   `json:"totalRevenue"`
	AverageOccupancy float64 `json:"averageOccupancy"`
	TotalTenants     int64   `json:"totalTenants"`
	ActiveContracts  int64   `json:"activeContracts"`
	MaintenanceCount int64   `json:"maintenanceCount"`
}

// RevenueData doanh thu theo tháng cho biểu đồ báo cáo
type RevenueData struct {
	Month    string `json:"month"`
	Revenue  int64  `json:"revenue"`
	Expenses int64  `json:"expenses"`
	Profit   int64  `json:"profit"`
}

// OccupancyData tỷ lệ lấp đầy phòng
type OccupancyData struct {
	TotalRooms    int     `json:"totalRooms"`
	OccupiedRooms int     `json:"occupiedRooms"`
	OccupancyRate float64 `json:"occupancyRate"`
}

// FilterContracts lọc hợp đồng theo tab trạng thái rồi đến từ khóa
// (khớp mã hợp đồng, tên khách thuê hoặc số phòng, không phân biệt hoa thường)
func FilterContracts(contracts []models.Contract, tab, searchQuery string) []models.Contract {
	query := strings.ToLower(strings.TrimSpace(searchQuery))
	result := make([]models.Contract, 0, len(contracts))

	for _, ct := range contracts {
		if tab == ContractTabActive && ct.Status != models.ContractActive {
			continue
		}
		if tab == ContractTabExpired && ct.Status != models.ContractExpired {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(ct.ID), query) &&
			!strings.Contains(strings.ToLower(ct.TenantName), query) &&
			!strings.Contains(strings.ToLower(ct.RoomNumber), query) {
			continue
		}
		result = append(result, ct)
	}
	return result
}

// TotalMonthlyRent tổng tiền thuê hằng tháng của các hợp đồng đang hiệu lực
func TotalMonthlyRent(contracts []models.Contract) int64 {
	var total int64
	for _, ct := range contracts {
		if ct.Status == models.ContractActive {
			total += ct.MonthlyRent
		}
	}
	return total
}

// CalculateOccupancy tính tỷ lệ lấp đầy từ danh sách phòng.
// Không có phòng nào thì tỷ lệ bằng 0, không chia cho 0.
func CalculateOccupancy(rooms []models.Room) OccupancyData {
	data := OccupancyData{TotalRooms: len(rooms)}
	for _, r := range rooms {
		if r.Status == models.RoomOccupied {
			data.OccupiedRooms++
		}
	}
	if data.TotalRooms > 0 {
		data.OccupancyRate = float64(data.OccupiedRooms) / float64(data.TotalRooms) * 100
	}
	return data
}

// GenerateRevenueData dựng dữ liệu doanh thu theo tháng từ giao dịch,
// lợi nhuận = thu - chi từng tháng
func GenerateRevenueData(transactions []models.Transaction, monthCount int, anchor time.Time) []RevenueData {
	monthly := finance.GenerateMonthlyDataAt(transactions, monthCount, anchor)
	result := make([]RevenueData, 0, len(monthly))
	for _, m := range monthly {
		result = append(result, RevenueData{
			Month:    m.Month,
			Revenue:  m.Income,
			Expenses: m.Expense,
			Profit:   m.Income - m.Expense,
		})
	}
	return result
}
