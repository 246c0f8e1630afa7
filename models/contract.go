package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Trạng thái hợp đồng
const (
	ContractActive  = "active"  // đang hiệu lực
	ContractExpired = "expired" // đã hết hạn
	ContractPending = "pending" // chờ ký kết
)

// Contract hợp đồng thuê phòng
// TenantName và RoomNumber được lưu phẳng theo dữ liệu gốc, không ràng buộc khóa ngoại.
type Contract struct {
	ID          string         `json:"id" gorm:"primaryKey;size:36"`
	TenantName  string         `json:"tenantName" gorm:"size:100;not null"`
	RoomNumber  string         `json:"roomNumber" gorm:"size:20;not null"`
	StartDate   string         `json:"startDate" gorm:"size:10;not null"`
	EndDate     string         `json:"endDate" gorm:"size:10;not null"`
	Status      string         `json:"status" gorm:"size:20;not null;default:pending;index"`
	MonthlyRent int64          `json:"monthlyRent" gorm:"not null"`
	Deposit     int64          `json:"deposit"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName đặt tên bảng
func (Contract) TableName() string {
	return "contracts"
}

// BeforeCreate gán ID nếu chưa có
func (ct *Contract) BeforeCreate(tx *gorm.DB) error {
	if ct.ID == "" {
		ct.ID = uuid.NewString()
	}
	return nil
}

// ContractStatusDisplay bảng hiển thị trạng thái hợp đồng
var ContractStatusDisplay = map[string]DisplayInfo{
	ContractActive:  {Text: "Đang hiệu lực", ClassName: "bg-emerald-100 text-emerald-800"},
	ContractExpired: {Text: "Đã hết hạn", ClassName: "bg-rose-100 text-rose-800"},
	ContractPending: {Text: "Chờ ký kết", ClassName: "bg-amber-100 text-amber-800"},
}

// GetContractStatusInfo tra thông tin hiển thị trạng thái hợp đồng
func GetContractStatusInfo(status string) DisplayInfo {
	if info, ok := ContractStatusDisplay[status]; ok {
		return info
	}
	return UnknownDisplay
}
