package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Loại bảo trì
const (
	MaintenancePreventive = "preventive" // định kỳ
	MaintenanceCorrective = "corrective" // sửa chữa
	MaintenancePredictive = "predictive" // dự đoán
)

// Trạng thái phiếu bảo trì
const (
	MaintenancePending    = "pending"
	MaintenanceInProgress = "in_progress"
	MaintenanceCompleted  = "completed"
	MaintenanceCancelled  = "cancelled"
)

// Mức ưu tiên
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Maintenance phiếu bảo trì thiết bị
type Maintenance struct {
	ID              string         `json:"id" gorm:"primaryKey;size:36"`
	EquipmentID     string         `json:"equipmentId" gorm:"size:36;index"`
	EquipmentName   string         `json:"equipmentName" gorm:"size:100;not null"`
	MaintenanceType string         `json:"maintenanceType" gorm:"size:20;not null;index"`
	Status          string         `json:"status" gorm:"size:20;not null;default:pending;index"`
	Description     string         `json:"description" gorm:"size:255"`
	StartDate       string         `json:"startDate" gorm:"size:10;not null;index"`
	EndDate         string         `json:"endDate,omitempty" gorm:"size:10"`
	AssignedTo      string         `json:"assignedTo" gorm:"size:100"`
	Priority        string         `json:"priority" gorm:"size:10;not null;default:medium;index"`
	Cost            int64          `json:"cost,omitempty"`
	Notes           string         `json:"notes,omitempty" gorm:"size:255"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName đặt tên bảng
func (Maintenance) TableName() string {
	return "maintenances"
}

// BeforeCreate gán ID nếu chưa có
func (m *Maintenance) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// MaintenanceStatusDisplay bảng hiển thị trạng thái bảo trì
var MaintenanceStatusDisplay = map[string]DisplayInfo{
	MaintenancePending:    {Text: "Chờ xử lý", ClassName: "bg-amber-100 text-amber-800"},
	MaintenanceInProgress: {Text: "Đang thực hiện", ClassName: "bg-blue-100 text-blue-800"},
	MaintenanceCompleted:  {Text: "Hoàn thành", ClassName: "bg-emerald-100 text-emerald-800"},
	MaintenanceCancelled:  {Text: "Đã hủy", ClassName: "bg-slate-100 text-slate-800"},
}

// MaintenancePriorityDisplay bảng hiển thị mức ưu tiên
var MaintenancePriorityDisplay = map[string]DisplayInfo{
	PriorityLow:    {Text: "Thấp", ClassName: "bg-slate-100 text-slate-800"},
	PriorityMedium: {Text: "Trung bình", ClassName: "bg-amber-100 text-amber-800"},
	PriorityHigh:   {Text: "Cao", ClassName: "bg-rose-100 text-rose-800"},
}
