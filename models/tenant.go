package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Trạng thái khách thuê
const (
	TenantActive   = "active"   // đang thuê
	TenantInactive = "inactive" // đã trả phòng
)

// Tenant khách thuê phòng
// RoomID chỉ là tham chiếu mềm, không ràng buộc với bảng phòng.
type Tenant struct {
	ID        string         `json:"id" gorm:"primaryKey;size:36"`
	Name      string         `json:"name" gorm:"size:100;not null"`
	Email     string         `json:"email" gorm:"size:100"`
	Phone     string         `json:"phone" gorm:"size:20"`
	IDNumber  string         `json:"idNumber" gorm:"size:20"`
	RoomID    string         `json:"roomId,omitempty" gorm:"size:36;index"`
	StartDate string         `json:"startDate,omitempty" gorm:"size:10"`
	Status    string         `json:"status" gorm:"size:20;not null;default:active;index"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName đặt tên bảng
func (Tenant) TableName() string {
	return "tenants"
}

// BeforeCreate gán ID nếu chưa có
func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// TenantStatusDisplay bảng hiển thị trạng thái khách thuê
var TenantStatusDisplay = map[string]DisplayInfo{
	TenantActive:   {Text: "Đang thuê", ClassName: "bg-emerald-100 text-emerald-800"},
	TenantInactive: {Text: "Đã trả phòng", ClassName: "bg-slate-100 text-slate-800"},
}
