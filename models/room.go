package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Trạng thái phòng
const (
	RoomVacant      = "vacant"      // trống
	RoomOccupied    = "occupied"    // đang thuê
	RoomMaintenance = "maintenance" // bảo trì
	RoomReserved    = "reserved"    // đã đặt cọc
)

// Room phòng cho thuê
type Room struct {
	ID          string         `json:"id" gorm:"primaryKey;size:36"`
	Name        string         `json:"name" gorm:"size:100;not null"`
	RoomType    string         `json:"roomType" gorm:"size:36;index"`
	RoomNumber  string         `json:"roomNumber" gorm:"size:20;not null"`
	Price       int64          `json:"price" gorm:"not null"`
	Status      string         `json:"status" gorm:"size:20;not null;default:vacant;index"`
	Description string         `json:"description" gorm:"size:255"`
	Floor       int            `json:"floor" gorm:"default:1"`
	Area        float64        `json:"area"`
	Amenities   []string       `json:"amenities" gorm:"serializer:json"`
	Images      []string       `json:"images" gorm:"serializer:json"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName đặt tên bảng
func (Room) TableName() string {
	return "rooms"
}

// BeforeCreate gán ID nếu chưa có
func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// RoomStatuses các trạng thái phòng hợp lệ
func RoomStatuses() []string {
	return []string{RoomVacant, RoomOccupied, RoomMaintenance, RoomReserved}
}

// ValidRoomStatus kiểm tra trạng thái phòng
func ValidRoomStatus(status string) bool {
	for _, s := range RoomStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// RoomStatusDisplay bảng hiển thị trạng thái phòng
var RoomStatusDisplay = map[string]DisplayInfo{
	RoomVacant:      {Text: "Phòng trống", ClassName: "bg-emerald-100 text-emerald-800"},
	RoomOccupied:    {Text: "Đang thuê", ClassName: "bg-blue-100 text-blue-800"},
	RoomMaintenance: {Text: "Đang bảo trì", ClassName: "bg-orange-100 text-orange-800"},
	RoomReserved:    {Text: "Đã đặt cọc", ClassName: "bg-amber-100 text-amber-800"},
}

// GetRoomStatusInfo tra thông tin hiển thị trạng thái phòng
func GetRoomStatusInfo(status string) DisplayInfo {
	if info, ok := RoomStatusDisplay[status]; ok {
		return info
	}
	return UnknownDisplay
}
