package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vai trò người dùng
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// Trạng thái người dùng
const (
	UserActive   = "active"
	UserInactive = "inactive"
)

// User người dùng hệ thống quản lý
type User struct {
	ID        string         `json:"id" gorm:"primaryKey;size:36"`
	Name      string         `json:"name" gorm:"size:100;not null"`
	Email     string         `json:"email" gorm:"size:100;not null;uniqueIndex"`
	Phone     string         `json:"phone" gorm:"size:20"`
	Role      string         `json:"role" gorm:"size:20;not null;default:staff;index"`
	Status    string         `json:"status" gorm:"size:20;not null;default:active;index"`
	Password  string         `json:"-" gorm:"size:255;not null"`
	LastLogin *time.Time     `json:"lastLogin,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName đặt tên bảng
func (User) TableName() string {
	return "users"
}

// BeforeCreate gán ID nếu chưa có
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserRoles các vai trò hợp lệ
func UserRoles() []string {
	return []string{RoleAdmin, RoleManager, RoleStaff}
}

// ValidUserRole kiểm tra vai trò
func ValidUserRole(role string) bool {
	for _, r := range UserRoles() {
		if r == role {
			return true
		}
	}
	return false
}

// ValidUserStatus kiểm tra trạng thái người dùng
func ValidUserStatus(status string) bool {
	return status == UserActive || status == UserInactive
}

// UserRoleDisplay bảng hiển thị vai trò
var UserRoleDisplay = map[string]DisplayInfo{
	RoleAdmin:   {Text: "Quản trị viên", ClassName: "bg-violet-100 text-violet-800"},
	RoleManager: {Text: "Quản lý", ClassName: "bg-blue-100 text-blue-800"},
	RoleStaff:   {Text: "Nhân viên", ClassName: "bg-slate-100 text-slate-800"},
}

// UserStatusDisplay bảng hiển thị trạng thái người dùng
var UserStatusDisplay = map[string]DisplayInfo{
	UserActive:   {Text: "Đang hoạt động", ClassName: "bg-emerald-100 text-emerald-800"},
	UserInactive: {Text: "Đã khóa", ClassName: "bg-rose-100 text-rose-800"},
}

// GetUserRoleInfo tra bảng hiển thị vai trò, không có thì trả về fallback
func GetUserRoleInfo(role string) DisplayInfo {
	if info, ok := UserRoleDisplay[role]; ok {
		return info
	}
	return UnknownDisplay
}

// GetUserStatusInfo tra bảng hiển thị trạng thái người dùng
func GetUserStatusInfo(status string) DisplayInfo {
	if info, ok := UserStatusDisplay[status]; ok {
		return info
	}
	return UnknownDisplay
}
