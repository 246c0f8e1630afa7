package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Trạng thái hóa đơn
const (
	InvoicePending = "pending" // chờ thanh toán
	InvoicePaid    = "paid"    // đã thanh toán
	InvoiceOverdue = "overdue" // quá hạn
)

// Invoice hóa đơn thu tiền phòng/dịch vụ
type Invoice struct {
	ID            string         `json:"id" gorm:"primaryKey;size:36"`
	InvoiceNumber string         `json:"invoiceNumber" gorm:"size:30;not null;uniqueIndex"`
	Date          string         `json:"date" gorm:"size:10;not null;index"`
	DueDate       string         `json:"dueDate" gorm:"size:10;not null"`
	RoomID        string         `json:"roomId" gorm:"size:36;index"`
	TenantID      string         `json:"tenantId" gorm:"size:36;index"`
	Items         []InvoiceItem  `json:"items" gorm:"foreignKey:InvoiceID"`
	TotalAmount   int64          `json:"totalAmount" gorm:"not null"`
	Status        string         `json:"status" gorm:"size:20;not null;default:pending;index"`
	Notes         string         `json:"notes,omitempty" gorm:"size:255"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

// InvoiceItem một dòng trên hóa đơn
type InvoiceItem struct {
	ID          string `json:"id" gorm:"primaryKey;size:36"`
	InvoiceID   string `json:"-" gorm:"size:36;index;not null"`
	Description string `json:"description" gorm:"size:255;not null"`
	Quantity    int    `json:"quantity" gorm:"not null;default:1"`
	UnitPrice   int64  `json:"unitPrice" gorm:"not null"`
	Amount      int64  `json:"amount" gorm:"not null"`
}

// TableName đặt tên bảng
func (Invoice) TableName() string {
	return "invoices"
}

// TableName đặt tên bảng
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// BeforeCreate gán ID nếu chưa có
func (iv *Invoice) BeforeCreate(tx *gorm.DB) error {
	if iv.ID == "" {
		iv.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate gán ID nếu chưa có
func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	return nil
}

// ComputeTotals tính lại thành tiền từng dòng và tổng hóa đơn
// (tổng luôn được tính lại phía server, không tin số client gửi lên)
func (iv *Invoice) ComputeTotals() {
	var total int64
	for i := range iv.Items {
		item := &iv.Items[i]
		if item.Quantity <= 0 {
			item.Quantity = 1
		}
		item.Amount = int64(item.Quantity) * item.UnitPrice
		total += item.Amount
	}
	iv.TotalAmount = total
}

// InvoiceStatusDisplay bảng hiển thị trạng thái hóa đơn
var InvoiceStatusDisplay = map[string]DisplayInfo{
	InvoicePending: {Text: "Chờ thanh toán", ClassName: "bg-amber-100 text-amber-800"},
	InvoicePaid:    {Text: "Đã thanh toán", ClassName: "bg-emerald-100 text-emerald-800"},
	InvoiceOverdue: {Text: "Quá hạn", ClassName: "bg-rose-100 text-rose-800"},
}
