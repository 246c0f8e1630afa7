package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Loại giao dịch
const (
	TransactionIncome  = "income"  // khoản thu
	TransactionExpense = "expense" // khoản chi
)

// Danh mục thu
const (
	CategoryRent        = "rent"
	CategoryDeposit     = "deposit"
	CategoryService     = "service"
	CategoryPenalty     = "penalty"
	CategoryOtherIncome = "other_income"
)

// Danh mục chi
const (
	CategoryMaintenance  = "maintenance"
	CategoryUtility      = "utility"
	CategorySalary       = "salary"
	CategoryTax          = "tax"
	CategoryOtherExpense = "other_expense"
)

// Transaction giao dịch thu/chi
// Số tiền là VND nguyên (VND không có đơn vị lẻ). Ngày dạng "2006-01-02".
type Transaction struct {
	ID          string         `json:"id" gorm:"primaryKey;size:36"`
	Date        string         `json:"date" gorm:"size:10;not null;index"`
	Amount      int64          `json:"amount" gorm:"not null"`
	Type        string         `json:"type" gorm:"size:10;not null;index"`
	Category    string         `json:"category" gorm:"size:20;not null;index"`
	Description string         `json:"description" gorm:"size:255"`
	RoomID      string         `json:"roomId,omitempty" gorm:"size:36;index"`
	TenantID    string         `json:"tenantId,omitempty" gorm:"size:36;index"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName đặt tên bảng
func (Transaction) TableName() string {
	return "transactions"
}

// BeforeCreate gán ID nếu chưa có
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// IncomeCategories danh mục hợp lệ cho khoản thu
func IncomeCategories() []string {
	return []string{
		CategoryRent,
		CategoryDeposit,
		CategoryService,
		CategoryPenalty,
		CategoryOtherIncome,
	}
}

// ExpenseCategories danh mục hợp lệ cho khoản chi
func ExpenseCategories() []string {
	return []string{
		CategoryMaintenance,
		CategoryUtility,
		CategorySalary,
		CategoryTax,
		CategoryOtherExpense,
	}
}

// CategoriesForType trả về danh mục hợp lệ theo loại giao dịch; loại lạ trả về nil
func CategoriesForType(transactionType string) []string {
	switch transactionType {
	case TransactionIncome:
		return IncomeCategories()
	case TransactionExpense:
		return ExpenseCategories()
	}
	return nil
}

// ValidCategory kiểm tra danh mục có thuộc loại giao dịch không
// (không cho ghi giao dịch thu mang danh mục chi và ngược lại)
func ValidCategory(transactionType, category string) bool {
	for _, c := range CategoriesForType(transactionType) {
		if c == category {
			return true
		}
	}
	return false
}
