package database

import (
	"fmt"
	"log"

	"nhatro/config"
	"nhatro/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init khởi tạo kết nối CSDL
func Init(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("kết nối CSDL thất bại: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// Tham số pool kết nối
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	// Tự động migrate các bảng
	if err := DB.AutoMigrate(
		&models.Room{},
		&models.RoomType{},
		&models.Tenant{},
		&models.Contract{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.Maintenance{},
		&models.Transaction{},
		&models.User{},
	); err != nil {
		return err
	}

	// Tạo sẵn các loại phòng mặc định (chỉ khi bảng trống)
	var typeCount int64
	DB.Model(&models.RoomType{}).Count(&typeCount)
	if typeCount == 0 {
		defaults := []models.RoomType{
			{Name: "Phòng đơn", Description: "Phòng một người, vệ sinh khép kín"},
			{Name: "Phòng đôi", Description: "Phòng hai người, có gác lửng"},
			{Name: "Phòng studio", Description: "Phòng rộng kèm bếp riêng"},
			{Name: "Phòng VIP", Description: "Phòng đầy đủ nội thất, điều hòa"},
		}
		if err := DB.Create(&defaults).Error; err != nil {
			log.Printf("Cảnh báo: tạo loại phòng mặc định thất bại: %v", err)
		}
	}

	log.Println("Khởi tạo CSDL thành công")
	return nil
}

// GetDB lấy kết nối CSDL
func GetDB() *gorm.DB {
	return DB
}
