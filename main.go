package main

import (
	"flag"
	"log"
	"strings"

	"nhatro/config"
	"nhatro/database"
	"nhatro/router"

	"github.com/joho/godotenv"
)

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "đường dẫn file cấu hình ngoài (tùy chọn)")
	flag.StringVar(&configFile, "c", "", "đường dẫn file cấu hình ngoài (viết tắt)")
	flag.StringVar(&port, "port", "", "cổng lắng nghe, ví dụ: 8080 hoặc :8080")
	flag.StringVar(&port, "p", "", "cổng lắng nghe (viết tắt)")
	flag.BoolVar(&showVersion, "version", false, "hiển thị phiên bản")
	flag.BoolVar(&showVersion, "v", false, "hiển thị phiên bản (viết tắt)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("Hệ thống quản lý nhà trọ v1.0.0")
		return
	}

	// Nạp .env nếu có, không có cũng không sao
	if err := godotenv.Load(); err == nil {
		log.Println("Đã nạp biến môi trường từ .env")
	}

	// Nạp cấu hình (mặc định nhúng sẵn + file ngoài ghi đè nếu chỉ định)
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("Nạp cấu hình thất bại: %v", err)
	}

	// Tham số dòng lệnh ghi đè cổng trong cấu hình
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("Dòng lệnh chỉ định cổng: %s", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("Khởi tạo cơ sở dữ liệu thất bại: %v", err)
	}

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  🏠 Hệ thống quản lý nhà trọ đã khởi động")
	log.Printf("==========================================")
	log.Printf("  API:       http://localhost%s/api/", cfg.Server.Port)
	log.Printf("  Cài đặt:   http://localhost%s/settings/", cfg.Server.Port)
	log.Printf("  Sức khỏe:  http://localhost%s/health", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("Khởi động máy chủ thất bại: %v", err)
	}
}
