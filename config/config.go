package config

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config cấu hình ứng dụng
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Client   ClientConfig   `mapstructure:"client"`
}

// ServerConfig cấu hình máy chủ
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig cấu hình CSDL
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	Charset  string `mapstructure:"charset"`
}

// ClientConfig cấu hình phía client (CLI/back-office)
type ClientConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	TimeoutSeconds int           `mapstructure:"timeout_seconds"`
	RetryAttempts  int           `mapstructure:"retry_attempts"`
	RetryDelayMS   int           `mapstructure:"retry_delay_ms"`
	Timeout        time.Duration `mapstructure:"-"`
	RetryDelay     time.Duration `mapstructure:"-"`
}

var (
	// GlobalConfig cấu hình toàn cục
	GlobalConfig *Config
)

// LoadConfig nạp cấu hình
// Ưu tiên: biến môi trường > file cấu hình ngoài > cấu hình mặc định nhúng sẵn
// configPath: đường dẫn file cấu hình ngoài (tùy chọn)
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// 1. Nạp cấu hình mặc định nhúng sẵn
	if err := v.ReadConfig(bytes.NewReader(DefaultConfigYAML)); err != nil {
		return nil, fmt.Errorf("đọc cấu hình mặc định thất bại: %w", err)
	}

	// 2. Gộp file cấu hình ngoài nếu có
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.MergeInConfig(); err != nil {
			log.Printf("Cảnh báo: không đọc được file cấu hình %s: %v", configPath, err)
		} else {
			log.Printf("Đã gộp file cấu hình: %s", configPath)
		}
	} else {
		external := viper.New()
		external.SetConfigName("config")
		external.SetConfigType("yaml")
		external.AddConfigPath(".")
		external.AddConfigPath("./config")
		external.AddConfigPath("/etc/nhatro")
		external.AddConfigPath("$HOME/.nhatro")

		if err := external.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(external.AllSettings()); err != nil {
				log.Printf("Cảnh báo: gộp cấu hình ngoài thất bại: %v", err)
			} else {
				log.Printf("Đã gộp file cấu hình: %s", external.ConfigFileUsed())
			}
		}
	}

	// 3. Cho phép biến môi trường ghi đè (NHATRO_SERVER_PORT...)
	v.SetEnvPrefix("NHATRO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("phân tích cấu hình thất bại: %w", err)
	}

	if cfg.Client.TimeoutSeconds <= 0 {
		cfg.Client.TimeoutSeconds = 5
	}
	if cfg.Client.RetryAttempts <= 0 {
		cfg.Client.RetryAttempts = 3
	}
	if cfg.Client.RetryDelayMS <= 0 {
		cfg.Client.RetryDelayMS = 1000
	}
	cfg.Client.Timeout = time.Duration(cfg.Client.TimeoutSeconds) * time.Second
	cfg.Client.RetryDelay = time.Duration(cfg.Client.RetryDelayMS) * time.Millisecond

	GlobalConfig = &cfg
	return &cfg, nil
}

// MustLoadConfig nạp cấu hình, panic nếu thất bại
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("nạp cấu hình thất bại: %v", err))
	}
	return cfg
}

// GetConfig lấy cấu hình toàn cục
func GetConfig() *Config {
	if GlobalConfig == nil {
		panic("cấu hình chưa được khởi tạo, gọi LoadConfig trước")
	}
	return GlobalConfig
}

// SafeErrorMessage ở chế độ release không trả chi tiết lỗi nội bộ cho client
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return err.Error()
}

// PrintConfig in cấu hình hiện tại (ẩn thông tin nhạy cảm)
func PrintConfig() {
	if GlobalConfig == nil {
		return
	}
	log.Printf("Cấu hình hiện tại:")
	log.Printf("  Máy chủ: %s (chế độ: %s)", GlobalConfig.Server.Port, GlobalConfig.Server.Mode)
	log.Printf("  CSDL: %s@%s:%s/%s",
		GlobalConfig.Database.Username,
		GlobalConfig.Database.Host,
		GlobalConfig.Database.Port,
		GlobalConfig.Database.DBName)
}
