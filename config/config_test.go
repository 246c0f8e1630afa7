package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	defer func() { GlobalConfig = nil }()

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "utf8mb4", cfg.Database.Charset)

	// Các giá trị dẫn xuất phía client
	assert.Equal(t, 3, cfg.Client.RetryAttempts)
	assert.Equal(t, 5*time.Second, cfg.Client.Timeout)
	assert.Equal(t, time.Second, cfg.Client.RetryDelay)
}

func TestSafeErrorMessage(t *testing.T) {
	fallback := "Thao tác thất bại"
	testErr := errors.New("internal database error")

	// err nil trả về fallback
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// chế độ release trả về fallback, không lộ chi tiết lỗi
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// chế độ debug trả về err.Error()
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// GlobalConfig nil coi như môi trường phát triển
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}
