package client

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// IDGenerator sinh định danh cho entity khi chạy chế độ cục bộ
// (không có backend gán ID). Cắm vào MemoryOps, không gắn cứng vào logic nghiệp vụ.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator sinh UUID v4
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// TimestampGenerator sinh ID dạng "<prefix>-<mili giây>-<hậu tố ngẫu nhiên>",
// giữ tương thích với dữ liệu cũ sinh theo kiểu này
type TimestampGenerator struct {
	Prefix string
}

func (g TimestampGenerator) NewID() string {
	prefix := g.Prefix
	if prefix == "" {
		prefix = "id"
	}
	return fmt.Sprintf("%s-%d-%04d", prefix, time.Now().UnixMilli(), rand.Intn(10000))
}
