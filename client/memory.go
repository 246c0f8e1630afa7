package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
)

// MemoryOps bản Ops chạy hoàn toàn trong bộ nhớ, dùng cho chế độ cục bộ
// không có backend. ID do IDGenerator cắm vào sinh ra. Dữ liệu mất khi
// tiến trình kết thúc, không có lưu trữ lâu dài.
type MemoryOps[E any] struct {
	idOf  func(E) string
	setID func(*E, string)
	ids   IDGenerator

	mu    sync.Mutex
	items []E
}

func NewMemoryOps[E any](idOf func(E) string, setID func(*E, string), ids IDGenerator) *MemoryOps[E] {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	return &MemoryOps[E]{idOf: idOf, setID: setID, ids: ids}
}

// List trả về toàn bộ dữ liệu theo thứ tự thêm vào; bộ lọc do tầng trên tự áp
func (m *MemoryOps[E]) List(_ context.Context, _ url.Values) ([]E, PageInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]E, len(m.items))
	copy(out, m.items)
	return out, PageInfo{}, nil
}

func (m *MemoryOps[E]) Get(_ context.Context, id string) (E, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.items {
		if m.idOf(item) == id {
			return item, nil
		}
	}
	var zero E
	return zero, &APIError{StatusCode: 404, Message: "Không tìm thấy dữ liệu"}
}

// Create nhận bản nháp (entity hoặc map), gán ID mới rồi thêm vào cuối
func (m *MemoryOps[E]) Create(_ context.Context, draft any) (E, error) {
	var entity E
	if err := convertJSON(draft, &entity); err != nil {
		return entity, err
	}
	m.setID(&entity, m.ids.NewID())

	m.mu.Lock()
	m.items = append(m.items, entity)
	m.mu.Unlock()
	return entity, nil
}

// Update trộn bản vá vào entity hiện có qua JSON
func (m *MemoryOps[E]) Update(_ context.Context, id string, patch any) (E, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if m.idOf(item) != id {
			continue
		}
		merged, err := mergePatch(item, patch)
		if err != nil {
			return item, err
		}
		// ID không bao giờ đổi qua bản vá
		m.setID(&merged, id)
		m.items[i] = merged
		return merged, nil
	}
	var zero E
	return zero, &APIError{StatusCode: 404, Message: "Không tìm thấy dữ liệu"}
}

func (m *MemoryOps[E]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if m.idOf(item) == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return &APIError{StatusCode: 404, Message: "Không tìm thấy dữ liệu"}
}

func convertJSON(from, to any) error {
	data, err := json.Marshal(from)
	if err != nil {
		return fmt.Errorf("bản nháp không mã hóa được: %w", err)
	}
	if err := json.Unmarshal(data, to); err != nil {
		return fmt.Errorf("bản nháp không khớp kiểu entity: %w", err)
	}
	return nil
}

func mergePatch[E any](entity E, patch any) (E, error) {
	fields, err := jsonFields(entity)
	if err != nil {
		return entity, err
	}
	patchFields, err := jsonFields(patch)
	if err != nil {
		return entity, err
	}
	for key, value := range patchFields {
		fields[key] = value
	}

	var merged E
	data, err := json.Marshal(fields)
	if err != nil {
		return entity, err
	}
	if err := json.Unmarshal(data, &merged); err != nil {
		return entity, err
	}
	return merged, nil
}
