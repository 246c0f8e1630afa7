package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
)

// Trạng thái danh sách
const (
	StateIdle    = "idle"
	StateLoading = "loading"
	StateLoaded  = "loaded"
	StateFailed  = "failed"
)

// Ops các thao tác CRUD mà bộ điều khiển cần từ một tài nguyên.
// *Resource[E] thỏa mãn sẵn; test có thể cắm bản giả.
type Ops[E any] interface {
	List(ctx context.Context, query url.Values) ([]E, PageInfo, error)
	Get(ctx context.Context, id string) (E, error)
	Create(ctx context.Context, draft any) (E, error)
	Update(ctx context.Context, id string, patch any) (E, error)
	Delete(ctx context.Context, id string) error
}

// StatusOps thao tác đổi trạng thái; *StatusResource[E] thỏa mãn,
// Resource thường thì không nên gọi nhầm bị chặn tại chỗ
type StatusOps[E any] interface {
	SetStatus(ctx context.Context, id, status string) (E, error)
}

// Controller bộ điều khiển danh sách dùng chung cho mọi màn hình quản lý.
// Một instance cho một loại entity; danh sách trong bộ nhớ thuộc riêng instance đó.
//
// Vòng đời: Idle → Loading → Loaded hoặc Failed. Tải thất bại giữ nguyên
// dữ liệu cũ. Thao tác ghi chỉ khóa đúng dòng bị ảnh hưởng, không chặn
// phần còn lại của danh sách. Khi hai lần tải chồng lên nhau, kết quả của
// lần phát sau thắng, phản hồi cũ bị bỏ.
type Controller[E any] struct {
	ops      Ops[E]
	idOf     func(E) string
	notifier Notifier

	mu         sync.Mutex
	state      string
	items      []E
	page       PageInfo
	err        error
	generation uint64
	mutating   map[string]bool
}

// NewController tạo bộ điều khiển; idOf lấy ID từ entity, notifier nil thì im lặng
func NewController[E any](ops Ops[E], idOf func(E) string, notifier Notifier) *Controller[E] {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Controller[E]{
		ops:      ops,
		idOf:     idOf,
		notifier: notifier,
		state:    StateIdle,
		mutating: map[string]bool{},
	}
}

// Load tải danh sách theo bộ lọc, thay thế toàn bộ dữ liệu hiện có.
// Gọi chồng nhau được: chỉ kết quả của lần gọi mới nhất được giữ lại.
func (c *Controller[E]) Load(ctx context.Context, query url.Values) error {
	c.mu.Lock()
	c.generation++
	generation := c.generation
	c.state = StateLoading
	c.mu.Unlock()

	items, page, err := c.ops.List(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		// Đã có lần tải mới hơn, bỏ kết quả này
		return nil
	}
	if err != nil {
		c.state = StateFailed
		c.err = err
		c.notifier.Notify(Notification{
			Title:       "Lỗi",
			Description: "Không thể tải danh sách: " + err.Error(),
			Variant:     VariantDestructive,
		})
		return err
	}
	c.state = StateLoaded
	c.err = nil
	c.items = items
	c.page = page
	return nil
}

// Create gửi bản nháp lên backend; thất bại thì danh sách giữ nguyên
func (c *Controller[E]) Create(ctx context.Context, draft any) (E, error) {
	created, err := c.ops.Create(ctx, draft)
	if err != nil {
		c.notifier.Notify(Notification{
			Title:       "Lỗi",
			Description: err.Error(),
			Variant:     VariantDestructive,
		})
		return created, err
	}

	c.mu.Lock()
	c.items = append(c.items, created)
	c.mu.Unlock()

	c.notifier.Notify(Notification{Title: "Thành công", Description: "Đã thêm mới"})
	return created, nil
}

// Update gửi bản vá một phần. Bản vá rỗng là no-op tại chỗ, không gọi mạng.
func (c *Controller[E]) Update(ctx context.Context, id string, patch map[string]any) (E, error) {
	if len(patch) == 0 {
		c.mu.Lock()
		defer c.mu.Unlock()
		for _, item := range c.items {
			if c.idOf(item) == id {
				return item, nil
			}
		}
		var zero E
		return zero, fmt.Errorf("không tìm thấy entity %q trong danh sách", id)
	}

	c.beginMutation(id)
	defer c.endMutation(id)

	updated, err := c.ops.Update(ctx, id, patch)
	if err != nil {
		c.notifier.Notify(Notification{
			Title:       "Lỗi",
			Description: err.Error(),
			Variant:     VariantDestructive,
		})
		return updated, err
	}

	c.replaceItem(id, updated)
	c.notifier.Notify(Notification{Title: "Thành công", Description: "Đã cập nhật"})
	return updated, nil
}

// Delete xóa entity; thất bại thì danh sách không đổi
func (c *Controller[E]) Delete(ctx context.Context, id string) error {
	c.beginMutation(id)
	defer c.endMutation(id)

	if err := c.ops.Delete(ctx, id); err != nil {
		c.notifier.Notify(Notification{
			Title:       "Lỗi",
			Description: err.Error(),
			Variant:     VariantDestructive,
		})
		return err
	}

	c.mu.Lock()
	kept := c.items[:0:0]
	for _, item := range c.items {
		if c.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.mu.Unlock()

	c.notifier.Notify(Notification{Title: "Thành công", Description: "Đã xóa"})
	return nil
}

// SetStatus đổi trạng thái một dòng, chỉ dùng được khi ops hỗ trợ
func (c *Controller[E]) SetStatus(ctx context.Context, id, status string) (E, error) {
	statusOps, ok := c.ops.(StatusOps[E])
	if !ok {
		var zero E
		return zero, fmt.Errorf("tài nguyên này không hỗ trợ đổi trạng thái")
	}

	c.beginMutation(id)
	defer c.endMutation(id)

	updated, err := statusOps.SetStatus(ctx, id, status)
	if err != nil {
		c.notifier.Notify(Notification{
			Title:       "Lỗi",
			Description: err.Error(),
			Variant:     VariantDestructive,
		})
		return updated, err
	}

	c.replaceItem(id, updated)
	c.notifier.Notify(Notification{Title: "Thành công", Description: "Đã đổi trạng thái"})
	return updated, nil
}

// Get đọc một entity trực tiếp từ backend (có retry ở tầng client)
func (c *Controller[E]) Get(ctx context.Context, id string) (E, error) {
	return c.ops.Get(ctx, id)
}

// State trạng thái hiện tại của danh sách
func (c *Controller[E]) State() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Items bản sao danh sách hiện tại
func (c *Controller[E]) Items() []E {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]E, len(c.items))
	copy(out, c.items)
	return out
}

// Err lỗi của lần tải gần nhất, nil khi tải thành công
func (c *Controller[E]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Page thông tin phân trang của lần tải gần nhất (tài nguyên phân trang máy chủ)
func (c *Controller[E]) Page() PageInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// IsMutating cho biết một dòng đang có thao tác ghi dang dở
func (c *Controller[E]) IsMutating(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mutating[id]
}

func (c *Controller[E]) beginMutation(id string) {
	c.mu.Lock()
	c.mutating[id] = true
	c.mu.Unlock()
}

func (c *Controller[E]) endMutation(id string) {
	c.mu.Lock()
	delete(c.mutating, id)
	c.mu.Unlock()
}

func (c *Controller[E]) replaceItem(id string, updated E) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if c.idOf(item) == id {
			c.items[i] = updated
			return
		}
	}
}

// DiffFields so sánh hai bản entity qua JSON, trả về bản vá chỉ gồm
// các trường có giá trị thay đổi. Hai bản giống hệt nhau cho ra bản vá rỗng.
func DiffFields(before, after any) (map[string]any, error) {
	beforeFields, err := jsonFields(before)
	if err != nil {
		return nil, err
	}
	afterFields, err := jsonFields(after)
	if err != nil {
		return nil, err
	}

	patch := map[string]any{}
	for key, afterRaw := range afterFields {
		if beforeRaw, ok := beforeFields[key]; ok && string(beforeRaw) == string(afterRaw) {
			continue
		}
		var value any
		if err := json.Unmarshal(afterRaw, &value); err != nil {
			return nil, err
		}
		patch[key] = value
	}
	return patch, nil
}

func jsonFields(v any) (map[string]json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
