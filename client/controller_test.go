package client

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOps bản Ops điều khiển được cho test bộ điều khiển
type fakeOps struct {
	mu          sync.Mutex
	listResults [][]testRoom
	listErr     error
	listErrs    map[int]error // lỗi riêng cho từng lần gọi List, ưu tiên hơn listErr
	listCalls   int
	listGate    chan struct{} // nếu khác nil, lần gọi List đầu tiên chờ tín hiệu mới trả về
	listStarted chan struct{} // đóng lại khi lần gọi bị chặn đã vào đến List
	updateCalls int
	createErr   error
	deleteErr   error
}

func (f *fakeOps) List(_ context.Context, _ url.Values) ([]testRoom, PageInfo, error) {
	f.mu.Lock()
	call := f.listCalls
	f.listCalls++
	gate := f.listGate
	started := f.listStarted
	f.mu.Unlock()

	if call == 0 && gate != nil {
		if started != nil {
			close(started)
		}
		<-gate
	}
	if err, ok := f.listErrs[call]; ok {
		return nil, PageInfo{}, err
	}
	if f.listErr != nil {
		return nil, PageInfo{}, f.listErr
	}
	if call < len(f.listResults) {
		return f.listResults[call], PageInfo{}, nil
	}
	return nil, PageInfo{}, nil
}

func (f *fakeOps) Get(_ context.Context, id string) (testRoom, error) {
	return testRoom{ID: id}, nil
}

func (f *fakeOps) Create(_ context.Context, draft any) (testRoom, error) {
	if f.createErr != nil {
		return testRoom{}, f.createErr
	}
	m := draft.(map[string]any)
	return testRoom{ID: "new-id", Name: m["name"].(string)}, nil
}

func (f *fakeOps) Update(_ context.Context, id string, patch any) (testRoom, error) {
	f.mu.Lock()
	f.updateCalls++
	f.mu.Unlock()
	m := patch.(map[string]any)
	room := testRoom{ID: id}
	if name, ok := m["name"].(string); ok {
		room.Name = name
	}
	if status, ok := m["status"].(string); ok {
		room.Status = status
	}
	return room, nil
}

func (f *fakeOps) Delete(_ context.Context, id string) error {
	return f.deleteErr
}

// recordingNotifier gom thông báo lại để kiểm tra
type recordingNotifier struct {
	mu            sync.Mutex
	notifications []Notification
}

func (r *recordingNotifier) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *recordingNotifier) all() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.notifications...)
}

func roomID(r testRoom) string { return r.ID }

func TestController_LoadSuccess(t *testing.T) {
	ops := &fakeOps{listResults: [][]testRoom{{{ID: "a"}, {ID: "b"}}}}
	ctrl := NewController[testRoom](ops, roomID, nil)

	assert.Equal(t, StateIdle, ctrl.State())
	require.NoError(t, ctrl.Load(context.Background(), nil))

	assert.Equal(t, StateLoaded, ctrl.State())
	assert.Len(t, ctrl.Items(), 2)
	assert.NoError(t, ctrl.Err())
}

func TestController_LoadFailureKeepsPreviousItems(t *testing.T) {
	ops := &fakeOps{listResults: [][]testRoom{{{ID: "a"}}}}
	notifier := &recordingNotifier{}
	ctrl := NewController[testRoom](ops, roomID, notifier)

	require.NoError(t, ctrl.Load(context.Background(), nil))
	require.Len(t, ctrl.Items(), 1)

	ops.listErr = errors.New("mất kết nối")
	require.Error(t, ctrl.Load(context.Background(), nil))

	// Tải lại thất bại: trạng thái Failed nhưng dữ liệu cũ vẫn còn
	assert.Equal(t, StateFailed, ctrl.State())
	assert.Len(t, ctrl.Items(), 1)
	assert.Error(t, ctrl.Err())

	notifications := notifier.all()
	require.NotEmpty(t, notifications)
	assert.Equal(t, VariantDestructive, notifications[len(notifications)-1].Variant)
}

func TestController_StaleLoadDiscarded(t *testing.T) {
	gate := make(chan struct{})
	started := make(chan struct{})
	ops := &fakeOps{
		listResults: [][]testRoom{{{ID: "stale"}}, {{ID: "fresh"}}},
		listGate:    gate,
		listStarted: started,
	}
	ctrl := NewController[testRoom](ops, roomID, nil)

	// Lần 1 treo trên mạng, lần 2 phát sau và về trước
	firstDone := make(chan error, 1)
	go func() {
		firstDone <- ctrl.Load(context.Background(), nil)
	}()
	<-started
	require.NoError(t, ctrl.Load(context.Background(), nil))
	require.Equal(t, StateLoaded, ctrl.State())

	// Thả lần 1 về muộn: phản hồi của nó phải bị bỏ
	close(gate)
	require.NoError(t, <-firstDone)

	items := ctrl.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "fresh", items[0].ID, "kết quả của lần phát sau phải thắng")
	assert.Equal(t, StateLoaded, ctrl.State())
}

func TestController_StaleLoadErrorIgnored(t *testing.T) {
	gate := make(chan struct{})
	started := make(chan struct{})
	ops := &fakeOps{
		listResults: [][]testRoom{nil, {{ID: "fresh"}}},
		listErrs:    map[int]error{0: errors.New("mất kết nối")},
		listGate:    gate,
		listStarted: started,
	}
	notifier := &recordingNotifier{}
	ctrl := NewController[testRoom](ops, roomID, notifier)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- ctrl.Load(context.Background(), nil)
	}()
	<-started
	require.NoError(t, ctrl.Load(context.Background(), nil))

	// Lỗi của lần tải đã cũ không được kéo trạng thái về Failed
	close(gate)
	require.NoError(t, <-firstDone)

	assert.Equal(t, StateLoaded, ctrl.State())
	assert.NoError(t, ctrl.Err())
	items := ctrl.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "fresh", items[0].ID)
	assert.Empty(t, notifier.all(), "phản hồi cũ bị bỏ thì không thông báo lỗi")
}

func TestController_FailedCreateLeavesListUntouched(t *testing.T) {
	ops := &fakeOps{listResults: [][]testRoom{{{ID: "a", Name: "Phòng 101"}}}}
	notifier := &recordingNotifier{}
	ctrl := NewController[testRoom](ops, roomID, notifier)
	require.NoError(t, ctrl.Load(context.Background(), nil))

	before := ctrl.Items()
	ops.createErr = errors.New("backend từ chối")

	_, err := ctrl.Create(context.Background(), map[string]any{"name": "Phòng 102"})
	require.Error(t, err)

	assert.Equal(t, before, ctrl.Items(), "tạo thất bại thì danh sách phải nguyên vẹn")
	notifications := notifier.all()
	require.NotEmpty(t, notifications)
	assert.Equal(t, VariantDestructive, notifications[len(notifications)-1].Variant)
}

func TestController_CreateAppends(t *testing.T) {
	ops := &fakeOps{listResults: [][]testRoom{{{ID: "a"}}}}
	ctrl := NewController[testRoom](ops, roomID, nil)
	require.NoError(t, ctrl.Load(context.Background(), nil))

	created, err := ctrl.Create(context.Background(), map[string]any{"name": "Phòng 102"})
	require.NoError(t, err)
	assert.Equal(t, "new-id", created.ID)

	items := ctrl.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "new-id", items[1].ID, "entity mới thêm vào cuối danh sách")
}

func TestController_EmptyPatchIsLocalNoop(t *testing.T) {
	ops := &fakeOps{listResults: [][]testRoom{{{ID: "a", Name: "Phòng 101"}}}}
	ctrl := NewController[testRoom](ops, roomID, nil)
	require.NoError(t, ctrl.Load(context.Background(), nil))

	room, err := ctrl.Update(context.Background(), "a", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "Phòng 101", room.Name)
	assert.Equal(t, 0, ops.updateCalls, "bản vá rỗng không được gọi mạng")
}

func TestController_UpdateReplacesRow(t *testing.T) {
	ops := &fakeOps{listResults: [][]testRoom{{{ID: "a", Name: "Phòng 101"}, {ID: "b", Name: "Phòng 102"}}}}
	ctrl := NewController[testRoom](ops, roomID, nil)
	require.NoError(t, ctrl.Load(context.Background(), nil))

	updated, err := ctrl.Update(context.Background(), "a", map[string]any{"name": "Phòng 101A"})
	require.NoError(t, err)
	assert.Equal(t, "Phòng 101A", updated.Name)

	items := ctrl.Items()
	assert.Equal(t, "Phòng 101A", items[0].Name)
	assert.Equal(t, "Phòng 102", items[1].Name, "dòng khác không bị đụng tới")
	assert.False(t, ctrl.IsMutating("a"))
}

func TestController_DeleteRemovesRow(t *testing.T) {
	ops := &fakeOps{listResults: [][]testRoom{{{ID: "a"}, {ID: "b"}}}}
	ctrl := NewController[testRoom](ops, roomID, nil)
	require.NoError(t, ctrl.Load(context.Background(), nil))

	require.NoError(t, ctrl.Delete(context.Background(), "a"))

	items := ctrl.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].ID)
}

func TestController_DeleteFailureLeavesList(t *testing.T) {
	ops := &fakeOps{listResults: [][]testRoom{{{ID: "a"}, {ID: "b"}}}}
	ctrl := NewController[testRoom](ops, roomID, nil)
	require.NoError(t, ctrl.Load(context.Background(), nil))

	ops.deleteErr = errors.New("backend từ chối")
	require.Error(t, ctrl.Delete(context.Background(), "a"))
	assert.Len(t, ctrl.Items(), 2)
}

func TestController_SetStatusUnsupported(t *testing.T) {
	ops := &fakeOps{}
	ctrl := NewController[testRoom](ops, roomID, nil)

	_, err := ctrl.SetStatus(context.Background(), "a", "inactive")
	require.Error(t, err)
}

func TestDiffFields(t *testing.T) {
	before := testRoom{ID: "a", Name: "Phòng 101", Status: "vacant"}
	after := testRoom{ID: "a", Name: "Phòng 101A", Status: "vacant"}

	patch, err := DiffFields(before, after)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Phòng 101A"}, patch)

	// Không có gì thay đổi thì bản vá rỗng
	patch, err = DiffFields(before, before)
	require.NoError(t, err)
	assert.Empty(t, patch)
}

func TestMemoryOps_Lifecycle(t *testing.T) {
	ops := NewMemoryOps[testRoom](roomID, func(r *testRoom, id string) { r.ID = id }, TimestampGenerator{Prefix: "room"})
	ctrl := NewController[testRoom](ops, roomID, nil)
	ctx := context.Background()

	created, err := ctrl.Create(ctx, map[string]any{"name": "Phòng 101"})
	require.NoError(t, err)
	assert.Contains(t, created.ID, "room-", "ID cục bộ sinh theo generator được cắm vào")

	updated, err := ctrl.Update(ctx, created.ID, map[string]any{"status": "occupied"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "bản vá không được đổi ID")
	assert.Equal(t, "occupied", updated.Status)
	assert.Equal(t, "Phòng 101", updated.Name, "trường không vá giữ nguyên")

	require.NoError(t, ctrl.Load(ctx, nil))
	require.Len(t, ctrl.Items(), 1)

	require.NoError(t, ctrl.Delete(ctx, created.ID))
	require.NoError(t, ctrl.Load(ctx, nil))
	assert.Empty(t, ctrl.Items())
}

func TestMemoryOps_GetNotFound(t *testing.T) {
	ops := NewMemoryOps[testRoom](roomID, func(r *testRoom, id string) { r.ID = id }, UUIDGenerator{})

	_, err := ops.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}
