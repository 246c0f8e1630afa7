package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRoom struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(Options{
		BaseURL:       server.URL,
		RetryAttempts: 3,
		RetryDelay:    time.Millisecond,
	})
}

func TestResource_Get_RetriesOnServerError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var calls int32

	router := gin.New()
	router.GET("/api/rooms/:id", func(c *gin.Context) {
		if atomic.AddInt32(&calls, 1) < 3 {
			c.JSON(500, gin.H{"message": "Lỗi hệ thống"})
			return
		}
		c.JSON(200, testRoom{ID: "room-1", Name: "Phòng 101"})
	})

	rooms := NewResource[testRoom](newTestClient(t, router), "/api/rooms")
	room, err := rooms.Get(context.Background(), "room-1")

	require.NoError(t, err)
	assert.Equal(t, "Phòng 101", room.Name)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "phải thử lại đủ 3 lần")
}

func TestResource_Get_ExhaustsRetries(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var calls int32

	router := gin.New()
	router.GET("/api/rooms/:id", func(c *gin.Context) {
		atomic.AddInt32(&calls, 1)
		c.JSON(500, gin.H{"message": "Lỗi hệ thống"})
	})

	rooms := NewResource[testRoom](newTestClient(t, router), "/api/rooms")
	_, err := rooms.Get(context.Background(), "room-1")

	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestResource_Get_NoRetryOnNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var calls int32

	router := gin.New()
	router.GET("/api/rooms/:id", func(c *gin.Context) {
		atomic.AddInt32(&calls, 1)
		c.JSON(404, gin.H{"message": "Không tìm thấy phòng"})
	})

	rooms := NewResource[testRoom](newTestClient(t, router), "/api/rooms")
	_, err := rooms.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	// Lỗi 4xx thử lại cũng vô ích nên chỉ gọi một lần
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestResource_List_NotRetried(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var calls int32

	router := gin.New()
	router.GET("/api/rooms", func(c *gin.Context) {
		atomic.AddInt32(&calls, 1)
		c.JSON(500, gin.H{"message": "Lỗi hệ thống"})
	})

	rooms := NewResource[testRoom](newTestClient(t, router), "/api/rooms")
	_, _, err := rooms.List(context.Background(), nil)

	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "tải danh sách không được retry")
}

func TestResource_List_Shapes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		body      string
		wantLen   int
		wantTotal int64
	}{
		{name: "mảng trần", body: `[{"id":"a"},{"id":"b"}]`, wantLen: 2},
		{name: "bọc trong data", body: `{"data":[{"id":"a"}]}`, wantLen: 1},
		{name: "bọc trong items", body: `{"items":[{"id":"a"},{"id":"b"},{"id":"c"}]}`, wantLen: 3},
		{name: "phân trang users", body: `{"users":[{"id":"a"}],"total":42,"page":2,"limit":10}`, wantLen: 1, wantTotal: 42},
		{name: "hình dạng lạ", body: `{"result":"ok"}`, wantLen: 0},
		{name: "data rỗng", body: `{"data":[]}`, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.GET("/api/things", func(c *gin.Context) {
				c.Data(200, "application/json", []byte(tt.body))
			})

			things := NewResource[testRoom](newTestClient(t, router), "/api/things")
			items, page, err := things.List(context.Background(), nil)

			require.NoError(t, err)
			assert.Len(t, items, tt.wantLen)
			assert.Equal(t, tt.wantTotal, page.Total)
		})
	}
}

func TestResource_Create_ValidationMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/api/rooms", func(c *gin.Context) {
		c.JSON(400, gin.H{"message": []string{"Giá phòng không được âm", "Trạng thái phòng không hợp lệ"}})
	})

	rooms := NewResource[testRoom](newTestClient(t, router), "/api/rooms")
	_, err := rooms.Create(context.Background(), map[string]any{"name": "Phòng 101"})

	require.Error(t, err)
	assert.True(t, IsValidation(err))
	// Nhiều thông báo lỗi được nối bằng ", "
	assert.Contains(t, err.Error(), "Giá phòng không được âm, Trạng thái phòng không hợp lệ")
}

func TestResource_SetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.PATCH("/api/users/:id/status", func(c *gin.Context) {
		var body map[string]string
		require.NoError(t, c.ShouldBindJSON(&body))
		c.JSON(200, testRoom{ID: c.Param("id"), Status: body["status"]})
	})

	users := NewStatusResource[testRoom](newTestClient(t, router), "/api/users")
	updated, err := users.SetStatus(context.Background(), "user-1", "inactive")

	require.NoError(t, err)
	assert.Equal(t, "inactive", updated.Status)
}

func TestController_SetStatusBlockedForPlainResource(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var requests int
	router := gin.New()
	router.NoRoute(func(c *gin.Context) {
		requests++
		c.JSON(404, gin.H{"message": "Không tìm thấy dữ liệu"})
	})

	rooms := NewResource[testRoom](newTestClient(t, router), "/api/rooms")
	ctrl := NewController[testRoom](rooms, func(r testRoom) string { return r.ID }, nil)

	_, err := ctrl.SetStatus(context.Background(), "room-1", "occupied")

	// Tài nguyên thường bị chặn ngay tại chỗ, không có request nào đi ra
	require.Error(t, err)
	assert.Equal(t, 0, requests)
}

func TestClient_NetworkError(t *testing.T) {
	c := New(Options{
		BaseURL:       "http://127.0.0.1:1",
		RetryAttempts: 2,
		RetryDelay:    time.Millisecond,
		Timeout:       100 * time.Millisecond,
	})
	rooms := NewResource[testRoom](c, "/api/rooms")

	_, err := rooms.Get(context.Background(), "room-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestDecodeErrorMessage(t *testing.T) {
	assert.Equal(t, "Không tìm thấy phòng",
		decodeErrorMessage(404, []byte(`{"message":"Không tìm thấy phòng"}`)))
	assert.Equal(t, "a, b",
		decodeErrorMessage(400, []byte(`{"message":["a","b"]}`)))
	assert.Equal(t, "Không tìm thấy dữ liệu",
		decodeErrorMessage(404, []byte(`oops`)))
	assert.Equal(t, "Yêu cầu thất bại",
		decodeErrorMessage(500, []byte(``)))
}
