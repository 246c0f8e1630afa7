package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"nhatro/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func TestRoomHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "room_number", "price", "status", "created_at", "updated_at"}).
			AddRow("room-1", "Phòng 101", "101", 3000000, "occupied", time.Now(), time.Now()).
			AddRow("room-2", "Phòng 102", "102", 3500000, "vacant", time.Now(), time.Now()))

	router := gin.New()
	router.GET("/api/rooms", NewRoomHandler().List)

	req := httptest.NewRequest("GET", "/api/rooms", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].([]interface{})
	require.True(t, ok, "danh sách phòng phải nằm trong trường data")
	assert.Len(t, data, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomHandler_List_Empty(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	router := gin.New()
	router.GET("/api/rooms", NewRoomHandler().List)

	req := httptest.NewRequest("GET", "/api/rooms", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	// Không có phòng nào vẫn trả về mảng rỗng, không phải null
	assert.JSONEq(t, `{"data":[]}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `rooms`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/api/rooms", NewRoomHandler().Create)

	body := `{"name":"Phòng 103","roomNumber":"103","price":4000000}`
	req := httptest.NewRequest("POST", "/api/rooms", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["id"], "ID phải được sinh tự động khi tạo")
	assert.Equal(t, "vacant", resp["status"], "trạng thái mặc định là còn trống")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomHandler_Create_InvalidStatus(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.POST("/api/rooms", NewRoomHandler().Create)

	body := `{"name":"Phòng 103","roomNumber":"103","price":4000000,"status":"flying"}`
	req := httptest.NewRequest("POST", "/api/rooms", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Trạng thái phòng không hợp lệ", resp["message"])
}

func TestRoomHandler_Update_Partial(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `rooms`").
		WithArgs("room-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "room_number", "price", "status"}).
			AddRow("room-1", "Phòng 101", "101", 3000000, "vacant"))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `rooms`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.PUT("/api/rooms/:id", NewRoomHandler().Update)

	body := `{"status":"occupied"}`
	req := httptest.NewRequest("PUT", "/api/rooms/room-1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "occupied", resp["status"])
	assert.Equal(t, "Phòng 101", resp["name"], "trường không gửi phải giữ nguyên")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRoomHandler_Get_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `rooms`").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	router := gin.New()
	router.GET("/api/rooms/:id", NewRoomHandler().Get)

	req := httptest.NewRequest("GET", "/api/rooms/missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
}

func TestRoomHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `rooms`").
		WithArgs("room-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow("room-1", "Phòng 101"))

	// Xóa mềm: UPDATE deleted_at thay vì DELETE
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `rooms`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.DELETE("/api/rooms/:id", NewRoomHandler().Delete)

	req := httptest.NewRequest("DELETE", "/api/rooms/room-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 204, w.Code)
	assert.Empty(t, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}
