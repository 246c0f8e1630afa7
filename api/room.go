package api

import (
	"net/http"

	"nhatro/database"
	"nhatro/models"

	"github.com/gin-gonic/gin"
)

// RoomHandler xử lý tài nguyên phòng
type RoomHandler struct{}

func NewRoomHandler() *RoomHandler {
	return &RoomHandler{}
}

type CreateRoomRequest struct {
	Name        string   `json:"name" binding:"required"`
	RoomType    string   `json:"roomType"`
	RoomNumber  string   `json:"roomNumber" binding:"required"`
	Price       int64    `json:"price" binding:"required,gte=0"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
	Floor       int      `json:"floor"`
	Area        float64  `json:"area"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
}

type UpdateRoomRequest struct {
	Name        *string   `json:"name"`
	RoomType    *string   `json:"roomType"`
	RoomNumber  *string   `json:"roomNumber"`
	Price       *int64    `json:"price"`
	Status      *string   `json:"status"`
	Description *string   `json:"description"`
	Floor       *int      `json:"floor"`
	Area        *float64  `json:"area"`
	Amenities   *[]string `json:"amenities"`
	Images      *[]string `json:"images"`
}

// List trả về danh sách phòng dạng { data: [...] }
// Hỗ trợ lọc theo trạng thái và tìm theo tên/số phòng
func (h *RoomHandler) List(c *gin.Context) {
	query := database.DB.Model(&models.Room{})
	if status := c.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR room_number LIKE ?", like, like)
	}

	var rooms []models.Room
	if err := query.Order("created_at").Find(&rooms).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể lấy danh sách phòng"))
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	c.JSON(http.StatusOK, ListResponse{Data: rooms})
}

// Get trả về một phòng theo ID
func (h *RoomHandler) Get(c *gin.Context) {
	var room models.Room
	if err := database.DB.First(&room, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy phòng")
		return
	}
	c.JSON(http.StatusOK, room)
}

// Create thêm phòng mới
func (h *RoomHandler) Create(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	var msgs []string
	if req.Status == "" {
		req.Status = models.RoomVacant
	}
	if !models.ValidRoomStatus(req.Status) {
		msgs = append(msgs, "Trạng thái phòng không hợp lệ")
	}
	if req.Price < 0 {
		msgs = append(msgs, "Giá phòng không được âm")
	}
	if len(msgs) > 0 {
		ValidationError(c, msgs)
		return
	}

	room := models.Room{
		Name:        req.Name,
		RoomType:    req.RoomType,
		RoomNumber:  req.RoomNumber,
		Price:       req.Price,
		Status:      req.Status,
		Description: req.Description,
		Floor:       req.Floor,
		Area:        req.Area,
		Amenities:   req.Amenities,
		Images:      req.Images,
	}
	if err := database.DB.Create(&room).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể thêm phòng mới"))
		return
	}
	c.JSON(http.StatusOK, room)
}

// Update cập nhật một phần thông tin phòng; trường không gửi giữ nguyên,
// gửi lại giá trị cũ cũng vô hại
func (h *RoomHandler) Update(c *gin.Context) {
	var room models.Room
	if err := database.DB.First(&room, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy phòng")
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	var msgs []string
	if req.Price != nil && *req.Price < 0 {
		msgs = append(msgs, "Giá phòng không được âm")
	}
	if req.Status != nil && !models.ValidRoomStatus(*req.Status) {
		msgs = append(msgs, "Trạng thái phòng không hợp lệ")
	}
	if len(msgs) > 0 {
		ValidationError(c, msgs)
		return
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.RoomType != nil {
		room.RoomType = *req.RoomType
	}
	if req.RoomNumber != nil {
		room.RoomNumber = *req.RoomNumber
	}
	if req.Price != nil {
		room.Price = *req.Price
	}
	if req.Status != nil {
		room.Status = *req.Status
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.Area != nil {
		room.Area = *req.Area
	}
	if req.Amenities != nil {
		room.Amenities = *req.Amenities
	}
	if req.Images != nil {
		room.Images = *req.Images
	}

	if err := database.DB.Save(&room).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể cập nhật thông tin phòng"))
		return
	}
	c.JSON(http.StatusOK, room)
}

// Delete xóa phòng (xóa mềm)
func (h *RoomHandler) Delete(c *gin.Context) {
	var room models.Room
	if err := database.DB.First(&room, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy phòng")
		return
	}
	if err := database.DB.Delete(&room).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể xóa phòng"))
		return
	}
	c.Status(http.StatusNoContent)
}
