package api

import (
	"net/http"

	"nhatro/database"
	"nhatro/models"

	"github.com/gin-gonic/gin"
)

// RoomTypeHandler xử lý loại phòng (phần cài đặt)
type RoomTypeHandler struct{}

func NewRoomTypeHandler() *RoomTypeHandler {
	return &RoomTypeHandler{}
}

type CreateRoomTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateRoomTypeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// List trả về danh sách loại phòng dạng mảng trần
func (h *RoomTypeHandler) List(c *gin.Context) {
	var types []models.RoomType
	if err := database.DB.Order("created_at").Find(&types).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể lấy danh sách loại phòng"))
		return
	}
	if types == nil {
		types = []models.RoomType{}
	}
	c.JSON(http.StatusOK, types)
}

// Get trả về một loại phòng theo ID
func (h *RoomTypeHandler) Get(c *gin.Context) {
	var rt models.RoomType
	if err := database.DB.First(&rt, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy loại phòng")
		return
	}
	c.JSON(http.StatusOK, rt)
}

// Create thêm loại phòng mới
func (h *RoomTypeHandler) Create(c *gin.Context) {
	var req CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	rt := models.RoomType{Name: req.Name, Description: req.Description}
	if err := database.DB.Create(&rt).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể thêm loại phòng"))
		return
	}
	c.JSON(http.StatusOK, rt)
}

// Update cập nhật loại phòng
func (h *RoomTypeHandler) Update(c *gin.Context) {
	var rt models.RoomType
	if err := database.DB.First(&rt, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy loại phòng")
		return
	}

	var req UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	if req.Name != nil {
		rt.Name = *req.Name
	}
	if req.Description != nil {
		rt.Description = *req.Description
	}
	if err := database.DB.Save(&rt).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể cập nhật loại phòng"))
		return
	}
	c.JSON(http.StatusOK, rt)
}

// Delete xóa loại phòng
func (h *RoomTypeHandler) Delete(c *gin.Context) {
	var rt models.RoomType
	if err := database.DB.First(&rt, "id = ?", c.Param("id")).Error; err != nil {
		NotFound(c, "Không tìm thấy loại phòng")
		return
	}
	if err := database.DB.Delete(&rt).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "Không thể xóa loại phòng"))
		return
	}
	c.Status(http.StatusNoContent)
}
