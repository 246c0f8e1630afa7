package models

// DisplayInfo thông tin hiển thị của một trạng thái/danh mục (text + class CSS)
type DisplayInfo struct {
	Text      string `json:"text"`
	ClassName string `json:"className"`
}

// UnknownDisplay giá trị mặc định khi không tra được trạng thái/danh mục
var UnknownDisplay = DisplayInfo{Text: "Không xác định", ClassName: "bg-gray-100 text-gray-800"}
