package client

import "log"

// Biến thể thông báo
const (
	VariantDefault     = ""
	VariantDestructive = "destructive"
)

// Notification một thông báo dạng toast gửi về giao diện
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant,omitempty"`
}

// Notifier nơi nhận thông báo, gửi xong là xong, không có phản hồi
type Notifier interface {
	Notify(n Notification)
}

// LogNotifier ghi thông báo ra log tiến trình
type LogNotifier struct{}

func (LogNotifier) Notify(n Notification) {
	if n.Variant == VariantDestructive {
		log.Printf("[LỖI] %s: %s", n.Title, n.Description)
		return
	}
	log.Printf("%s: %s", n.Title, n.Description)
}

// NopNotifier bỏ qua mọi thông báo
type NopNotifier struct{}

func (NopNotifier) Notify(Notification) {}
