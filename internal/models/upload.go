package models

import "time"

// Upload — загруженный через CMS файл (картинка или документ).
// Файл лежит на диске, запись хранит ссылку, по которой он отдаётся статикой.
type Upload struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	Filepath     string    `json:"-"`
	URL          string    `json:"url"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploaded_at"`
}
