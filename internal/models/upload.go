package models

import "time"

// UploadKind is the kind of church media being uploaded.
type UploadKind string

// Upload kinds.
const (
	UploadLogo     UploadKind = "logo"
	UploadEvent    UploadKind = "event"
	UploadSermon   UploadKind = "sermon"
	UploadMinistry UploadKind = "ministry"
)

// CreateUploadRequest asks for a presigned upload URL.
type CreateUploadRequest struct {
	Kind        UploadKind `json:"kind" binding:"required,oneof=logo event sermon ministry" example:"sermon"`
	ContentType string     `json:"contentType" binding:"required,max=100" example:"audio/mpeg"`
	Extension   string     `json:"extension" binding:"required,alphanum,max=8" example:"mp3"`
}

// UploadResponse carries the presigned URL the client PUTs the file to.
type UploadResponse struct {
	Key       string    `json:"key" example:"churches/507f1f77bcf86cd799439012/sermon/4f1c2a.mp3"`
	UploadURL string    `json:"uploadUrl" example:"https://bucket.s3.amazonaws.com/churches/...?X-Amz-Signature=..."`
	Method    string    `json:"method" example:"PUT"`
	ExpiresAt time.Time `json:"expiresAt" example:"2024-01-15T09:45:00Z"`
}
