package models

// RequestUploadRequest is the payload for requesting an image upload URL.
type RequestUploadRequest struct {
	FileName    string `json:"fileName" binding:"required,min=1" example:"avatar.png"`
	ContentType string `json:"contentType" binding:"omitempty" example:"image/png"`
}

// UploadURLResponse carries a pre-signed upload URL and the object key to
// reference in user or announcement documents.
type UploadURLResponse struct {
	Key       string `json:"key" example:"65a1f77bcf86cd7994390abc-avatar.png"`
	UploadURL string `json:"uploadUrl" example:"https://s3.example.com/forum-assets/..."`
	ExpiresIn int    `json:"expiresIn" example:"900"`
}

// DownloadURLResponse carries a pre-signed download URL for an object key.
type DownloadURLResponse struct {
	URL       string `json:"url" example:"https://s3.example.com/forum-assets/..."`
	ExpiresIn int    `json:"expiresIn" example:"900"`
}
