package model

import "mime/multipart"

type UploadMediaRequest struct {
	File *multipart.FileHeader `json:"-" validate:"required"`
}

// Reference is the opaque string a report stores in image_refs; URL is the
// resolved public location for display.
type MediaDTO struct {
	Reference    string `json:"reference"`
	OriginalName string `json:"original_name"`
	FileSize     int64  `json:"file_size"`
	MimeType     string `json:"mime_type"`
	URL          string `json:"url"`
}
