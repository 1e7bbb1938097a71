package model

import "time"

// Upload is a stored image referenced by an item's image URL.
type Upload struct {
	Name       string    `json:"name" bson:"name"`
	Data       []byte    `json:"-" bson:"data"`
	MIME       string    `json:"mime" bson:"mime"`
	UploadedBy string    `json:"uploadedBy" bson:"uploadedBy"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

// UploadURLPrefix is the public path uploads are served under.
const UploadURLPrefix = "/uploads/"

// URL returns the public path of the upload.
func (u *Upload) URL() string {
	return UploadURLPrefix + u.Name
}
