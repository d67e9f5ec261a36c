package models

// ProfileUpdate carries the fields a user may change about themselves.
// Optional fields left nil keep their stored values.
type ProfileUpdate struct {
	Username     string
	Email        string
	MobileNumber *string
	Wechat       *string
	QQ           *string
	BlogAddress  *string
	Introduction *string
	Avatar       *AvatarUpload
}

// AvatarUpload is an uploaded avatar file.
type AvatarUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// UserPage is one page of the user listing, newest registrations first.
type UserPage struct {
	Items []UserDB `json:"items"`
	Total int64    `json:"total"`
	Page  int      `json:"page"`
	Size  int      `json:"size"`
}
