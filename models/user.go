package models

import "gorm.io/gorm"

// User is the registry row behind the auth provider's token subject.
// PublicID keys the user's on-disk data directory so auth identifiers
// never appear in filesystem paths.
type User struct {
	gorm.Model
	Auth0ID  string `gorm:"uniqueIndex;not null;size:100" json:"-"`
	Nickname string `gorm:"size:100" json:"nickname"`
	PublicID string `gorm:"size:100;uniqueIndex" json:"publicId"`
}
