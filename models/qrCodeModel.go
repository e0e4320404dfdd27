package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QRCode is one saved code: the owner's StyleOptions serialized as an opaque
// blob plus the bookkeeping the dashboard lists. Value duplicates the encoded
// content so listings never have to deserialize the blob. ScanCount is only
// ever bumped by the public scan endpoint.
type QRCode struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Title     string    `gorm:"not null" json:"title"`
	Value     string    `gorm:"not null" json:"value"`
	Options   string    `gorm:"type:text;not null" json:"options"`
	ScanSlug  string    `gorm:"uniqueIndex" json:"scan_slug"`
	ScanCount int       `gorm:"not null;default:0" json:"scan_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (q *QRCode) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
