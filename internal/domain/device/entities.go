package device

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("device token not found")
)

type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
	PlatformWeb     Platform = "web"
)

// Table: device_tokens. A token belongs to the user who registered it last.
type DeviceToken struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_device_tokens_user" json:"user_id"`
	FCMToken  string    `gorm:"column:fcm_token;size:255;not null;uniqueIndex:ux_device_tokens_token" json:"fcm_token"`
	Platform  Platform  `gorm:"column:platform;type:varchar(16);not null" json:"platform"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (DeviceToken) TableName() string { return "device_tokens" }
