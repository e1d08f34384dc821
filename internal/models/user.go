package models

import "time"

type User struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	DisplayName      string    `json:"display_name"`
	Email            string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string    `gorm:"not null" json:"-"`
	RecoveryCodeHash string    `gorm:"not null;default:''" json:"-"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
}
