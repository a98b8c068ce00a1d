package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table. The UUID is stored as its 36-character text form.
type SessionModel struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primaryKey"`
	CredentialID uint      `gorm:"not null;index:idx_sessions_credential_id"`
	TokenHash    string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_sessions_token_hash"`
	Remember     bool      `gorm:"not null;default:false"`
	ExpiresAt    time.Time `gorm:"not null;index:idx_sessions_expires_at"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// AllModels lists every model the schema migration creates.
func AllModels() []any {
	return []any{
		&CredentialModel{},
		&SessionModel{},
	}
}
