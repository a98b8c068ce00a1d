package model

import "time"

// CredentialModel mirrors the 'credentials' table. Email uniqueness is enforced by the index, not the application.
type CredentialModel struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"type:varchar(120);not null;uniqueIndex:idx_credentials_email"`
	PasswordHash string    `gorm:"type:varchar(60);not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}
