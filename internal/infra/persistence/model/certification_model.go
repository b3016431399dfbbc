package model

import (
	"time"

	"github.com/google/uuid"
)

// CertificationSubmissionModel mirrors the 'certification_submissions' table.
// Soil components are stored as a JSONB document; the uploaded certificate
// lives in the blob store under FileKey. Rows are never deleted.
type CertificationSubmissionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FarmerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	FarmName        string    `gorm:"type:varchar(100);not null"`
	Components      []byte    `gorm:"type:jsonb;not null"`
	FileKey         string    `gorm:"type:varchar(255);not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	RejectionReason *string   `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CertificationSubmissionModel) TableName() string {
	return "certification_submissions"
}
