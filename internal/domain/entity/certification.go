package entity

import (
	"time"

	"github.com/google/uuid"
)

// CertificationStatus is the review state of a soil-certification submission.
type CertificationStatus string

const (
	// CertificationPending means the submission awaits an admin decision.
	CertificationPending CertificationStatus = "pending"
	// CertificationApproved is a terminal state reached by an admin approval.
	CertificationApproved CertificationStatus = "approved"
	// CertificationRejected is a terminal state reached by an admin rejection.
	CertificationRejected CertificationStatus = "rejected"
)

// String returns the string representation of the status.
func (s CertificationStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the status permits no further transitions.
// Decisions are final; there is no re-review path.
func (s CertificationStatus) IsTerminal() bool {
	return s == CertificationApproved || s == CertificationRejected
}

// SoilComponent is one measured soil property on a certification submission.
type SoilComponent struct {
	Name      string  `json:"name"`      // e.g. "pH", "nitrogen".
	Value     float64 `json:"value"`     // The measured numeric value.
	Unit      string  `json:"unit"`      // e.g. "pH", "mg/kg".
	IsNatural bool    `json:"isNatural"` // Whether the component occurs naturally or was added.
}

// CertificationSubmission represents one soil-certificate review request.
// It is created by a farmer, decided exactly once by an admin, and never deleted.
type CertificationSubmission struct {
	ID              uuid.UUID           // The unique ID of this submission.
	FarmerID        uuid.UUID           // The owning farmer. Only this farmer can list the submission.
	FarmName        string              // Farm name as declared on the submission.
	Components      []SoilComponent     // Measured soil components. Never empty.
	FileKey         string              // Blob-store key of the uploaded certificate document.
	Status          CertificationStatus // pending on creation; approved or rejected after decision.
	RejectionReason *string             // Non-nil iff Status is rejected.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
