package repository

import (
	"context"
	"errors"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for certification persistence.
var (
	// ErrSubmissionNotFound is returned when a submission is not found.
	ErrSubmissionNotFound = errors.New("certification submission not found")
	// ErrStatusConflict is returned when a conditional status update matched no
	// row: the record either does not exist or is no longer in the expected
	// prior state. The caller distinguishes the two with a follow-up read.
	ErrStatusConflict = errors.New("status no longer matches expected prior state")
)

// CertificationRepository defines the interface for certification-submission persistence.
type CertificationRepository interface {
	// Create persists a new submission with status pending.
	Create(ctx context.Context, submission *entity.CertificationSubmission) error

	// FindByID retrieves a submission by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CertificationSubmission, error)

	// FindByFarmer retrieves all submissions owned by a farmer, newest first.
	FindByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.CertificationSubmission, error)

	// FindPending retrieves all pending submissions, oldest first (review queue order).
	FindPending(ctx context.Context) ([]*entity.CertificationSubmission, error)

	// UpdateStatusIfPending performs the conditional decision write: the status
	// and reason are set only if the stored status is still pending. Returns
	// ErrStatusConflict when zero rows match, so exactly one of two concurrent
	// decisions can win.
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status entity.CertificationStatus, reason *string) error

	// CountByStatus returns submission counts grouped by status, computed over
	// the full submission set at call time.
	CountByStatus(ctx context.Context) (map[entity.CertificationStatus]int64, error)
}
