package usecase

import (
	"context"
	"io"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitCertificationInput defines a farmer's certification request: the
// declared soil components plus the uploaded certificate document.
type SubmitCertificationInput struct {
	FarmName   string
	Components []entity.SoilComponent

	FileName    string
	ContentType string
	FileSize    int64
	File        io.Reader
}

// DecideCertificationInput defines an admin's decision on a pending submission.
// Reason is required when Approve is false and ignored otherwise.
type DecideCertificationInput struct {
	Approve bool
	Reason  string
}

// CertificationStatsOutput aggregates submission counts per review state.
type CertificationStatsOutput struct {
	Pending  int64
	Approved int64
	Rejected int64
	Total    int64
}

// CertificationUsecase defines the soil-certification review workflow.
type CertificationUsecase interface {
	// Submit files a new pending submission for the calling farmer.
	Submit(ctx context.Context, principal entity.Principal, input *SubmitCertificationInput) (*entity.CertificationSubmission, error)

	// ListForFarmer returns the calling farmer's own submissions, newest first.
	ListForFarmer(ctx context.Context, principal entity.Principal) ([]*entity.CertificationSubmission, error)

	// ListPending returns the admin review queue, oldest first.
	ListPending(ctx context.Context, principal entity.Principal) ([]*entity.CertificationSubmission, error)

	// Decide approves or rejects a pending submission. The decision is final:
	// with concurrent decisions on one submission at most one caller wins and
	// the rest receive a transition conflict.
	Decide(ctx context.Context, principal entity.Principal, submissionID uuid.UUID, input *DecideCertificationInput) (*entity.CertificationSubmission, error)

	// Stats returns submission counts per status for the admin dashboard.
	Stats(ctx context.Context, principal entity.Principal) (*CertificationStatsOutput, error)
}
