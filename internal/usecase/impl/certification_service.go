package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"harvest/config"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxCertificateSize = 5 << 20 // 5 MiB

// acceptedCertificateTypes maps allowed upload content types to the stored
// file extension.
var acceptedCertificateTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"application/pdf": ".pdf",
}

// certificationService implements the CertificationUsecase interface.
type certificationService struct {
	certRepo    repository.CertificationRepository
	fileStore   service.FileStore
	maxFileSize int64
	logger      *slog.Logger
}

// CertificationServiceParams holds dependencies for CertificationService, injected by Fx.
type CertificationServiceParams struct {
	fx.In

	CertRepo  repository.CertificationRepository
	FileStore service.FileStore
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCertificationService is the constructor for certificationService.
func NewCertificationService(params CertificationServiceParams) usecase.CertificationUsecase {
	maxFileSize := int64(defaultMaxCertificateSize)
	if params.Config != nil && params.Config.Upload != nil && params.Config.Upload.MaxFileSize > 0 {
		maxFileSize = params.Config.Upload.MaxFileSize
	}

	return &certificationService{
		certRepo:    params.CertRepo,
		fileStore:   params.FileStore,
		maxFileSize: maxFileSize,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *certificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Submit files a new pending submission for the calling farmer. The document
// is stored first; a failed database insert leaves an orphan blob, which is
// harmless and reclaimed by bucket lifecycle rules.
func (srv *certificationService) Submit(ctx context.Context, principal entity.Principal, input *usecase.SubmitCertificationInput) (*entity.CertificationSubmission, error) {
	if err := requireRole(principal, entity.RoleFarmer); err != nil {
		return nil, err
	}
	if err := srv.validateSubmission(input); err != nil {
		return nil, err
	}

	ext, ok := acceptedCertificateTypes[normalizeContentType(input.ContentType)]
	if !ok {
		return nil, domainerrors.ErrUnsupportedFileType.WrapMessage("certificate must be a JPEG, PNG or PDF document")
	}

	fileKey := path.Join("certifications", uuid.New().String()+ext)
	if err := srv.fileStore.Save(ctx, fileKey, input.ContentType, input.File); err != nil {
		srv.log(ctx).Warn("Failed to store certificate file", slog.Any("farmerID", principal.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store certificate file")
	}

	submission := &entity.CertificationSubmission{
		FarmerID:   principal.UserID,
		FarmName:   input.FarmName,
		Components: input.Components,
		FileKey:    fileKey,
		Status:     entity.CertificationPending,
	}

	if err := srv.certRepo.Create(ctx, submission); err != nil {
		srv.log(ctx).Warn("Failed to create certification submission", slog.Any("farmerID", principal.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create certification submission")
	}

	srv.log(ctx).Info("Certification submitted", slog.Any("submissionID", submission.ID), slog.Any("farmerID", principal.UserID))

	return submission, nil
}

// ListForFarmer returns the calling farmer's own submissions, newest first.
func (srv *certificationService) ListForFarmer(ctx context.Context, principal entity.Principal) ([]*entity.CertificationSubmission, error) {
	if err := requireRole(principal, entity.RoleFarmer); err != nil {
		return nil, err
	}

	submissions, err := srv.certRepo.FindByFarmer(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list certification submissions")
	}

	return submissions, nil
}

// ListPending returns the admin review queue, oldest first.
func (srv *certificationService) ListPending(ctx context.Context, principal entity.Principal) ([]*entity.CertificationSubmission, error) {
	if err := requireRole(principal, entity.RoleAdmin); err != nil {
		return nil, err
	}

	submissions, err := srv.certRepo.FindPending(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending certification submissions")
	}

	return submissions, nil
}

// Decide approves or rejects a pending submission. The write is a single
// conditional update keyed on the pending status, so with concurrent
// decisions exactly one caller wins; the rest get a transition conflict.
func (srv *certificationService) Decide(ctx context.Context, principal entity.Principal, submissionID uuid.UUID, input *usecase.DecideCertificationInput) (*entity.CertificationSubmission, error) {
	if err := requireRole(principal, entity.RoleAdmin); err != nil {
		return nil, err
	}

	status := entity.CertificationApproved
	var reason *string
	if !input.Approve {
		trimmed := strings.TrimSpace(input.Reason)
		if trimmed == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("a rejection reason is required")
		}
		status = entity.CertificationRejected
		reason = &trimmed
	}

	// Existence check first so a decision on an unknown ID reads as not-found
	// rather than as a lost race.
	submission, err := srv.certRepo.FindByID(ctx, submissionID)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSubmissionNotFound, "certification submission not found")
		}

		return nil, errors.Wrap(err, "failed to find certification submission")
	}

	if err := srv.certRepo.UpdateStatusIfPending(ctx, submissionID, status, reason); err != nil {
		if errors.Is(err, repository.ErrStatusConflict) {
			srv.log(ctx).Warn("Certification decision lost the race or submission already decided",
				slog.Any("submissionID", submissionID), slog.Any("adminID", principal.UserID))

			return nil, errors.Wrap(domainerrors.ErrInvalidTransition, "submission is no longer pending")
		}

		return nil, errors.Wrap(err, "failed to update certification status")
	}

	submission.Status = status
	submission.RejectionReason = reason

	srv.log(ctx).Info("Certification decided",
		slog.Any("submissionID", submissionID),
		slog.String("status", status.String()),
		slog.Any("adminID", principal.UserID))

	return submission, nil
}

// Stats returns submission counts per status for the admin dashboard.
func (srv *certificationService) Stats(ctx context.Context, principal entity.Principal) (*usecase.CertificationStatsOutput, error) {
	if err := requireRole(principal, entity.RoleAdmin); err != nil {
		return nil, err
	}

	counts, err := srv.certRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count certification submissions")
	}

	output := &usecase.CertificationStatsOutput{
		Pending:  counts[entity.CertificationPending],
		Approved: counts[entity.CertificationApproved],
		Rejected: counts[entity.CertificationRejected],
	}
	output.Total = output.Pending + output.Approved + output.Rejected

	return output, nil
}

func (srv *certificationService) validateSubmission(input *usecase.SubmitCertificationInput) error {
	switch {
	case strings.TrimSpace(input.FarmName) == "":
		return domainerrors.ErrValidationFailed.WrapMessage("farm name is required")
	case len(input.Components) == 0:
		return domainerrors.ErrValidationFailed.WrapMessage("at least one soil component is required")
	case input.File == nil:
		return domainerrors.ErrValidationFailed.WrapMessage("a certificate document is required")
	case input.FileSize <= 0:
		return domainerrors.ErrValidationFailed.WrapMessage("certificate document is empty")
	case input.FileSize > srv.maxFileSize:
		return domainerrors.ErrFileTooLarge.WrapMessage("certificate document exceeds the size limit")
	}

	for _, component := range input.Components {
		if strings.TrimSpace(component.Name) == "" {
			return domainerrors.ErrValidationFailed.WrapMessage("soil component name is required")
		}
	}

	return nil
}

// normalizeContentType strips parameters like "; charset=..." and lowercases.
func normalizeContentType(contentType string) string {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}

	return strings.ToLower(strings.TrimSpace(contentType))
}
