package postgres

import (
	"context"
	"encoding/json"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// certificationRepository implements the domain.CertificationRepository interface using GORM.
type certificationRepository struct {
	db *gorm.DB
}

// NewCertificationRepository is the constructor for certificationRepository.
func NewCertificationRepository(db *gorm.DB) repository.CertificationRepository {
	return &certificationRepository{db: db}
}

// Create persists a new submission with status pending.
func (repo *certificationRepository) Create(ctx context.Context, submission *entity.CertificationSubmission) error {
	submissionM, err := fromCertificationDomain(submission)
	if err != nil {
		return errors.Wrap(err, "failed to encode soil components")
	}

	if err := repo.db.WithContext(ctx).Create(submissionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid farmer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create certification submission")
	}

	submission.ID = submissionM.ID
	submission.Status = entity.CertificationStatus(submissionM.Status)
	submission.CreatedAt = submissionM.CreatedAt
	submission.UpdatedAt = submissionM.UpdatedAt

	return nil
}

// FindByID retrieves a submission by its unique ID.
func (repo *certificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CertificationSubmission, error) {
	var submissionM model.CertificationSubmissionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&submissionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to find certification submission by id")
	}

	return toCertificationDomain(&submissionM)
}

// FindByFarmer retrieves all submissions owned by a farmer, newest first.
func (repo *certificationRepository) FindByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.CertificationSubmission, error) {
	var submissionMs []model.CertificationSubmissionModel

	if err := repo.db.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Find(&submissionMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find certification submissions by farmer")
	}

	return toCertificationDomains(submissionMs)
}

// FindPending retrieves all pending submissions, oldest first, matching the
// order admins review them in.
func (repo *certificationRepository) FindPending(ctx context.Context) ([]*entity.CertificationSubmission, error) {
	var submissionMs []model.CertificationSubmissionModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.CertificationPending.String()).
		Order("created_at ASC").
		Find(&submissionMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending certification submissions")
	}

	return toCertificationDomains(submissionMs)
}

// UpdateStatusIfPending performs the decision write as a single conditional
// UPDATE. The status predicate makes concurrent decisions race on the row:
// exactly one matches, the rest see zero rows affected and get ErrStatusConflict.
func (repo *certificationRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status entity.CertificationStatus, reason *string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CertificationSubmissionModel{}).
		Where("id = ? AND status = ?", id, entity.CertificationPending.String()).
		Updates(map[string]any{
			"status":           status.String(),
			"rejection_reason": reason,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update certification status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStatusConflict
	}

	return nil
}

// CountByStatus returns submission counts grouped by status.
func (repo *certificationRepository) CountByStatus(ctx context.Context) (map[entity.CertificationStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.CertificationSubmissionModel{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count certification submissions by status")
	}

	counts := make(map[entity.CertificationStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.CertificationStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// --- Mapper Functions ---

func toCertificationDomain(data *model.CertificationSubmissionModel) (*entity.CertificationSubmission, error) {
	if data == nil {
		return nil, nil
	}

	var components []entity.SoilComponent
	if err := json.Unmarshal(data.Components, &components); err != nil {
		return nil, errors.Wrap(err, "failed to decode soil components")
	}

	return &entity.CertificationSubmission{
		ID:              data.ID,
		FarmerID:        data.FarmerID,
		FarmName:        data.FarmName,
		Components:      components,
		FileKey:         data.FileKey,
		Status:          entity.CertificationStatus(data.Status),
		RejectionReason: data.RejectionReason,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}, nil
}

func toCertificationDomains(data []model.CertificationSubmissionModel) ([]*entity.CertificationSubmission, error) {
	submissions := make([]*entity.CertificationSubmission, 0, len(data))
	for i := range data {
		submission, err := toCertificationDomain(&data[i])
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, submission)
	}

	return submissions, nil
}

func fromCertificationDomain(data *entity.CertificationSubmission) (*model.CertificationSubmissionModel, error) {
	if data == nil {
		return nil, nil
	}

	components, err := json.Marshal(data.Components)
	if err != nil {
		return nil, err
	}

	return &model.CertificationSubmissionModel{
		ID:              data.ID,
		FarmerID:        data.FarmerID,
		FarmName:        data.FarmName,
		Components:      components,
		FileKey:         data.FileKey,
		Status:          data.Status.String(),
		RejectionReason: data.RejectionReason,
	}, nil
}
