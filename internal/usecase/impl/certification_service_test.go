package impl

import (
	"context"
	"strings"
	"testing"

	"harvest/config"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	mockRepo "harvest/internal/mocks/repository"
	mockSvc "harvest/internal/mocks/service"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCertificationService(t *testing.T, certRepo *mockRepo.MockCertificationRepository, fileStore *mockSvc.MockFileStore) usecase.CertificationUsecase {
	t.Helper()

	return NewCertificationService(CertificationServiceParams{
		CertRepo:  certRepo,
		FileStore: fileStore,
		Config:    &config.Config{Upload: &config.UploadConfig{MaxFileSize: 5 << 20}},
		Logger:    newTestLogger(),
	})
}

func validSubmissionInput() *usecase.SubmitCertificationInput {
	return &usecase.SubmitCertificationInput{
		FarmName: "Green Valley Farm",
		Components: []entity.SoilComponent{
			{Name: "pH", Value: 6.8, Unit: "pH", IsNatural: true},
			{Name: "nitrogen", Value: 42, Unit: "mg/kg", IsNatural: true},
		},
		FileName:    "soil-report.pdf",
		ContentType: "application/pdf",
		FileSize:    1024,
		File:        strings.NewReader("pdf bytes"),
	}
}

func TestCertificationService_Submit_CreatesPendingSubmission(t *testing.T) {
	certRepo := mockRepo.NewMockCertificationRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)
	service := newCertificationService(t, certRepo, fileStore)

	ctx := context.Background()
	principal := farmerPrincipal()

	fileStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		Return(nil)

	certRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CertificationSubmission")).
		Run(func(ctx context.Context, submission *entity.CertificationSubmission) {
			assert.Equal(t, principal.UserID, submission.FarmerID)
			assert.Equal(t, entity.CertificationPending, submission.Status)
			assert.True(t, strings.HasPrefix(submission.FileKey, "certifications/"))
			assert.True(t, strings.HasSuffix(submission.FileKey, ".pdf"))
			submission.ID = uuid.New()
		}).
		Return(nil)

	submission, err := service.Submit(ctx, principal, validSubmissionInput())

	require.NoError(t, err)
	assert.Equal(t, entity.CertificationPending, submission.Status)
	assert.Nil(t, submission.RejectionReason)
}

func TestCertificationService_Submit_RequiresFarmerRole(t *testing.T) {
	certRepo := mockRepo.NewMockCertificationRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)
	service := newCertificationService(t, certRepo, fileStore)

	_, err := service.Submit(context.Background(), consumerPrincipal(), validSubmissionInput())

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCertificationService_Submit_RejectsUnsupportedFileType(t *testing.T) {
	certRepo := mockRepo.NewMockCertificationRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)
	service := newCertificationService(t, certRepo, fileStore)

	input := validSubmissionInput()
	input.FileName = "notes.txt"
	input.ContentType = "text/plain"

	_, err := service.Submit(context.Background(), farmerPrincipal(), input)

	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedFileType)
}

func TestCertificationService_Submit_RejectsOversizedFile(t *testing.T) {
	certRepo := mockRepo.NewMockCertificationRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)
	service := newCertificationService(t, certRepo, fileStore)

	input := validSubmissionInput()
	input.FileSize = 6 << 20

	_, err := service.Submit(context.Background(), farmerPrincipal(), input)

	assert.ErrorIs(t, err, domainerrors.ErrFileTooLarge)
}

func TestCertificationService_Submit_RequiresComponents(t *testing.T) {
	certRepo := mockRepo.NewMockCertificationRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)
	service := newCertificationService(t, certRepo, fileStore)

	input := validSubmissionInput()
	input.Components = nil

	_, err := service.Submit(context.Background(), farmerPrincipal(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCertificationService_Decide_ApprovesPendingSubmission(t *testing.T) {
	certRepo := mockRepo.NewMockCertificationRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)
	service := newCertificationService(t, certRepo, fileStore)

	ctx := context.Background()
	submissionID := uuid.New()

	certRepo.EXPECT().
		FindByID(ctx, submissionID).
		Return(&entity.CertificationSubmission{ID: submissionID, Status: entity.CertificationPending}, nil)

	certRepo.EXPECT().
		UpdateStatusIfPending(ctx, submissionID, entity.CertificationApproved, (*string)(nil)).
		Return(nil)

	submission, err := service.Decide(ctx, adminPrincipal(), submissionID, &usecase.DecideCertificationInput{Approve: true})

	require.NoError(t, err)
	assert.Equal(t, entity.CertificationApproved, submission.Status)
	assert.Nil(t, submission.RejectionReason)
}

func TestCertificationService_Decide_RejectionRecordsReason(t *testing.T) {
	certRepo := mockRepo.NewMockCertificationRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)
	service := newCertificationService(t, certRepo, fileStore)

	ctx := context.Background()
	submissionID := uuid.New()

	certRepo.EXPECT().
		FindByID(ctx, submissionID).
		Return(&entity.CertificationSubmission{ID: submissionID, Status: entity.CertificationPending}, nil)

	certRepo.EXPECT().
		UpdateStatusIfPending(ctx, submissionID, entity.CertificationRejected, mock.AnythingOfType("*string")).
		Return(nil)

	submission, err := service.Decide(ctx, adminPrincipal(), submissionID, &usecase.DecideCertificationInput{
		Approve: false,
		Reason:  "certificate is unreadable",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.CertificationRejected, submission.Status)
	require.NotNil(t, submission.RejectionReason)
	assert.Equal(t, "certificate is unreadable", *submission.RejectionReason)
}

func TestCertificationService_Decide_RejectionRequiresReason(t *testing.T) {
	certRepo := mockRepo.NewMockCertificationRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)
	service := newCertificationService(t, certRepo, fileStore)

	_, err := service.Decide(context.Background(), adminPrincipal(), uuid.New(), &usecase.DecideCertificationInput{Approve: false})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCertificationService_Decide_RequiresAdminRole(t *testing.T) {
	certRepo := mockRepo.NewMockCertificationRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)
	service := newCertificationService(t, certRepo, fileStore)

	_, err := service.Decide(context.Background(), farmerPrincipal(), uuid.New(), &usecase.DecideCertificationInput{Approve: true})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCertificationService_Decide_LostRaceIsInvalidTransition(t *testing.T) {
	certRepo := mockRepo.NewMockCertificationRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)
	service := newCertificationService(t, certRepo, fileStore)

	ctx := context.Background()
	submissionID := uuid.New()

	certRepo.EXPECT().
		FindByID(ctx, submissionID).
		Return(&entity.CertificationSubmission{ID: submissionID, Status: entity.CertificationPending}, nil)

	certRepo.EXPECT().
		UpdateStatusIfPending(ctx, submissionID, entity.CertificationApproved, (*string)(nil)).
		Return(repository.ErrStatusConflict)

	_, err := service.Decide(ctx, adminPrincipal(), submissionID, &usecase.DecideCertificationInput{Approve: true})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestCertificationService_Decide_UnknownSubmissionIsNotFound(t *testing.T) {
	certRepo := mockRepo.NewMockCertificationRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)
	service := newCertificationService(t, certRepo, fileStore)

	ctx := context.Background()
	submissionID := uuid.New()

	certRepo.EXPECT().
		FindByID(ctx, submissionID).
		Return(nil, repository.ErrSubmissionNotFound)

	_, err := service.Decide(ctx, adminPrincipal(), submissionID, &usecase.DecideCertificationInput{Approve: true})

	assert.ErrorIs(t, err, domainerrors.ErrSubmissionNotFound)
}

func TestCertificationService_Stats_AggregatesCounts(t *testing.T) {
	certRepo := mockRepo.NewMockCertificationRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)
	service := newCertificationService(t, certRepo, fileStore)

	ctx := context.Background()

	certRepo.EXPECT().
		CountByStatus(ctx).
		Return(map[entity.CertificationStatus]int64{
			entity.CertificationPending:  3,
			entity.CertificationApproved: 5,
			entity.CertificationRejected: 2,
		}, nil)

	stats, err := service.Stats(ctx, adminPrincipal())

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Pending)
	assert.Equal(t, int64(5), stats.Approved)
	assert.Equal(t, int64(2), stats.Rejected)
	assert.Equal(t, int64(10), stats.Total)
}

func TestCertificationService_ListPending_RequiresAdminRole(t *testing.T) {
	certRepo := mockRepo.NewMockCertificationRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)
	service := newCertificationService(t, certRepo, fileStore)

	_, err := service.ListPending(context.Background(), farmerPrincipal())

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCertificationService_ListForFarmer_ReturnsOwnSubmissions(t *testing.T) {
	certRepo := mockRepo.NewMockCertificationRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)
	service := newCertificationService(t, certRepo, fileStore)

	ctx := context.Background()
	principal := farmerPrincipal()

	certRepo.EXPECT().
		FindByFarmer(ctx, principal.UserID).
		Return([]*entity.CertificationSubmission{{FarmerID: principal.UserID}}, nil)

	submissions, err := service.ListForFarmer(ctx, principal)

	require.NoError(t, err)
	require.Len(t, submissions, 1)
}

func TestCertificationService_Submit_RepositoryErrorPropagates(t *testing.T) {
	certRepo := mockRepo.NewMockCertificationRepository(t)
	fileStore := mockSvc.NewMockFileStore(t)
	service := newCertificationService(t, certRepo, fileStore)

	ctx := context.Background()

	fileStore.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "application/pdf", mock.Anything).
		Return(nil)

	certRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.CertificationSubmission")).
		Return(errors.New("insert failed"))

	_, err := service.Submit(ctx, farmerPrincipal(), validSubmissionInput())

	assert.Error(t, err)
}
