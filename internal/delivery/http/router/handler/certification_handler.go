package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"harvest/internal/delivery/http/response"
	"harvest/internal/domain/entity"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CertificationHandler holds dependencies for certification handlers.
type CertificationHandler struct {
	uc     usecase.CertificationUsecase
	logger *slog.Logger
}

// NewCertificationHandler is the constructor for CertificationHandler, injected by Fx.
func NewCertificationHandler(uc usecase.CertificationUsecase, logger *slog.Logger) *CertificationHandler {
	return &CertificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// decideCertificationRequest is the payload for an admin decision.
type decideCertificationRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
	Reason string `json:"reason"`
}

// Submit handles the multipart certification submission: a JSON components
// field plus the certificate document.
func (h *CertificationHandler) Submit(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	farmName := c.FormValue("farmName")

	var components []entity.SoilComponent
	if raw := c.FormValue("components"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &components); err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid soil components JSON")
		}
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Certificate file is missing")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded certificate")
	}
	defer file.Close()

	submission, err := h.uc.Submit(c.Request().Context(), principal, &usecase.SubmitCertificationInput{
		FarmName:    farmName,
		Components:  components,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		FileSize:    fileHeader.Size,
		File:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, submission, "Certification submitted successfully")
}

// ListOwn handles listing the calling farmer's submissions.
func (h *CertificationHandler) ListOwn(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	submissions, err := h.uc.ListForFarmer(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, submissions, "")
}

// ListPending handles the admin review queue.
func (h *CertificationHandler) ListPending(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	submissions, err := h.uc.ListPending(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, submissions, "")
}

// Decide handles the admin decision on a pending submission.
func (h *CertificationHandler) Decide(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid submission ID")
	}

	var req decideCertificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid decision input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	submission, err := h.uc.Decide(c.Request().Context(), principal, submissionID, &usecase.DecideCertificationInput{
		Approve: req.Status == entity.CertificationApproved.String(),
		Reason:  req.Reason,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, submission, "Certification decided successfully")
}

// Stats handles the admin statistics request.
func (h *CertificationHandler) Stats(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return errors.WithStack(err)
	}

	stats, err := h.uc.Stats(c.Request().Context(), principal)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
