package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Sushmeta1/Skill-Synch/errors"
	dto "github.com/Sushmeta1/Skill-Synch/internal/adapter/dto/interview"
	interviewuse "github.com/Sushmeta1/Skill-Synch/internal/usecase/interview"
	"github.com/Sushmeta1/Skill-Synch/pkg/config"
)

// Interview handles recording upload and report retrieval endpoints
type Interview struct {
	svc       interviewuse.Service
	uploadDir string
	logger    *zap.Logger
}

// NewInterview creates a new interview handler
func NewInterview(svc interviewuse.Service, cfg *config.UploadConfig, logger *zap.Logger) *Interview {
	return &Interview{
		svc:       svc,
		uploadDir: cfg.Dir,
		logger:    logger,
	}
}

// Analyze runs the full analysis pipeline over an uploaded recording
// @Summary      Analyze interview recording
// @Description  Uploads an audio or video recording, runs speech, sentiment and content analysis and returns the full report
// @Tags         Interviews
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Audio or video recording"
// @Success      200   {object}  map[string]interface{}  "Analysis report"
// @Failure      400   {object}  map[string]interface{}  "Validation failed"
// @Router       /interviews/analyze [post]
func (h *Interview) Analyze(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrValidation("No recording file uploaded"))
	}

	h.logger.Info("🔄 Recording upload received",
		zap.String("filename", fileHeader.Filename),
		zap.Int64("bytes", fileHeader.Size),
	)

	uploadPath, err := h.saveUpload(fileHeader)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInternal(err))
	}
	defer func() {
		if rmErr := os.Remove(uploadPath); rmErr != nil && !os.IsNotExist(rmErr) {
			h.logger.Warn("⚠️ Failed to remove uploaded file", zap.Error(rmErr))
		}
	}()

	report, err := h.svc.Analyze(c.Request().Context(), uploadPath)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, dto.AnalyzeResponse{
		ReportID: report.ID.String(),
		Report:   report,
	})
}

// GetReport retrieves a cached analysis report
// @Summary      Get analysis report
// @Description  Returns a previously produced analysis report by ID
// @Tags         Interviews
// @Produce      json
// @Param        id   path      string  true  "Report ID (UUID)"
// @Success      200  {object}  map[string]interface{}  "Analysis report"
// @Failure      404  {object}  map[string]interface{}  "Report not found or expired"
// @Router       /interviews/reports/{id} [get]
func (h *Interview) GetReport(c echo.Context) error {
	reportID := c.Param("id")
	if _, err := uuid.Parse(reportID); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid report ID"))
	}

	report, err := h.svc.GetReport(c.Request().Context(), reportID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, dto.AnalyzeResponse{
		ReportID: report.ID.String(),
		Report:   report,
	})
}

// saveUpload writes the multipart file into the upload directory under a
// fresh name, keeping the original extension so the media stage can classify
// the recording
func (h *Interview) saveUpload(fileHeader *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	ext := filepath.Ext(fileHeader.Filename)
	uploadPath := filepath.Join(h.uploadDir, uuid.New().String()+ext)

	dst, err := os.Create(uploadPath)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(uploadPath)
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}
	return uploadPath, nil
}
