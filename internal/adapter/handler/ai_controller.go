package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Sushmeta1/Skill-Synch/errors"
	dto "github.com/Sushmeta1/Skill-Synch/internal/adapter/dto/interview"
	interviewuse "github.com/Sushmeta1/Skill-Synch/internal/usecase/interview"
	"github.com/Sushmeta1/Skill-Synch/pkg/ai"
)

// AIController handles API endpoints backed by the generative AI client
type AIController struct {
	gemini *ai.GeminiClient
	svc    interviewuse.Service
	logger *zap.Logger
}

// NewAIController creates a new AI controller
func NewAIController(gemini *ai.GeminiClient, svc interviewuse.Service, logger *zap.Logger) *AIController {
	return &AIController{gemini: gemini, svc: svc, logger: logger}
}

// GenerateFeedback produces a narrative coaching paragraph for an analysis
// @Summary      Generate AI feedback
// @Description  Generates narrative coaching feedback for an analysis, either from a cached report ID or from inline scores. Falls back to demo text when no AI key is configured.
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        request  body      object  true  "Report ID or inline analysis scores"
// @Success      200      {object}  map[string]interface{}  "Narrative feedback"
// @Failure      400      {object}  map[string]interface{}  "Invalid payload"
// @Failure      404      {object}  map[string]interface{}  "Report not found"
// @Router       /ai/feedback [post]
func (ac *AIController) GenerateFeedback(c echo.Context) error {
	var req dto.AIFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	input := ai.FeedbackInput{
		OverallScore:    req.OverallScore,
		ConfidenceScore: req.ConfidenceScore,
		ClarityScore:    req.ClarityScore,
		HesitationRate:  req.HesitationRate,
		ContentScore:    req.ContentScore,
		Strengths:       req.Strengths,
		Improvements:    req.Improvements,
	}

	if req.ReportID != "" {
		report, err := ac.svc.GetReport(c.Request().Context(), req.ReportID)
		if err != nil {
			return HandleError(ac.logger, c, err)
		}
		input = ai.FeedbackInput{
			OverallScore:    report.OverallScore,
			ConfidenceScore: report.SpeechAnalysis.ConfidenceScore,
			ClarityScore:    report.SpeechAnalysis.ClarityScore,
			HesitationRate:  report.SpeechAnalysis.HesitationRate,
			ContentScore:    report.ContentAnalysis.ContentQualityScore,
			Strengths:       report.PerformanceSummary.Strengths,
			Improvements:    report.PerformanceSummary.AreasForImprovement,
		}
	}

	feedback, aiPowered, err := ac.gemini.GenerateFeedback(c.Request().Context(), input)
	if err != nil {
		// Demo text was substituted; the caller still gets a narrative
		ac.logger.Warn("⚠️ AI feedback generation failed, using demo text", zap.Error(err))
	}

	return HandleSuccess(ac.logger, c, dto.AIFeedbackResponse{
		Feedback:  feedback,
		AIPowered: aiPowered,
	})
}

// Diagnostics reports AI connectivity and model availability
// @Summary      AI diagnostics
// @Description  Checks API key presence and probes candidate models in order, reporting the first one that answers
// @Tags         AI
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "Diagnostics result"
// @Router       /ai/diagnostics [get]
func (ac *AIController) Diagnostics(c echo.Context) error {
	diag := ac.gemini.Diagnose(c.Request().Context())
	if diag.KeyConfigured {
		ac.logger.Info("✅ AI diagnostics completed",
			zap.String("working_model", diag.WorkingModel),
			zap.Int("probes", len(diag.Probes)),
		)
	} else {
		ac.logger.Warn("⚠️ AI diagnostics: no API key configured")
	}
	return HandleSuccess(ac.logger, c, diag)
}
