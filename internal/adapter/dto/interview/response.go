package interview

import (
	"github.com/Sushmeta1/Skill-Synch/internal/domain/entities"
)

// AnalyzeResponse wraps a completed analysis report
type AnalyzeResponse struct {
	ReportID string                   `json:"report_id"`
	Report   *entities.AnalysisReport `json:"report"`
}

// AIFeedbackResponse carries the generated narrative. AIPowered is false when
// the demo fallback text was used.
type AIFeedbackResponse struct {
	Feedback  string `json:"feedback"`
	AIPowered bool   `json:"ai_powered"`
}
