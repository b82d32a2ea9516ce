package interview

// AIFeedbackRequest asks for narrative feedback over an analysis. Either a
// cached report ID or inline scores must be provided; the report takes
// precedence.
type AIFeedbackRequest struct {
	ReportID        string   `json:"report_id,omitempty" validate:"omitempty,uuid"`
	OverallScore    int      `json:"overall_score" validate:"min=0,max=100"`
	ConfidenceScore int      `json:"confidence_score" validate:"min=0,max=100"`
	ClarityScore    int      `json:"clarity_score" validate:"min=0,max=100"`
	HesitationRate  int      `json:"hesitation_rate" validate:"min=0,max=100"`
	ContentScore    int      `json:"content_quality_score" validate:"min=0,max=100"`
	Strengths       []string `json:"strengths,omitempty"`
	Improvements    []string `json:"areas_for_improvement,omitempty"`
}
