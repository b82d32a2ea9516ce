package interview

import (
	"context"

	"github.com/Sushmeta1/Skill-Synch/internal/domain/entities"
)

// Service defines the interface for interview analysis use case
type Service interface {
	// Analyze runs the full pipeline over one uploaded recording and returns
	// the resulting report. Only validation failures produce an error; any
	// later pipeline failure degrades to the fallback report.
	Analyze(ctx context.Context, filePath string) (*entities.AnalysisReport, error)

	// GetReport retrieves a previously produced report from the report cache
	GetReport(ctx context.Context, reportID string) (*entities.AnalysisReport, error)
}

// Ensure AnalysisService implements Service interface
var _ Service = (*AnalysisService)(nil)
