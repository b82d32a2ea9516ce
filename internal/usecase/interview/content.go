package interview

import (
	"strings"

	"github.com/Sushmeta1/Skill-Synch/internal/domain/entities"
)

// AnalyzeContentQuality looks for technical skills, soft skills and
// experience language in the transcript and scores each dimension with a
// capped contribution so one strong dimension cannot dominate.
func AnalyzeContentQuality(transcript string) entities.ContentMetrics {
	text := strings.ToLower(transcript)

	technicalFound := matchKeywords(text, technicalSkills)
	softFound := matchKeywords(text, softSkills)

	experienceCount := 0
	for _, indicator := range experienceIndicators {
		if strings.Contains(text, indicator) {
			experienceCount++
		}
	}

	technicalScore := minInt(len(technicalFound)*8, 40)
	softScore := minInt(len(softFound)*6, 30)
	experienceScore := minInt(experienceCount*3, 30)

	return entities.ContentMetrics{
		ContentQualityScore:  technicalScore + softScore + experienceScore,
		TechnicalSkills:      technicalFound,
		SoftSkills:           softFound,
		ExperienceIndicators: experienceCount,
		DetailedBreakdown: entities.ContentBreakdown{
			TechnicalScore:  technicalScore,
			SoftSkillsScore: softScore,
			ExperienceScore: experienceScore,
		},
	}
}

// matchKeywords returns the keywords present in the text, preserving table
// order. The result is never nil so it serializes as an empty JSON array.
func matchKeywords(text string, keywords []string) []string {
	found := make([]string, 0, 4)
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
