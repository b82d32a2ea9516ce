package interview

import (
	"github.com/Sushmeta1/Skill-Synch/internal/domain/entities"
)

// GenerateFeedback turns the three analyses into coaching sentences. Rules
// fire in a fixed order so the same metrics always produce the same list.
func GenerateFeedback(speech entities.SpeechMetrics, sentiment entities.SentimentMetrics, content entities.ContentMetrics) []string {
	feedback := make([]string, 0, 8)

	if speech.ConfidenceScore < 60 {
		feedback = append(feedback, "Practice speaking with more conviction. Use definitive statements like 'I can' instead of 'I think I can'.")
	} else if speech.ConfidenceScore > 85 {
		feedback = append(feedback, "Great confidence level! You come across as self-assured and capable.")
	}

	if speech.HesitationRate > 20 {
		feedback = append(feedback, "Try to reduce filler words (um, ah, like). Practice speaking more deliberately and pause instead of using fillers.")
	} else if speech.HesitationRate < 5 {
		feedback = append(feedback, "Excellent fluency! You speak clearly without unnecessary hesitation.")
	}

	if speech.ClarityScore < 70 {
		feedback = append(feedback, "Work on structuring your sentences better. Aim for 10-20 words per sentence for optimal clarity.")
	}

	if sentiment.DominantEmotion == "nervousness" {
		feedback = append(feedback, "Try relaxation techniques before interviews to manage nerves. Deep breathing can help you sound more composed.")
	} else if sentiment.DominantEmotion == "enthusiasm" {
		feedback = append(feedback, "Your enthusiasm comes through clearly! This positive energy is a great asset.")
	}

	if content.ContentQualityScore < 50 {
		feedback = append(feedback, "Include more specific examples of your technical skills and work experience.")
	}
	if len(content.TechnicalSkills) < 2 {
		feedback = append(feedback, "Mention more relevant technical skills that match the job requirements.")
	}
	if len(content.SoftSkills) < 2 {
		feedback = append(feedback, "Highlight soft skills like teamwork, leadership, or problem-solving with specific examples.")
	}

	if sentiment.OverallSentiment == entities.SentimentPositive {
		feedback = append(feedback, "Maintain this positive attitude - it shows genuine interest in the role.")
	}

	return feedback
}
