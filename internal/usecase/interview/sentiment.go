package interview

import (
	"strings"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"

	"github.com/Sushmeta1/Skill-Synch/internal/domain/entities"
)

// AnalyzeSentimentAndEmotion scores the overall tone of the transcript and
// breaks it down into emotion categories. When lexiconAvailable is false the
// VADER lexicon is skipped and a small keyword heuristic estimates polarity
// instead.
func AnalyzeSentimentAndEmotion(transcript string, lexiconAvailable bool) entities.SentimentMetrics {
	text := strings.ToLower(transcript)

	var polarity, subjectivity float64
	if lexiconAvailable {
		parsed := sentitext.Parse(text, lexicon.DefaultLexicon)
		score := sentitext.PolarityScore(parsed)
		polarity = score.Compound
		subjectivity = clamp(1-score.Neutral, 0, 1)
	} else {
		polarity, subjectivity = keywordPolarity(text)
	}

	overall := entities.SentimentNeutral
	if polarity > 0.3 {
		overall = entities.SentimentPositive
	} else if polarity < -0.3 {
		overall = entities.SentimentNegative
	}

	breakdown, dominant := emotionBreakdown(text)

	return entities.SentimentMetrics{
		OverallSentiment: overall,
		Polarity:         round2(polarity),
		Subjectivity:     round2(subjectivity),
		EmotionBreakdown: breakdown,
		DominantEmotion:  dominant,
	}
}

// keywordPolarity is the degraded-mode estimate used without a polarity
// lexicon. A transcript with no matches still leans slightly positive.
func keywordPolarity(text string) (float64, float64) {
	positiveCount := 0
	for _, word := range positiveWords {
		if strings.Contains(text, word) {
			positiveCount++
		}
	}
	negativeCount := 0
	for _, word := range negativeWords {
		if strings.Contains(text, word) {
			negativeCount++
		}
	}

	polarity := 0.1
	if total := positiveCount + negativeCount; total > 0 {
		polarity = float64(positiveCount-negativeCount) / float64(total)
	}
	return polarity, 0.6
}

// emotionBreakdown counts emotion keyword hits and converts them to integer
// percentages of all hits. The dominant emotion is the highest-scoring
// category, with ties broken by the fixed category order.
func emotionBreakdown(text string) (map[string]int, string) {
	scores := make(map[string]int, len(emotionOrder))
	total := 0
	for _, emotion := range emotionOrder {
		count := 0
		for _, keyword := range emotionKeywords[emotion] {
			count += strings.Count(text, keyword)
		}
		scores[emotion] = count
		total += count
	}
	if total == 0 {
		total = 1
	}

	breakdown := make(map[string]int, len(emotionOrder))
	dominant := emotionOrder[0]
	best := -1
	for _, emotion := range emotionOrder {
		breakdown[emotion] = scores[emotion] * 100 / total
		if scores[emotion] > best {
			best = scores[emotion]
			dominant = emotion
		}
	}
	return breakdown, dominant
}
