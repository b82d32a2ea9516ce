package interview

import (
	"math"
	"strings"

	"github.com/Sushmeta1/Skill-Synch/internal/domain/entities"
)

// AnalyzeSpeechPatterns scores confidence, clarity and hesitation from the
// transcript. Keyword matches are counted as substrings over the lowercased
// text, so "some" also counts the filler "so"; this keeps the scoring
// deliberately rough and cheap.
func AnalyzeSpeechPatterns(transcript string) entities.SpeechMetrics {
	text := strings.ToLower(transcript)
	words := strings.Fields(text)
	totalWords := len(words)

	fillerCount := 0
	for _, filler := range fillerWords {
		fillerCount += strings.Count(text, filler)
	}

	hesitationRate := 0.0
	if totalWords > 0 {
		hesitationRate = math.Min(100, float64(fillerCount)/float64(totalWords)*100)
	}

	confidentCount := 0
	for _, phrase := range confidentPhrases {
		confidentCount += strings.Count(text, phrase)
	}
	uncertainCount := 0
	for _, phrase := range uncertainPhrases {
		uncertainCount += strings.Count(text, phrase)
	}

	confidenceBase := math.Max(0, 80-hesitationRate)
	adjustment := float64(confidentCount*5 - uncertainCount*3)
	confidence := clamp(confidenceBase+adjustment, 0, 100)

	avgSentenceLength := averageSentenceLength(text)
	clarity := clamp(100-math.Abs(avgSentenceLength-15)*2, 50, 100)

	return entities.SpeechMetrics{
		ConfidenceScore:   int(confidence),
		ClarityScore:      int(clarity),
		HesitationRate:    int(hesitationRate),
		FillerWordCount:   fillerCount,
		TotalWords:        totalWords,
		AvgSentenceLength: round1(avgSentenceLength),
	}
}

// averageSentenceLength treats periods as sentence boundaries; transcripts
// without punctuation come out as one long sentence, which the clarity curve
// penalizes on purpose.
func averageSentenceLength(text string) float64 {
	sentences := strings.Split(text, ".")
	wordCount := 0
	for _, sentence := range sentences {
		wordCount += len(strings.Fields(sentence))
	}
	return float64(wordCount) / math.Max(float64(len(sentences)), 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
