package interview

import (
	"testing"

	"github.com/Sushmeta1/Skill-Synch/internal/domain/entities"
)

func TestAnalyzeSentimentAndEmotion_KeywordFallbackPositive(t *testing.T) {
	result := AnalyzeSentimentAndEmotion("i am excited and passionate and love this work", false)

	if result.OverallSentiment != entities.SentimentPositive {
		t.Fatalf("expected Positive got %s", result.OverallSentiment)
	}
	if result.Polarity != 1 {
		t.Fatalf("expected polarity 1 got %v", result.Polarity)
	}
	if result.Subjectivity != 0.6 {
		t.Fatalf("expected fallback subjectivity 0.6 got %v", result.Subjectivity)
	}
}

func TestAnalyzeSentimentAndEmotion_KeywordFallbackNegative(t *testing.T) {
	result := AnalyzeSentimentAndEmotion("i am nervous and worried this will be difficult", false)

	if result.OverallSentiment != entities.SentimentNegative {
		t.Fatalf("expected Negative got %s", result.OverallSentiment)
	}
	if result.Polarity != -1 {
		t.Fatalf("expected polarity -1 got %v", result.Polarity)
	}
}

func TestAnalyzeSentimentAndEmotion_KeywordFallbackNoMatches(t *testing.T) {
	// Without any keyword hits the fallback leans slightly positive
	result := AnalyzeSentimentAndEmotion("the meeting starts at nine", false)

	if result.Polarity != 0.1 {
		t.Fatalf("expected default polarity 0.1 got %v", result.Polarity)
	}
	if result.OverallSentiment != entities.SentimentNeutral {
		t.Fatalf("expected Neutral got %s", result.OverallSentiment)
	}
}

func TestAnalyzeSentimentAndEmotion_MildPolarityStaysNeutral(t *testing.T) {
	// Three positive hits against two negative ones give polarity 0.2, which
	// sits inside the (-0.3, 0.3] neutral band
	result := AnalyzeSentimentAndEmotion(
		"i am excited and confident and i enjoy this but i am nervous and worried", false)

	if result.Polarity != 0.2 {
		t.Fatalf("expected polarity 0.2 got %v", result.Polarity)
	}
	if result.OverallSentiment != entities.SentimentNeutral {
		t.Fatalf("polarity 0.2 must classify as Neutral, got %s", result.OverallSentiment)
	}

	// Mirror case below the band
	result = AnalyzeSentimentAndEmotion(
		"i am nervous and worried and this is difficult but i enjoy it and i am excited", false)

	if result.Polarity != -0.2 {
		t.Fatalf("expected polarity -0.2 got %v", result.Polarity)
	}
	if result.OverallSentiment != entities.SentimentNeutral {
		t.Fatalf("polarity -0.2 must classify as Neutral, got %s", result.OverallSentiment)
	}
}

func TestAnalyzeSentimentAndEmotion_LexiconPositive(t *testing.T) {
	result := AnalyzeSentimentAndEmotion("this is wonderful i love it and i am very happy", true)

	if result.OverallSentiment != entities.SentimentPositive {
		t.Fatalf("expected Positive got %s", result.OverallSentiment)
	}
	if result.Polarity <= 0.3 {
		t.Fatalf("expected strongly positive polarity got %v", result.Polarity)
	}
}

func TestEmotionBreakdown_DominantEmotion(t *testing.T) {
	breakdown, dominant := emotionBreakdown("i am nervous and anxious but also curious")

	if dominant != "nervousness" {
		t.Fatalf("expected nervousness got %s", dominant)
	}
	if breakdown["nervousness"] <= breakdown["curiosity"] {
		t.Fatalf("nervousness should outscore curiosity: %v", breakdown)
	}
}

func TestEmotionBreakdown_NoHits(t *testing.T) {
	breakdown, dominant := emotionBreakdown("the meeting starts at nine")

	// First category wins ties at zero
	if dominant != "enthusiasm" {
		t.Fatalf("expected enthusiasm got %s", dominant)
	}
	for emotion, score := range breakdown {
		if score != 0 {
			t.Fatalf("expected zero score for %s got %d", emotion, score)
		}
	}
	if len(breakdown) != len(emotionOrder) {
		t.Fatalf("expected %d categories got %d", len(emotionOrder), len(breakdown))
	}
}
