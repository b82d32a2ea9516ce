package interview

import (
	"testing"
)

const sampleTranscript = "hello my name is john and i am excited about this opportunity " +
	"i have experience in python javascript and react i enjoy working with teams " +
	"and solving complex problems um i have worked on several projects and i am " +
	"confident in my abilities"

func TestAnalyzeSpeechPatterns_SampleTranscript(t *testing.T) {
	metrics := AnalyzeSpeechPatterns(sampleTranscript)

	if metrics.TotalWords != 43 {
		t.Fatalf("expected 43 words got %d", metrics.TotalWords)
	}
	// "um" once, "er" inside "experience" and "several", "so" inside "solving"
	if metrics.FillerWordCount != 4 {
		t.Fatalf("expected 4 filler hits got %d", metrics.FillerWordCount)
	}
	if metrics.HesitationRate != 9 {
		t.Fatalf("expected hesitation rate 9 got %d", metrics.HesitationRate)
	}
	// base 80-9.3 plus one confident phrase ("i am confident")
	if metrics.ConfidenceScore != 75 {
		t.Fatalf("expected confidence 75 got %d", metrics.ConfidenceScore)
	}
	// one long unpunctuated sentence clamps clarity at the floor
	if metrics.ClarityScore != 50 {
		t.Fatalf("expected clarity 50 got %d", metrics.ClarityScore)
	}
	if metrics.AvgSentenceLength != 43 {
		t.Fatalf("expected avg sentence length 43 got %v", metrics.AvgSentenceLength)
	}
}

func TestAnalyzeSpeechPatterns_EmptyTranscript(t *testing.T) {
	metrics := AnalyzeSpeechPatterns("")

	if metrics.TotalWords != 0 {
		t.Fatalf("expected 0 words got %d", metrics.TotalWords)
	}
	if metrics.HesitationRate != 0 {
		t.Fatalf("expected hesitation 0 got %d", metrics.HesitationRate)
	}
	if metrics.ConfidenceScore != 80 {
		t.Fatalf("expected confidence 80 got %d", metrics.ConfidenceScore)
	}
	if metrics.ClarityScore != 70 {
		t.Fatalf("expected clarity 70 got %d", metrics.ClarityScore)
	}
}

func TestAnalyzeSpeechPatterns_UncertainSpeech(t *testing.T) {
	transcript := "maybe i think i could probably do this but i am not sure i guess"
	metrics := AnalyzeSpeechPatterns(transcript)

	confident := AnalyzeSpeechPatterns("i am confident and i know definitely that i can do this")
	if metrics.ConfidenceScore >= confident.ConfidenceScore {
		t.Fatalf("uncertain speech should score below confident speech: %d >= %d",
			metrics.ConfidenceScore, confident.ConfidenceScore)
	}
}

func TestAnalyzeSpeechPatterns_SubstringFillers(t *testing.T) {
	// "so" matches inside "sorry" and "um" inside "umbrella"; substring
	// counting is intentional
	metrics := AnalyzeSpeechPatterns("sorry i forgot my umbrella")
	if metrics.FillerWordCount < 2 {
		t.Fatalf("expected substring filler hits, got %d", metrics.FillerWordCount)
	}
}

func TestAnalyzeSpeechPatterns_SentenceStructure(t *testing.T) {
	// Twelve-word sentences sit inside the ideal band
	transcript := "this is a sentence that has exactly twelve words in it okay. " +
		"this is a sentence that has exactly twelve words in it okay."
	metrics := AnalyzeSpeechPatterns(transcript)

	if metrics.ClarityScore < 80 {
		t.Fatalf("well-structured speech should score high clarity, got %d", metrics.ClarityScore)
	}
}
