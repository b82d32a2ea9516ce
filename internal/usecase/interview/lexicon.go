package interview

// Keyword tables driving the heuristic analyzers. They are plain data so the
// lists can be tuned or swapped without touching any scoring logic.

// fillerWords are disfluency tokens counted toward the hesitation rate
var fillerWords = []string{
	"um", "uh", "er", "ah", "like", "you know", "so", "basically", "actually",
}

// confidentPhrases raise the confidence score, uncertainPhrases lower it
var (
	confidentPhrases = []string{
		"i am confident", "i believe", "i know", "definitely", "absolutely", "certainly",
	}
	uncertainPhrases = []string{
		"maybe", "i think", "probably", "not sure", "i guess", "perhaps",
	}
)

// positiveWords and negativeWords drive the keyword fallback when no polarity
// lexicon is available
var (
	positiveWords = []string{"excited", "confident", "enjoy", "love", "passionate", "skilled"}
	negativeWords = []string{"nervous", "worried", "difficult", "struggle", "unsure"}
)

// emotionOrder fixes first-seen tie-breaking for the dominant emotion
var emotionOrder = []string{
	"enthusiasm", "confidence", "nervousness", "professionalism", "curiosity",
}

var emotionKeywords = map[string][]string{
	"enthusiasm":      {"excited", "passionate", "love", "enjoy", "thrilled", "eager"},
	"confidence":      {"confident", "capable", "skilled", "experienced", "proficient"},
	"nervousness":     {"nervous", "worried", "anxious", "uncertain", "hesitant"},
	"professionalism": {"professional", "responsible", "reliable", "dedicated", "committed"},
	"curiosity":       {"interested", "curious", "learn", "explore", "discover"},
}

// technicalSkills, softSkills and experienceIndicators feed the content
// quality score
var (
	technicalSkills = []string{
		"python", "javascript", "java", "react", "node", "sql", "aws", "docker",
		"kubernetes", "git", "html", "css", "mongodb", "postgresql", "redis",
		"machine learning", "ai", "data science", "api", "rest", "microservices",
	}
	softSkills = []string{
		"teamwork", "leadership", "communication", "problem solving", "creative",
		"analytical", "organized", "adaptable", "collaborative", "motivated",
	}
	experienceIndicators = []string{
		"experience", "worked", "developed", "built", "implemented", "managed",
		"led", "created", "designed", "optimized", "maintained", "deployed",
	}
)
