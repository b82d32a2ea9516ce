package entities

// MediaKind classifies an uploaded recording by its container type
type MediaKind string

const (
	MediaKindAudio MediaKind = "audio"
	MediaKindVideo MediaKind = "video"
)

// AnalysisInput describes one uploaded recording for the duration of a single
// request. It is never mutated after construction.
type AnalysisInput struct {
	FilePath string    `json:"file_path"`
	Kind     MediaKind `json:"kind"`
}

// NewAnalysisInput creates an AnalysisInput for the given path and kind
func NewAnalysisInput(filePath string, kind MediaKind) AnalysisInput {
	return AnalysisInput{
		FilePath: filePath,
		Kind:     kind,
	}
}

// VideoInfo holds container metadata probed from a video file. All fields are
// zero when decoding support is unavailable; callers must check Note before
// trusting the numbers.
type VideoInfo struct {
	Duration   float64 `json:"duration"`
	FPS        float64 `json:"fps"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	FrameCount int     `json:"frame_count,omitempty"`
	Format     string  `json:"format"`
	Note       string  `json:"note,omitempty"`
}

// HasMetadata reports whether the prober actually decoded the container
func (v VideoInfo) HasMetadata() bool {
	return v.Note == ""
}
