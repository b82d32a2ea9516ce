package media

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Sushmeta1/Skill-Synch/internal/domain/entities"
	"github.com/Sushmeta1/Skill-Synch/pkg/config"
)

// Supported video container extensions, lowercase with leading dot
var supportedVideoFormats = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".mkv":  true,
	".webm": true,
	".flv":  true,
	".wmv":  true,
	".m4v":  true,
}

// SupportedVideoFormats returns the accepted video extensions in a stable order
func SupportedVideoFormats() []string {
	return []string{".mp4", ".avi", ".mov", ".mkv", ".webm", ".flv", ".wmv", ".m4v"}
}

// IsVideoFile reports whether the path has a supported video extension.
// Matching is case-insensitive.
func IsVideoFile(path string) bool {
	return supportedVideoFormats[strings.ToLower(filepath.Ext(path))]
}

// Prober reads container metadata from video files via ffprobe
type Prober struct {
	ffprobePath string
	logger      *zap.Logger
}

// NewProber creates a Prober using the configured ffprobe binary
func NewProber(cfg *config.MediaConfig, logger *zap.Logger) *Prober {
	return &Prober{
		ffprobePath: cfg.FFprobePath,
		logger:      logger,
	}
}

// Available reports whether the ffprobe binary can be found
func (p *Prober) Available() bool {
	_, err := exec.LookPath(p.ffprobePath)
	return err == nil
}

// ffprobe -print_format json output shapes
type probeOutput struct {
	Streams []probeStream `json:"streams"`
	Format  probeFormat   `json:"format"`
}

type probeStream struct {
	CodecType  string `json:"codec_type"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	RFrameRate string `json:"r_frame_rate"`
	NBFrames   string `json:"nb_frames"`
}

type probeFormat struct {
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
}

// Probe returns metadata for the given video file. When ffprobe is not
// installed it returns a zero-valued VideoInfo with an explanatory note
// instead of an error; callers must check Note before trusting the numbers.
func (p *Prober) Probe(ctx context.Context, videoPath string) (entities.VideoInfo, error) {
	if !p.Available() {
		if p.logger != nil {
			p.logger.Warn("⚠️ ffprobe not available, skipping video metadata",
				zap.String("ffprobe", p.ffprobePath),
			)
		}
		return entities.VideoInfo{
			Format: strings.ToLower(filepath.Ext(videoPath)),
			Note:   "Video processing libraries not available",
		}, nil
	}

	cmd := exec.CommandContext(ctx, p.ffprobePath,
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-show_format",
		videoPath,
	)
	out, err := cmd.Output()
	if err != nil {
		return entities.VideoInfo{}, fmt.Errorf("could not open video file: %w", err)
	}

	var probed probeOutput
	if err := json.Unmarshal(out, &probed); err != nil {
		return entities.VideoInfo{}, fmt.Errorf("could not parse ffprobe output: %w", err)
	}

	info := entities.VideoInfo{
		Format: strings.ToLower(filepath.Ext(videoPath)),
	}

	for _, stream := range probed.Streams {
		if stream.CodecType != "video" {
			continue
		}
		info.Width = stream.Width
		info.Height = stream.Height
		info.FPS = parseFrameRate(stream.RFrameRate)
		if frames, err := strconv.Atoi(stream.NBFrames); err == nil {
			info.FrameCount = frames
		}
		break
	}

	// Duration is frame count over frame rate; guard division by zero. Some
	// containers (webm notably) omit nb_frames, so fall back to the format
	// duration and derive the count from it.
	switch {
	case info.FrameCount > 0 && info.FPS > 0:
		info.Duration = round2(float64(info.FrameCount) / info.FPS)
	case probed.Format.Duration != "":
		if d, err := strconv.ParseFloat(probed.Format.Duration, 64); err == nil {
			info.Duration = round2(d)
			if info.FPS > 0 {
				info.FrameCount = int(d * info.FPS)
			}
		}
	}
	info.FPS = round2(info.FPS)

	if p.logger != nil {
		p.logger.Info("📹 Probed video metadata",
			zap.String("file", filepath.Base(videoPath)),
			zap.Float64("duration", info.Duration),
			zap.Float64("fps", info.FPS),
			zap.Int("width", info.Width),
			zap.Int("height", info.Height),
		)
	}

	return info, nil
}

// parseFrameRate converts ffprobe's rational rate ("30000/1001") to a float
func parseFrameRate(rate string) float64 {
	parts := strings.SplitN(rate, "/", 2)
	if len(parts) != 2 {
		f, _ := strconv.ParseFloat(rate, 64)
		return f
	}
	num, err1 := strconv.ParseFloat(parts[0], 64)
	den, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0
	}
	return num / den
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
