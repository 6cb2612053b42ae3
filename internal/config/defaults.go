package config

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/align"
	"github.com/nguyentantai21042004/transcript-flow/internal/summarizer"
	"github.com/nguyentantai21042004/transcript-flow/internal/textproc"
	"github.com/nguyentantai21042004/transcript-flow/internal/timeline"
)

// Default returns the configuration used when a key is absent from the file.
func Default() Config {
	return Config{
		Alignment: AlignmentConfig{
			BoundaryMarginSeconds: timeline.DefaultMargin,
			Policy:                string(align.PolicyFirstMatch),
			Workers:               1,
		},
		Summary: SummaryConfig{
			ChunkSizeChars: summarizer.DefaultChunkSize,
			MaxLength:      summarizer.DefaultMaxLength,
			MinLength:      summarizer.DefaultMinLength,
			Concurrency:    1,
		},
		Bullets: BulletsConfig{
			MinSentenceLength: textproc.DefaultMinSentenceLength,
		},
		Cleaner: CleanerConfig{
			FillerWords: append([]string(nil), textproc.DefaultFillerWords...),
		},
		Gemini: GeminiConfig{
			Model: summarizer.DefaultGeminiModel,
		},
		Segmenter: SegmenterConfig{
			ExtractAudio: true,
			FFmpegPath:   "ffmpeg",
		},
		Paths: PathsConfig{
			Input:      "data/input",
			Processing: "data/processing",
			Output:     "data/output",
			Archived:   "data/archived",
			Failed:     "data/failed",
			Temp:       "data/temp",
			State:      "data/state",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Performance: PerformanceConfig{
			MaxConcurrent: 2,
		},
	}
}
