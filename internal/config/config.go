package config

type Config struct {
	Alignment   AlignmentConfig   `yaml:"alignment" toml:"alignment"`
	Summary     SummaryConfig     `yaml:"summary" toml:"summary"`
	Bullets     BulletsConfig     `yaml:"bullets" toml:"bullets"`
	Cleaner     CleanerConfig     `yaml:"cleaner" toml:"cleaner"`
	Gemini      GeminiConfig      `yaml:"gemini" toml:"gemini"`
	Segmenter   SegmenterConfig   `yaml:"segmenter" toml:"segmenter"`
	Paths       PathsConfig       `yaml:"paths" toml:"paths"`
	Logging     LoggingConfig     `yaml:"logging" toml:"logging"`
	Performance PerformanceConfig `yaml:"performance" toml:"performance"`
}

type AlignmentConfig struct {
	BoundaryMarginSeconds float64 `yaml:"boundary_margin_seconds" toml:"boundary_margin_seconds"`
	Policy                string  `yaml:"policy" toml:"policy"`
	Workers               int     `yaml:"workers" toml:"workers"`
}

type SummaryConfig struct {
	ChunkSizeChars int `yaml:"chunk_size_chars" toml:"chunk_size_chars"`
	MaxLength      int `yaml:"max_length" toml:"max_length"`
	MinLength      int `yaml:"min_length" toml:"min_length"`
	Concurrency    int `yaml:"concurrency" toml:"concurrency"`
}

type BulletsConfig struct {
	MinSentenceLength int `yaml:"min_sentence_length" toml:"min_sentence_length"`
}

type CleanerConfig struct {
	FillerWords []string `yaml:"filler_words" toml:"filler_words"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model" toml:"model"`
	APIKeys []string `yaml:"api_keys" toml:"api_keys"`
}

// SegmenterConfig holds the external commands that segment audio files. The
// first element is the binary; "{input}" in any argument is replaced by the
// audio path. Both commands print JSON on stdout.
type SegmenterConfig struct {
	SpeechCommand  []string `yaml:"speech_command" toml:"speech_command"`
	SpeakerCommand []string `yaml:"speaker_command" toml:"speaker_command"`
	// ExtractAudio converts inputs to 16kHz mono WAV with ffmpeg before segmenting.
	ExtractAudio bool   `yaml:"extract_audio" toml:"extract_audio"`
	FFmpegPath   string `yaml:"ffmpeg_path" toml:"ffmpeg_path"`
}

type PathsConfig struct {
	Input      string `yaml:"input" toml:"input"`
	Processing string `yaml:"processing" toml:"processing"`
	Output     string `yaml:"output" toml:"output"`
	Archived   string `yaml:"archived" toml:"archived"`
	Failed     string `yaml:"failed" toml:"failed"`
	Temp       string `yaml:"temp" toml:"temp"`
	State      string `yaml:"state" toml:"state"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" toml:"max_concurrent"`
}
