package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/transcript-flow/internal/segmentation"
)

var mediaExtensions = map[string]bool{
	".wav": true, ".mp3": true, ".m4a": true, ".flac": true, ".ogg": true, ".opus": true,
	".mp4": true, ".mov": true, ".mkv": true, ".webm": true, ".m4v": true,
}

func isJob(path string) bool {
	return strings.EqualFold(filepath.Ext(path), segmentation.JobExt)
}

func isMedia(path string) bool {
	return mediaExtensions[strings.ToLower(filepath.Ext(path))]
}

// segmentMedia runs the segmenter on path, normalizing it to WAV first when configured.
func (p *implProcessor) segmentMedia(ctx context.Context, name, path string) (segmentation.Segmentation, error) {
	if p.segmenter == nil {
		return segmentation.Segmentation{}, fmt.Errorf("%w: no segmenter configured for %s", ErrUnsupportedInput, path)
	}

	audioPath := path
	if p.cfg.Segmenter.ExtractAudio && p.executor != nil {
		extracted, err := p.extractAudio(ctx, path)
		if err != nil {
			return segmentation.Segmentation{}, fmt.Errorf("extract audio: %w", err)
		}
		defer p.cleanupTempFile(ctx, extracted)
		audioPath = extracted
	}

	p.logger.Info(ctx, "Segmenting audio: %s", audioPath)
	seg, err := p.segmenter.Segment(ctx, name, audioPath)
	if err != nil {
		return segmentation.Segmentation{}, fmt.Errorf("segment: %w", err)
	}
	p.logger.Info(ctx, "Segmented %d utterances, %d speaker turns", len(seg.Utterances), len(seg.Turns))
	return seg, nil
}

// extractAudio converts the input to a 16kHz mono WAV in the temp folder,
// the format speech segmenters expect.
func (p *implProcessor) extractAudio(ctx context.Context, inputPath string) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	tmp, err := os.CreateTemp(p.cfg.Paths.Temp, "audio-*.wav")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	audioPath := tmp.Name()
	tmp.Close()

	p.logger.Info(ctx, "Extracting audio: %s", inputPath)

	// -vn drops video, -ar/-ac give 16kHz mono, pcm_s16le keeps it uncompressed.
	args := []string{
		"-i", inputPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.Segmenter.FFmpegPath, args...); err != nil {
		os.Remove(audioPath)
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	p.logger.Debug(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}
