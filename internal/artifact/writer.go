package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// File name suffixes appended to the sanitized run name.
const (
	TranscriptSuffix = ".transcript.txt"
	SummarySuffix    = ".summary.md"
	DocxSuffix       = ".docx"
)

func (w *implWriter) Write(ctx context.Context, a Artifacts) (Paths, error) {
	base := SanitizeFileName(a.Name)
	if base == "" {
		base = "transcript"
	}
	if a.Generated.IsZero() {
		a.Generated = time.Now()
	}

	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return Paths{}, fmt.Errorf("create output dir: %w", err)
	}
	if err := os.MkdirAll(w.tempDir, 0755); err != nil {
		return Paths{}, fmt.Errorf("create temp dir: %w", err)
	}

	// Isolated staging dir per run so concurrent runs never see each other's files.
	stage, err := os.MkdirTemp(w.tempDir, "artifacts-*")
	if err != nil {
		return Paths{}, fmt.Errorf("create staging dir: %w", err)
	}
	defer os.RemoveAll(stage)

	files := []string{base + TranscriptSuffix, base + SummarySuffix}
	if err := os.WriteFile(filepath.Join(stage, files[0]), []byte(a.Transcript), 0644); err != nil {
		return Paths{}, fmt.Errorf("write transcript: %w", err)
	}
	if err := os.WriteFile(filepath.Join(stage, files[1]), []byte(renderMarkdown(a)), 0644); err != nil {
		return Paths{}, fmt.Errorf("write summary: %w", err)
	}
	if w.docx {
		files = append(files, base+DocxSuffix)
		if err := writeDocx(a, filepath.Join(stage, files[2])); err != nil {
			return Paths{}, fmt.Errorf("write docx: %w", err)
		}
	}

	if err := ctx.Err(); err != nil {
		return Paths{}, err
	}

	moved, err := w.commit(ctx, stage, files)
	if err != nil {
		return Paths{}, err
	}

	paths := Paths{Transcript: moved[0], Summary: moved[1]}
	if w.docx {
		paths.Docx = moved[2]
	}
	w.logger.Info(ctx, "Artifacts written: %s", strings.Join(moved, ", "))
	return paths, nil
}

func renderMarkdown(a Artifacts) string {
	body := strings.Join(a.Bullets, "\n")
	if body == "" {
		body = "_No summary points._"
	}
	return fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
		a.Name,
		a.Generated.Format("2006-01-02 15:04"),
		body,
	)
}

// backupSuffix marks artifacts of an earlier run while they are being replaced.
const backupSuffix = ".prev"

// commit moves the staged files into the output dir. Files from an earlier run
// with the same name are set aside first and restored when any move fails, so
// the output dir holds either the old set or the new one.
func (w *implWriter) commit(ctx context.Context, stage string, files []string) ([]string, error) {
	var (
		placed  []string
		backups = make(map[string]string)
	)
	rollback := func() {
		for _, p := range placed {
			os.Remove(p)
		}
		for dest, backup := range backups {
			if err := os.Rename(backup, dest); err != nil {
				w.logger.Error(ctx, "Failed to restore %s: %v", dest, err)
			}
		}
	}

	for _, name := range files {
		dest := filepath.Join(w.outputDir, name)
		if _, err := os.Lstat(dest); err == nil {
			backup := dest + backupSuffix
			if err := os.Rename(dest, backup); err != nil {
				rollback()
				return nil, fmt.Errorf("set aside previous %s: %w", name, err)
			}
			backups[dest] = backup
		}
		if err := w.move(filepath.Join(stage, name), dest); err != nil {
			rollback()
			return nil, fmt.Errorf("move %s to output: %w", name, err)
		}
		placed = append(placed, dest)
	}

	for _, backup := range backups {
		os.Remove(backup)
	}
	return placed, nil
}

var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName replaces filesystem-unsafe characters in a name.
func SanitizeFileName(name string) string {
	return strings.TrimSpace(fileNameReplacer.Replace(strings.TrimSpace(name)))
}
