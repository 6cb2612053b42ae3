package segmentation

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// JobExt is the extension of job files.
const JobExt = ".json"

// ReadJob decodes a job document. A missing "turns" key means no speaker
// segmentation; an empty array means one that found nobody.
func ReadJob(r io.Reader) (Segmentation, error) {
	var doc jobFile
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Segmentation{}, fmt.Errorf("decode job: %w", err)
	}

	seg := Segmentation{
		Name:       strings.TrimSpace(doc.Name),
		Utterances: toUtterances(doc.Utterances),
	}
	if doc.Turns != nil {
		seg.Diarized = true
		seg.Turns = toTurns(*doc.Turns)
	}
	return seg, nil
}

// LoadJob reads a job file. The name defaults to the file name without extension.
func LoadJob(path string) (Segmentation, error) {
	f, err := os.Open(path)
	if err != nil {
		return Segmentation{}, fmt.Errorf("open job: %w", err)
	}
	defer f.Close()

	seg, err := ReadJob(f)
	if err != nil {
		return Segmentation{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if seg.Name == "" {
		seg.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return seg, nil
}

// WriteJob encodes seg in the job format read by ReadJob.
func WriteJob(w io.Writer, seg Segmentation) error {
	doc := jobFile{Name: seg.Name, Utterances: make([]utteranceDoc, len(seg.Utterances))}
	for i, u := range seg.Utterances {
		start, end := fromSpan(u.Span)
		doc.Utterances[i] = utteranceDoc{Start: start, End: end, Text: u.Text}
	}
	if seg.Diarized {
		turns := make([]turnDoc, len(seg.Turns))
		for i, t := range seg.Turns {
			start, end := fromSpan(t.Span)
			turns[i] = turnDoc{Start: start, End: end, Speaker: t.Speaker}
		}
		doc.Turns = &turns
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode job: %w", err)
	}
	return nil
}
