package segmentation

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/nguyentantai21042004/transcript-flow/internal/timeline"
)

type (
	jobFile struct {
		Name       string         `json:"name,omitempty"`
		Utterances []utteranceDoc `json:"utterances"`
		Turns      *[]turnDoc     `json:"turns,omitempty"`
	}

	speechOutput struct {
		Segments []utteranceDoc `json:"segments"`
	}

	speakerOutput struct {
		Turns []turnDoc `json:"turns"`
	}

	utteranceDoc struct {
		Start decimal.Decimal `json:"start"`
		End   decimal.Decimal `json:"end"`
		Text  string          `json:"text"`
	}

	turnDoc struct {
		Start   decimal.Decimal `json:"start"`
		End     decimal.Decimal `json:"end"`
		Speaker string          `json:"speaker"`
	}
)

func toSpan(start, end decimal.Decimal) timeline.TimeSpan {
	return timeline.TimeSpan{Start: start.InexactFloat64(), End: end.InexactFloat64()}
}

func fromSpan(s timeline.TimeSpan) (decimal.Decimal, decimal.Decimal) {
	return decimal.NewFromFloat(s.Start), decimal.NewFromFloat(s.End)
}

// normalizeText trims the text and puts it in NFC form so that equal words
// from different segmenters compare equal.
func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func toUtterances(docs []utteranceDoc) []timeline.Utterance {
	out := make([]timeline.Utterance, len(docs))
	for i, d := range docs {
		out[i] = timeline.Utterance{Span: toSpan(d.Start, d.End), Text: normalizeText(d.Text)}
	}
	return out
}

func toTurns(docs []turnDoc) []timeline.SpeakerTurn {
	out := make([]timeline.SpeakerTurn, len(docs))
	for i, d := range docs {
		out[i] = timeline.SpeakerTurn{Span: toSpan(d.Start, d.End), Speaker: strings.TrimSpace(d.Speaker)}
	}
	return out
}
