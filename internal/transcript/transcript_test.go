package transcript

import (
	"testing"

	"github.com/nguyentantai21042004/transcript-flow/internal/timeline"
)

func TestRender(t *testing.T) {
	utterances := []timeline.AttributedUtterance{
		{Span: timeline.TimeSpan{Start: 0, End: 1}, Text: "hi", Speaker: timeline.UnknownSpeaker},
		{Span: timeline.TimeSpan{Start: 1.234, End: 2.5}, Text: "hello there", Speaker: "SPEAKER_00"},
		{Span: timeline.TimeSpan{Start: 1.234, End: 2.5}, Text: "hello there", Speaker: "SPEAKER_00"},
	}

	tests := []struct {
		name string
		mode Mode
		want string
	}{
		{
			name: "speakers",
			mode: ModeSpeakers,
			want: "[0.00 - 1.00] Speaker unknown: hi\n" +
				"[1.23 - 2.50] Speaker SPEAKER_00: hello there\n" +
				"[1.23 - 2.50] Speaker SPEAKER_00: hello there\n",
		},
		{
			name: "plain",
			mode: ModePlain,
			want: "[0.00 -> 1.00] hi\n" +
				"[1.23 -> 2.50] hello there\n" +
				"[1.23 -> 2.50] hello there\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(utterances, tt.mode); got != tt.want {
				t.Errorf("Render() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil, ModeSpeakers); got != "" {
		t.Errorf("Render(nil) = %q, want empty", got)
	}
}

func TestPlain(t *testing.T) {
	got := Plain([]timeline.Utterance{{Span: timeline.TimeSpan{Start: 2, End: 3}, Text: "x"}})
	if len(got) != 1 || got[0].Text != "x" || got[0].Span.End != 3 || got[0].Speaker != "" {
		t.Errorf("Plain() = %+v", got)
	}
}
