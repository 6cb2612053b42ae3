package timeline

// UnknownSpeaker labels utterances that no speaker turn covers.
const UnknownSpeaker = "unknown"

// Utterance is one span of recognized speech.
type Utterance struct {
	Span TimeSpan
	Text string
}

// SpeakerTurn is one contiguous period attributed to a speaker.
type SpeakerTurn struct {
	Span    TimeSpan
	Speaker string
}

// ExtendedTurn is a SpeakerTurn widened by the boundary margin.
// Source is the index of the turn in the original emission order.
type ExtendedTurn struct {
	Span    TimeSpan
	Speaker string
	Source  int
}

// AttributedUtterance is an utterance with the speaker chosen for it.
type AttributedUtterance struct {
	Span    TimeSpan
	Text    string
	Speaker string
}

// Known reports whether a turn was matched.
func (a AttributedUtterance) Known() bool {
	return a.Speaker != UnknownSpeaker
}
