package match

import "strings"

// Phase is the coarse display state of a match.
type Phase string

const (
	PhaseUpcoming Phase = "upcoming"
	PhaseLive     Phase = "live"
	PhaseEnded    Phase = "ended"
)

var (
	liveKeywords  = []string{"start", "live", "first", "second"}
	endedKeywords = []string{"end", "final"}
)

// Classify maps the free-text status pair onto a phase.
// A note with a non-blank label (text before the first pipe) wins over status.
// Live keywords are checked before ended keywords.
func Classify(status, note string) Phase {
	text := status
	if label := noteLabel(note); strings.TrimSpace(label) != "" {
		text = label
	}
	text = strings.ToLower(text)

	if containsAny(text, liveKeywords) {
		return PhaseLive
	}
	if containsAny(text, endedKeywords) {
		return PhaseEnded
	}
	return PhaseUpcoming
}

// DisplayStatus is the label shown next to a match.
func DisplayStatus(status, note string) string {
	if label := strings.TrimSpace(noteLabel(note)); label != "" {
		return label
	}
	return status
}

func noteLabel(note string) string {
	label, _, _ := strings.Cut(note, noteSeparator)
	return label
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
