package match

import "strings"

const (
	noteSeparator = "|"

	NoteLabelStarted    = "Started"
	NoteLabelFirstHalf  = "First Half"
	NoteLabelHalftime   = "Halftime"
	NoteLabelSecondHalf = "Second Half"
	NoteLabelUpcoming   = "Upcoming"
	NoteLabelEnded      = "Ended"
	NoteLabelFinal      = "Final"

	NoteFieldTop = "Top"
)

// NoteField is one auxiliary "key: value" entry of a status note.
// Key is empty for segments that carry no colon.
type NoteField struct {
	Key   string
	Value string
}

// Note is the structured form of a status note. It is stored as
// "Label | Key: Value | ..." for compatibility with existing rows.
type Note struct {
	Label  string
	Fields []NoteField
}

func ParseNote(raw string) Note {
	if strings.TrimSpace(raw) == "" {
		return Note{}
	}

	parts := strings.Split(raw, noteSeparator)
	note := Note{Label: strings.TrimSpace(parts[0])}
	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			note.Fields = append(note.Fields, NoteField{Value: part})
			continue
		}
		note.Fields = append(note.Fields, NoteField{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
	return note
}

func (n Note) String() string {
	if n.Label == "" && len(n.Fields) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(n.Label)
	for _, f := range n.Fields {
		b.WriteString(" ")
		b.WriteString(noteSeparator)
		b.WriteString(" ")
		if f.Key != "" {
			b.WriteString(f.Key)
			b.WriteString(": ")
		}
		b.WriteString(f.Value)
	}
	return b.String()
}

// Field looks a key up case-insensitively.
func (n Note) Field(key string) (string, bool) {
	for _, f := range n.Fields {
		if f.Key != "" && strings.EqualFold(f.Key, key) {
			return f.Value, true
		}
	}
	return "", false
}

// WithField returns a copy of n with key set to value, replacing an existing entry.
func (n Note) WithField(key, value string) Note {
	out := Note{Label: n.Label, Fields: make([]NoteField, 0, len(n.Fields)+1)}
	replaced := false
	for _, f := range n.Fields {
		if f.Key != "" && strings.EqualFold(f.Key, key) {
			if !replaced {
				out.Fields = append(out.Fields, NoteField{Key: f.Key, Value: value})
				replaced = true
			}
			continue
		}
		out.Fields = append(out.Fields, f)
	}
	if !replaced {
		out.Fields = append(out.Fields, NoteField{Key: key, Value: value})
	}
	return out
}

func (n Note) TopScorer() string {
	v, _ := n.Field(NoteFieldTop)
	return v
}

// StartedNote is the note written when a basketball score is entered.
func StartedNote(topScorer string) Note {
	note := Note{Label: NoteLabelStarted}
	if topScorer = strings.TrimSpace(topScorer); topScorer != "" {
		note = note.WithField(NoteFieldTop, topScorer)
	}
	return note
}
