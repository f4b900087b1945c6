package match

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseNote(t *testing.T) {
	t.Parallel()

	got := ParseNote("Started | Top: Alice |  overtime ")
	want := Note{
		Label: "Started",
		Fields: []NoteField{
			{Key: "Top", Value: "Alice"},
			{Value: "overtime"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseNote mismatch (-want +got):\n%s", diff)
	}
	if got.TopScorer() != "Alice" {
		t.Fatalf("unexpected top scorer: %q", got.TopScorer())
	}
}

func TestNoteStringRoundTrip(t *testing.T) {
	t.Parallel()

	raw := "Started | Top: Alice"
	if got := ParseNote(raw).String(); got != raw {
		t.Fatalf("round trip mismatch: %q", got)
	}
	if got := ParseNote("").String(); got != "" {
		t.Fatalf("empty note must render empty, got %q", got)
	}
}

func TestStartedNote(t *testing.T) {
	t.Parallel()

	if got := StartedNote("Budi").String(); got != "Started | Top: Budi" {
		t.Fatalf("unexpected started note: %q", got)
	}
	if got := StartedNote("  ").String(); got != "Started" {
		t.Fatalf("unexpected started note without scorer: %q", got)
	}
}

func TestNoteWithFieldReplaces(t *testing.T) {
	t.Parallel()

	note := ParseNote("Started | top: A").WithField(NoteFieldTop, "B")
	if got := note.String(); got != "Started | top: B" {
		t.Fatalf("unexpected note: %q", got)
	}
}
