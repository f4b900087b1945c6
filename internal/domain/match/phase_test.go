package match

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status string
		note   string
		want   Phase
	}{
		{name: "note label wins", status: "scheduled", note: "Second Half | Top: J", want: PhaseLive},
		{name: "started basketball", status: "scheduled", note: "Started | Top: Budi", want: PhaseLive},
		{name: "first half", note: "First Half", want: PhaseLive},
		{name: "halftime is upcoming", note: "Halftime", want: PhaseUpcoming},
		{name: "status only final", status: "final", want: PhaseEnded},
		{name: "status ended", status: "Ended", want: PhaseEnded},
		{name: "note ended over live status", status: "live", note: "Ended", want: PhaseEnded},
		{name: "fields ignored", note: "Upcoming | Top: Final Boss", want: PhaseUpcoming},
		{name: "live checked first", note: "Second half extended", want: PhaseLive},
		{name: "empty", want: PhaseUpcoming},
		{name: "blank note falls back to status", status: "LIVE", note: "   ", want: PhaseLive},
		{name: "blank label falls back to status", status: "final", note: " | Top: J", want: PhaseEnded},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tc.status, tc.note); got != tc.want {
				t.Fatalf("Classify(%q, %q)=%s want %s", tc.status, tc.note, got, tc.want)
			}
		})
	}
}

func TestDisplayStatus(t *testing.T) {
	t.Parallel()

	if got := DisplayStatus("scheduled", "Second Half | Top: J"); got != "Second Half" {
		t.Fatalf("unexpected display status: %q", got)
	}
	if got := DisplayStatus("scheduled", ""); got != "scheduled" {
		t.Fatalf("unexpected display status: %q", got)
	}
	if got := DisplayStatus("final", " | Top: J"); got != "final" {
		t.Fatalf("unexpected display status for empty label: %q", got)
	}
}

func TestIsFinal(t *testing.T) {
	t.Parallel()

	if !IsFinal("FINAL", "") || !IsFinal("", "Final") || !IsFinal("scheduled", "semifinal done") {
		t.Fatalf("expected final")
	}
	if IsFinal("Ended", "Second Half") {
		t.Fatalf("ended without final keyword must not count")
	}
	if IsFinal("scheduled", "Upcoming | Top: Finaldo") {
		t.Fatalf("note fields after the label must not count")
	}
}
