package topscorer

import (
	"sort"
	"strings"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/goal"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/highscorer"
)

const MaxEntries = 20

// Entry is one ranked player of a leaderboard.
type Entry struct {
	Rank       int
	TeamID     string
	PlayerName string
	Count      int
}

type ledgerKey struct {
	teamID string
	player string
}

type ledger struct {
	index map[ledgerKey]int
	items []Entry
}

func newLedger() *ledger {
	return &ledger{index: make(map[ledgerKey]int)}
}

func (l *ledger) add(teamID, playerName string) {
	name := strings.TrimSpace(playerName)
	if name == "" {
		return
	}
	key := ledgerKey{teamID: teamID, player: name}
	if idx, ok := l.index[key]; ok {
		l.items[idx].Count++
		return
	}
	l.index[key] = len(l.items)
	l.items = append(l.items, Entry{TeamID: teamID, PlayerName: name, Count: 1})
}

// ranked sorts by count descending, ties keep first-encountered order.
func (l *ledger) ranked() []Entry {
	out := append([]Entry(nil), l.items...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// Build ranks football scorers over goals that belong to matchIDs. Own goals never count.
func Build(goals []goal.Goal, matchIDs map[string]struct{}) []Entry {
	l := newLedger()
	for _, g := range goals {
		if g.OwnGoal {
			continue
		}
		if _, ok := matchIDs[g.MatchID]; !ok {
			continue
		}
		l.add(g.TeamID, g.PlayerName)
	}
	return l.ranked()
}

// Tally ranks basketball highest-scorer nominations, one point per event.
func Tally(events []highscorer.Event, matchIDs map[string]struct{}) []Entry {
	l := newLedger()
	for _, e := range events {
		if _, ok := matchIDs[e.MatchID]; !ok {
			continue
		}
		l.add(e.TeamID, e.PlayerName)
	}
	return l.ranked()
}
