package standings

// Row is one team's line in a group table.
type Row struct {
	TeamID         string
	TeamName       string
	Position       int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

// Group is a named table of rows, already ranked.
type Group struct {
	Name string
	Rows []Row
}

// Result is a single-letter form entry from one team's perspective.
type Result string

const (
	ResultWin  Result = "W"
	ResultDraw Result = "D"
	ResultLoss Result = "L"
)

const (
	PointsWin  = 3
	PointsDraw = 1

	DefaultFormLength = 5
)
