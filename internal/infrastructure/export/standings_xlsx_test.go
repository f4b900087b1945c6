package export

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/standings"
)

func TestWriteStandingsXLSX_OneSheetPerGroup(t *testing.T) {
	groups := []standings.Group{
		{Name: "Group A", Rows: []standings.Row{
			{TeamID: "t1", TeamName: "SMA Negeri 1", Position: 1, Played: 1, Won: 1, GoalsFor: 2, GoalsAgainst: 1, GoalDifference: 1, Points: 3},
			{TeamID: "t2", TeamName: "SMA Negeri 2", Position: 2, Played: 1, Lost: 1, GoalsFor: 1, GoalsAgainst: 2, GoalDifference: -1},
		}},
		{Name: "Group B", Rows: []standings.Row{
			{TeamID: "t3", TeamName: "SMK Negeri 1", Position: 1},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStandingsXLSX(&buf, groups))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Group A", "Group B"}, f.GetSheetList())

	rows, err := f.GetRows("Group A")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"Pos", "Team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts"}, rows[0])
	require.Equal(t, []string{"1", "SMA Negeri 1", "1", "1", "0", "0", "2", "1", "1", "3"}, rows[1])
	require.Equal(t, "-1", rows[2][8])

	rows, err = f.GetRows("Group B")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "SMK Negeri 1", rows[1][1])
}

func TestWriteStandingsXLSX_NoGroups(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStandingsXLSX(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Standings"}, f.GetSheetList())
}

func TestSheetName(t *testing.T) {
	require.Equal(t, "Group A", sheetName("  "))
	require.Equal(t, "Pool 12", sheetName("Pool 1/2"))
	require.Len(t, sheetName("A very long group name that exceeds the limit"), maxSheetName)
}

func TestWriteStandingsXLSX_CollidingGroupNames(t *testing.T) {
	long := strings.Repeat("x", maxSheetName)
	groups := []standings.Group{
		{Name: "Group A"},
		{Name: "group a"},
		{Name: long + " one"},
		{Name: long + " two"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStandingsXLSX(&buf, groups))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	want := []string{"Group A", "group a (2)", long, strings.Repeat("x", maxSheetName-4) + " (2)"}
	require.Equal(t, want, f.GetSheetList())
	for _, name := range want {
		require.LessOrEqual(t, utf8.RuneCountInString(name), maxSheetName)
	}
}

func TestSheetName_TruncatesByRune(t *testing.T) {
	name := sheetName(strings.Repeat("a", 30) + "éx")

	require.True(t, utf8.ValidString(name))
	require.Equal(t, strings.Repeat("a", 30)+"é", name)
	require.Equal(t, maxSheetName, utf8.RuneCountInString(name))
}
