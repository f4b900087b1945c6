package export

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/standings"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	emptySheetName = "Standings"
	maxSheetName   = 31
)

var standingsHeader = []any{"Pos", "Team", "P", "W", "D", "L", "GF", "GA", "GD", "Pts"}

// WriteStandingsXLSX renders one worksheet per group in table order.
func WriteStandingsXLSX(w io.Writer, groups []standings.Group) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	if len(groups) == 0 {
		if err := f.SetSheetName(defaultSheet, emptySheetName); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
		return writeSheet(f, w, emptySheetName, nil, headerStyle)
	}

	used := make(map[string]bool, len(groups))
	for i, g := range groups {
		name := uniqueSheetName(sheetName(g.Name), used)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}
		if err := fillSheet(f, name, g.Rows, headerStyle); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, w io.Writer, name string, rows []standings.Row, headerStyle int) error {
	if err := fillSheet(f, name, rows, headerStyle); err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func fillSheet(f *excelize.File, sheet string, rows []standings.Row, headerStyle int) error {
	header := append([]any(nil), standingsHeader...)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header of %q: %w", sheet, err)
	}
	if err := f.SetCellStyle(sheet, "A1", "J1", headerStyle); err != nil {
		return fmt.Errorf("style header of %q: %w", sheet, err)
	}
	if err := f.SetColWidth(sheet, "B", "B", 28); err != nil {
		return fmt.Errorf("size team column of %q: %w", sheet, err)
	}

	for i, r := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		cells := []any{r.Position, r.TeamName, r.Played, r.Won, r.Drawn, r.Lost, r.GoalsFor, r.GoalsAgainst, r.GoalDifference, r.Points}
		if err := f.SetSheetRow(sheet, axis, &cells); err != nil {
			return fmt.Errorf("write row %d of %q: %w", i+1, sheet, err)
		}
	}
	return nil
}

// sheetName strips characters worksheet names may not carry.
func sheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" {
		name = standings.DefaultGroupLabel
	}
	return truncateRunes(name, maxSheetName)
}

// uniqueSheetName appends " (n)" until name differs, case-insensitively, from every used name.
func uniqueSheetName(name string, used map[string]bool) string {
	candidate := name
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate = truncateRunes(name, maxSheetName-utf8.RuneCountInString(suffix)) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit])
}
