package match

import (
	"sort"
	"time"
)

const DefaultPageSize = 5

// Filter narrows a sport's match list. Date is a calendar day in Location.
type Filter struct {
	TeamID   string
	Date     time.Time
	HasDate  bool
	Location *time.Location
}

func (f Filter) Apply(items []Match) []Match {
	loc := f.Location
	if loc == nil {
		loc = time.UTC
	}
	y, mo, d := f.Date.Date()

	out := make([]Match, 0, len(items))
	for _, m := range items {
		if f.TeamID != "" && !m.Involves(f.TeamID) {
			continue
		}
		if f.HasDate {
			my, mm, md := m.StartsAt.In(loc).Date()
			if my != y || mm != mo || md != d {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}

// SortByKickoff orders matches by start time then ID, in place.
func SortByKickoff(items []Match) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].StartsAt.Equal(items[j].StartsAt) {
			return items[i].StartsAt.Before(items[j].StartsAt)
		}
		return items[i].ID < items[j].ID
	})
}

// Page is one slice of a paginated list. Number is 1-based.
type Page struct {
	Items      []Match
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

// Paginate clamps page into range; an empty list yields one empty page.
func Paginate(items []Match, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Page{
		Items:      append([]Match(nil), items[start:end]...),
		Number:     page,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
