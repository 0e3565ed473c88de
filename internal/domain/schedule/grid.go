package schedule

import (
	"sort"
	"strconv"
	"strings"
)

// Grid is the time × day projection of the schedule: one column per unique
// opening time across all days, one row per day in source order. A cell holds
// the first slot of its row's day that opens exactly at the column time.
type Grid struct {
	Times []string
	Rows  []GridRow
}

type GridRow struct {
	Day   Day
	Cells []*Slot // parallel to Times; nil means no showing at that time
}

// BuildGrid is a pure projection, recomputed fresh from the snapshot each
// time it is needed. Opening times are deduplicated by exact string equality
// and sorted by seconds since midnight. When two slots of one day share an
// opening time, the first in source order occupies the cell.
func BuildGrid(days []Day) Grid {
	seen := make(map[string]struct{})
	var times []string
	for _, d := range days {
		for _, s := range d.Slots {
			if _, ok := seen[s.OpensAt]; ok {
				continue
			}
			seen[s.OpensAt] = struct{}{}
			times = append(times, s.OpensAt)
		}
	}
	sort.SliceStable(times, func(i, j int) bool {
		return SecondsSinceMidnight(times[i]) < SecondsSinceMidnight(times[j])
	})

	rows := make([]GridRow, 0, len(days))
	for _, d := range days {
		cells := make([]*Slot, len(times))
		for i, t := range times {
			for j := range d.Slots {
				if d.Slots[j].OpensAt == t {
					cells[i] = &d.Slots[j]
					break
				}
			}
		}
		rows = append(rows, GridRow{Day: d, Cells: cells})
	}

	return Grid{Times: times, Rows: rows}
}

// SecondsSinceMidnight converts "HH:MM:SS" (seconds optional) to the sort
// key h*3600+m*60+s. Malformed components count as zero.
func SecondsSinceMidnight(hms string) int {
	parts := strings.Split(hms, ":")
	mult := [...]int{3600, 60, 1}
	total := 0
	for i, p := range parts {
		if i >= len(mult) {
			break
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			continue
		}
		total += n * mult[i]
	}
	return total
}
