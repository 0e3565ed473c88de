package readmodel

import (
	"expo-gateway/internal/domain/schedule"

	"github.com/jinzhu/copier"
)

// ScheduleRM is the landing-view read model: the event snapshot plus its
// grid projection. Event fields keep the backend's Serbian names so the
// front-end contract stays unchanged.
type ScheduleRM struct {
	Event EventRM `json:"event"`
	Grid  GridRM  `json:"grid"`
}

type EventRM struct {
	ID                int64   `json:"manifestacijaID"`
	Name              string  `json:"naziv"`
	City              string  `json:"grad"`
	Venue             string  `json:"lokacija"`
	StartDate         string  `json:"datumPocetka"`
	EndDate           string  `json:"datumZavrsetka"`
	Description       string  `json:"dodatneInfo"`
	MaxVisitorsPerDay int     `json:"maxPosetilacaPoDanu"`
	Days              []DayRM `json:"expoDani"`
}

type DayRM struct {
	ID        int64    `json:"expoDanID"`
	Date      string   `json:"datum"`
	Theme     string   `json:"tema"`
	SeatsLeft int      `json:"slobodnaMesta"`
	Slots     []SlotRM `json:"izlozbe"`
}

type SlotRM struct {
	ID       int64  `json:"izlozbaID"`
	Artist   string `json:"umetnik"`
	OpensAt  string `json:"vremeOtvaranja"`
	ClosesAt string `json:"vremeZatvaranja"`
}

type GridRM struct {
	Times []string    `json:"times"`
	Rows  []GridRowRM `json:"rows"`
}

type GridRowRM struct {
	DayID int64         `json:"expoDanID"`
	Date  string        `json:"datum"`
	Theme string        `json:"tema"`
	Cells []*GridCellRM `json:"cells"`
}

type GridCellRM struct {
	SlotID   int64  `json:"izlozbaID"`
	Artist   string `json:"umetnik"`
	OpensAt  string `json:"vremeOtvaranja"`
	ClosesAt string `json:"vremeZatvaranja"`
}

func NewScheduleRM(info *schedule.EventInfo, grid schedule.Grid) (*ScheduleRM, error) {
	var event EventRM
	if err := copier.Copy(&event, info); err != nil {
		return nil, err
	}

	rows := make([]GridRowRM, 0, len(grid.Rows))
	for _, row := range grid.Rows {
		cells := make([]*GridCellRM, len(row.Cells))
		for i, cell := range row.Cells {
			if cell == nil {
				continue
			}
			cells[i] = &GridCellRM{
				SlotID:   cell.ID,
				Artist:   cell.Artist,
				OpensAt:  cell.OpensAt,
				ClosesAt: cell.ClosesAt,
			}
		}
		rows = append(rows, GridRowRM{
			DayID: row.Day.ID,
			Date:  row.Day.Date,
			Theme: row.Day.Theme,
			Cells: cells,
		})
	}

	return &ScheduleRM{
		Event: event,
		Grid:  GridRM{Times: grid.Times, Rows: rows},
	}, nil
}
