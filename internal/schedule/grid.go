package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// The weekly grid covers the teaching day: hour rows 07:00 through 21:00
// inclusive, day columns Sunday through Saturday.
const (
	gridStartHour = 7
	gridEndHour   = 21
	gridHours     = gridEndHour - gridStartHour + 1
	gridDays      = 7
)

// Grid is the day-by-hour occupancy of a schedule. A slot can hold several
// concurrent sessions; each entry is "<courseID> <kind> <room>".
type Grid struct {
	cells [gridDays][gridHours][]string
}

// Grid places every session of the schedule onto the weekly grid. A session
// shorter than an hour occupies exactly its starting hour row; a session
// running past 21:00 is clipped at the last row.
func (s *Schedule) Grid() *Grid {
	g := &Grid{}
	for _, courseID := range s.order {
		for _, sess := range s.courses[courseID] {
			g.place(courseID, sess)
		}
	}
	return g
}

func (g *Grid) place(courseID string, sess Session) {
	startHour := sess.StartHour
	endHour := sess.endMinutes() / 60
	if startHour == endHour {
		// Sub-hour session: still takes its full starting row.
		endHour++
	}
	entry := fmt.Sprintf("%s %s %s", courseID, sess.Kind, sess.Room)
	for hour := startHour; hour < endHour && hour <= gridEndHour; hour++ {
		slot := hour - gridStartHour
		if slot >= 0 && slot < gridHours {
			g.cells[sess.Day][slot] = append(g.cells[sess.Day][slot], entry)
		}
	}
}

// Entries returns the sessions occupying one day/hour slot.
func (g *Grid) Entries(day time.Weekday, hour int) []string {
	if hour < gridStartHour || hour > gridEndHour {
		return nil
	}
	return g.cells[day][hour-gridStartHour]
}

var gridCellStyle = lipgloss.NewStyle().Padding(0, 1)

// Render draws the weekly grid as a bordered table. Concurrent sessions in
// one slot stack as extra lines inside the cell.
func (s *Schedule) Render() string {
	g := s.Grid()

	headers := []string{"Time"}
	for d := time.Sunday; d <= time.Saturday; d++ {
		headers = append(headers, d.String())
	}

	var rows [][]string
	for hour := gridStartHour; hour <= gridEndHour; hour++ {
		row := []string{fmt.Sprintf("%02d:00", hour)}
		for d := time.Sunday; d <= time.Saturday; d++ {
			row = append(row, strings.Join(g.Entries(d, hour), "\n"))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style { return gridCellStyle }).
		Headers(headers...).
		Rows(rows...)
	return t.String()
}
