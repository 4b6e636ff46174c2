// Package layout packs one member's tasks for a single day into
// side-by-side columns so overlapping tasks never collide visually.
package layout

import (
	"sort"

	"github.com/teamflowhq/teamflow/internal/domain"
)

// Placement locates one task in the packed result.
type Placement struct {
	Column  int
	Columns int
}

// Left returns the horizontal offset as a fraction of full width.
func (p Placement) Left() float64 {
	return float64(p.Column) / float64(p.Columns)
}

// Width returns the task width as a fraction of full width.
func (p Placement) Width() float64 {
	return 1 / float64(p.Columns)
}

// Assign partitions tasks into columns by greedy interval
// partitioning: tasks are taken in start-time order (stable on ties)
// and each goes into the leftmost column whose last task has already
// ended, else a new column opens. Every placement reports the total
// column count so widths divide the lane evenly.
func Assign(tasks []domain.Task) map[string]Placement {
	sorted := append([]domain.Task(nil), tasks...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime < sorted[j].StartTime
	})

	// Each column remembers only its most recent task; earlier tasks
	// in a column are guaranteed to have ended before it started.
	type column struct {
		lastEnd float64
		tasks   []string
	}
	var columns []*column

	place := make(map[string]int, len(sorted))
	for _, t := range sorted {
		placed := false
		for i, col := range columns {
			if t.StartTime >= col.lastEnd {
				col.lastEnd = t.End()
				col.tasks = append(col.tasks, t.ID)
				place[t.ID] = i
				placed = true
				break
			}
		}
		if !placed {
			columns = append(columns, &column{lastEnd: t.End(), tasks: []string{t.ID}})
			place[t.ID] = len(columns) - 1
		}
	}

	out := make(map[string]Placement, len(place))
	for id, col := range place {
		out[id] = Placement{Column: col, Columns: len(columns)}
	}
	return out
}
