package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamflowhq/teamflow/internal/domain"
	"github.com/teamflowhq/teamflow/internal/drag"
	"github.com/teamflowhq/teamflow/internal/grid"
	"github.com/teamflowhq/teamflow/internal/persist"
	"github.com/teamflowhq/teamflow/internal/store"
)

func testModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	adapter := persist.NewAdapter(persist.NewMemorySlot(), "", nil)
	s := store.OpenWith(adapter, domain.Snapshot{})
	m := New(s, grid.Default())
	m.mode = dayView
	m.day = 1
	m.width = 100
	m.height = 40
	return m, s
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab  ", pad("ab", 4))
	assert.Equal(t, "abc…", pad("abcdef", 4))
	assert.Equal(t, "    ", pad("", 4))
	assert.Equal(t, "héllo ", pad("héllo", 6), "rune width, not byte width")
}

func TestHitTest(t *testing.T) {
	m, s := testModel(t)
	mem, err := s.AddMember("Jane", domain.RoleStaff)
	require.NoError(t, err)
	task, err := s.SaveTask(domain.Task{Name: "Recon", MemberID: mem.ID, Day: 1, StartTime: 9, Duration: 1})
	require.NoError(t, err)

	f := m.frame()
	require.Len(t, f.members, 1)

	// 09:00 with a 08:00 grid start is row 4; the grid body begins
	// below the two header rows and right of the time gutter.
	bodyX := gutterWidth
	bodyY := headerRows + 4

	id, mode, ok := m.hitTest(bodyX, bodyY)
	require.True(t, ok)
	assert.Equal(t, task.ID, id)
	assert.Equal(t, drag.Move, mode)

	// The 1h task spans rows 4-7; its last row is the resize handle.
	id, mode, ok = m.hitTest(bodyX, headerRows+7)
	require.True(t, ok)
	assert.Equal(t, task.ID, id)
	assert.Equal(t, drag.Resize, mode)

	_, _, ok = m.hitTest(bodyX, headerRows+8)
	assert.False(t, ok, "row after the task is empty")

	_, _, ok = m.hitTest(bodyX, 0)
	assert.False(t, ok, "header rows are not part of the grid")

	_, _, ok = m.hitTest(0, bodyY)
	assert.False(t, ok, "the time gutter is not part of the grid")
}

func TestHitTest_RespectsColumnSplit(t *testing.T) {
	m, s := testModel(t)
	mem, err := s.AddMember("Jane", domain.RoleStaff)
	require.NoError(t, err)
	a, err := s.SaveTask(domain.Task{Name: "a", MemberID: mem.ID, Day: 1, StartTime: 9, Duration: 2})
	require.NoError(t, err)
	b, err := s.SaveTask(domain.Task{Name: "b", MemberID: mem.ID, Day: 1, StartTime: 10, Duration: 2})
	require.NoError(t, err)

	f := m.frame()
	row := headerRows + 8 // 10:00, where both tasks overlap

	id, _, ok := m.hitTest(gutterWidth, row)
	require.True(t, ok)
	assert.Equal(t, a.ID, id, "left half belongs to the first column")

	id, _, ok = m.hitTest(gutterWidth+f.colWidth/2, row)
	require.True(t, ok)
	assert.Equal(t, b.ID, id, "right half belongs to the second column")
}
