package persist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamflowhq/teamflow/internal/domain"
)

func sample() domain.Snapshot {
	return domain.Snapshot{
		Members: []domain.Member{
			{ID: "m1", Name: "Jane Doe", Role: domain.RoleStaff},
		},
		Tasks: []domain.Task{
			{ID: "t1", Name: "Cash Recon", Area: "Assets", Remarks: "check subledger",
				MemberID: "m1", Day: 2, StartTime: 9.25, Duration: 1.5},
		},
		Engagement: domain.Engagement{Title: "ABC Corp Annual Audit", Notes: "revenue recognition"},
		Todos: []domain.Todo{
			{ID: "td1", Text: "Send PBC list", Completed: true, MemberID: "m1"},
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := sample()

	data, err := Encode(want)
	require.NoError(t, err)

	got := Decode(data, domain.Snapshot{})
	assert.Equal(t, want, got)
}

func TestDecode_UndecodableYieldsDefaults(t *testing.T) {
	defaults := domain.DefaultSnapshot()

	for _, data := range [][]byte{
		nil,
		[]byte("not json at all"),
		[]byte(`[1,2,3]`),
	} {
		got := Decode(data, defaults)
		assert.Equal(t, defaults, got, "payload %q", data)
	}
}

func TestDecode_PerFieldFallback(t *testing.T) {
	defaults := domain.DefaultSnapshot()

	t.Run("absent field keeps default", func(t *testing.T) {
		got := Decode([]byte(`{"members":[]}`), defaults)
		assert.Equal(t, defaults.Tasks, got.Tasks)
		assert.Equal(t, defaults.Engagement, got.Engagement)
		assert.Equal(t, defaults.Todos, got.Todos)
	})

	t.Run("null field keeps default", func(t *testing.T) {
		got := Decode([]byte(`{"members":null,"todos":null}`), defaults)
		assert.Equal(t, defaults.Members, got.Members)
		assert.Equal(t, defaults.Todos, got.Todos)
	})

	t.Run("empty array overrides default", func(t *testing.T) {
		got := Decode([]byte(`{"members":[],"tasks":[],"todos":[]}`), defaults)
		assert.Empty(t, got.Members, "a deliberately emptied list must stay empty")
		assert.Empty(t, got.Tasks)
		assert.Empty(t, got.Todos)
	})

	t.Run("bad field falls back alone", func(t *testing.T) {
		got := Decode([]byte(`{"members":"oops","engagement":{"title":"XYZ","notes":""}}`), defaults)
		assert.Equal(t, defaults.Members, got.Members)
		assert.Equal(t, "XYZ", got.Engagement.Title)
	})
}

func TestDecode_DefaultsAreNotAliased(t *testing.T) {
	defaults := domain.DefaultSnapshot()
	got := Decode(nil, defaults)

	got.Members[0].Name = "mutated"
	assert.NotEqual(t, "mutated", defaults.Members[0].Name)
}

func TestAdapter_LoadFallbacks(t *testing.T) {
	defaults := domain.DefaultSnapshot()

	t.Run("empty slot", func(t *testing.T) {
		a := NewAdapter(NewMemorySlot(), "", nil)
		assert.Equal(t, defaults, a.Load(defaults))
	})

	t.Run("slot read failure", func(t *testing.T) {
		slot := NewMemorySlot()
		require.NoError(t, slot.Save(DefaultKey, []byte(`{}`)))
		a := NewAdapter(failingSlot{slot}, "", nil)
		assert.Equal(t, defaults, a.Load(defaults))
	})

	t.Run("corrupt payload", func(t *testing.T) {
		slot := NewMemorySlot()
		require.NoError(t, slot.Save(DefaultKey, []byte("garbage")))
		a := NewAdapter(slot, "", nil)
		assert.Equal(t, defaults, a.Load(defaults))
	})
}

func TestAdapter_SaveLoadRoundTrip(t *testing.T) {
	slot := NewMemorySlot()
	a := NewAdapter(slot, "custom_key", nil)

	want := sample()
	a.Save(want)

	_, ok, err := slot.Load("custom_key")
	require.NoError(t, err)
	require.True(t, ok, "adapter must write under its configured key")

	assert.Equal(t, want, a.Load(domain.Snapshot{}))
}

// failingSlot errors on read, to exercise the adapter's degrade path.
type failingSlot struct{ Slot }

func (failingSlot) Load(string) ([]byte, bool, error) {
	return nil, false, assert.AnError
}
