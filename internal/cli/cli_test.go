package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamflowhq/teamflow/internal/domain"
	"github.com/teamflowhq/teamflow/internal/persist"
	"github.com/teamflowhq/teamflow/internal/store"
)

func testApp(t *testing.T) *App {
	t.Helper()
	adapter := persist.NewAdapter(persist.NewMemorySlot(), "", nil)
	return &App{Store: store.OpenWith(adapter, domain.Snapshot{})}
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1", 1},
		{"5", 5},
		{"Mon", 1},
		{"fri", 5},
		{"TUE", 2},
	}
	for _, tt := range tests {
		got, err := parseDay(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	for _, bad := range []string{"", "0", "6", "Sunday", "monday"} {
		_, err := parseDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"9:00", 9},
		{"09:15", 9.25},
		{"14:30", 14.5},
		{"9.25", 9.25},
		{"9", 9},
	}
	for _, tt := range tests {
		got, err := parseClock(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	for _, bad := range []string{"", "nine", "9:xx"} {
		_, err := parseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestResolveMember(t *testing.T) {
	app := testApp(t)
	jane, err := app.Store.AddMember("Jane Doe", domain.RoleStaff)
	require.NoError(t, err)
	mike, err := app.Store.AddMember("Mike Ross", domain.RoleSenior)
	require.NoError(t, err)

	got, err := resolveMember(app, jane.ID)
	require.NoError(t, err)
	assert.Equal(t, jane.ID, got.ID)

	got, err = resolveMember(app, "Mike Ross")
	require.NoError(t, err)
	assert.Equal(t, mike.ID, got.ID)

	got, err = resolveMember(app, jane.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, jane.ID, got.ID, "unambiguous id prefix resolves")

	_, err = resolveMember(app, "nobody")
	assert.Error(t, err)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "12345678", shortID("1234567890ab"))
	assert.Equal(t, "abc", shortID("abc"))
}

func TestNewRootCmd_RegistersCommands(t *testing.T) {
	root := NewRootCmd(testApp(t))

	want := []string{"plan", "member", "task", "todo", "engagement", "export"}
	for _, name := range want {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "missing subcommand %s", name)
	}
}
