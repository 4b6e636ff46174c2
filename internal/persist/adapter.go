package persist

import (
	"log/slog"

	"github.com/teamflowhq/teamflow/internal/domain"
)

// Adapter binds a Slot to a fixed key and the snapshot codec. It owns
// the failure policy: loads degrade to defaults, saves are logged and
// swallowed. Planner mutations must never fail because storage did.
type Adapter struct {
	slot   Slot
	key    string
	logger *slog.Logger
}

// NewAdapter wraps slot under the given key. An empty key uses
// DefaultKey; a nil logger discards.
func NewAdapter(slot Slot, key string, logger *slog.Logger) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{slot: slot, key: key, logger: logger}
}

// Load restores the last saved snapshot, falling back to the given
// defaults per field. Missing slot, read failure, and undecodable
// payload all degrade to defaults.
func (a *Adapter) Load(defaults domain.Snapshot) domain.Snapshot {
	data, ok, err := a.slot.Load(a.key)
	if err != nil {
		a.logger.Warn("loading snapshot failed, using defaults", "key", a.key, "error", err)
		return defaults.Clone()
	}
	if !ok {
		return defaults.Clone()
	}
	return Decode(data, defaults)
}

// Save writes the snapshot through to the slot. Failures are logged
// at warn and swallowed.
func (a *Adapter) Save(s domain.Snapshot) {
	data, err := Encode(s)
	if err != nil {
		a.logger.Warn("encoding snapshot failed", "key", a.key, "error", err)
		return
	}
	if err := a.slot.Save(a.key, data); err != nil {
		a.logger.Warn("saving snapshot failed", "key", a.key, "error", err)
	}
}
