// Package favorites keeps the user's favorited players in the key-value
// store as a JSON array of full player snapshots.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/preston-bernstein/nba-stats-viewer/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-viewer/internal/kvstore"
	"github.com/preston-bernstein/nba-stats-viewer/internal/logging"
)

// StorageKey is the well-known key the favorites list lives under.
const StorageKey = "nba_favorites"

// Set is the favorited ids of one refresh.
type Set map[players.PlayerID]struct{}

// NewSet indexes a favorites list by id.
func NewSet(list []players.Player) Set {
	set := make(Set, len(list))
	for _, p := range list {
		set[p.ID] = struct{}{}
	}
	return set
}

// Contains reports whether id is favorited.
func (s Set) Contains(id players.PlayerID) bool {
	_, ok := s[id]
	return ok
}

// Store reads and writes the persisted favorites list.
type Store struct {
	kv     kvstore.Store
	logger *slog.Logger
	mu     sync.Mutex
}

// NewStore constructs a Store over kv.
func NewStore(kv kvstore.Store, logger *slog.Logger) *Store {
	return &Store{kv: kv, logger: logger}
}

// List returns the stored snapshots in insertion order. Missing, unreadable
// or corrupt data reads as an empty list; individual entries that fail to
// decode are skipped.
func (s *Store) List(ctx context.Context) []players.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(ctx)
}

// Load returns the set of favorited ids.
func (s *Store) Load(ctx context.Context) Set {
	return NewSet(s.List(ctx))
}

// Toggle removes the player when already favorited and returns false;
// otherwise it appends a snapshot of the full record and returns true.
// The whole list is written back either way.
func (s *Store) Toggle(ctx context.Context, p players.Player) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.read(ctx)
	if idx := indexOf(list, p.ID); idx >= 0 {
		list = append(list[:idx], list[idx+1:]...)
		return false, s.write(ctx, list)
	}
	list = append(list, p)
	return true, s.write(ctx, list)
}

// Remove drops a player by id. Removing an id that is not present still
// rewrites the list.
func (s *Store) Remove(ctx context.Context, id players.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.read(ctx)
	kept := list[:0]
	for _, p := range list {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.write(ctx, kept)
}

func (s *Store) read(ctx context.Context) []players.Player {
	raw, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			logging.Warn(s.logger, "favorites unreadable, treating as empty", "error", err)
		}
		return []players.Player{}
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		logging.Warn(s.logger, "favorites corrupt, treating as empty", "error", err)
		return []players.Player{}
	}

	list := make([]players.Player, 0, len(elems))
	for i, elem := range elems {
		var p players.Player
		if err := json.Unmarshal(elem, &p); err != nil {
			logging.Warn(s.logger, "skipping corrupt favorite", "index", i, "error", err)
			continue
		}
		list = append(list, p)
	}
	return list
}

func (s *Store) write(ctx context.Context, list []players.Player) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	if err := kvstore.Set(ctx, s.kv, StorageKey, data); err != nil {
		logging.Error(s.logger, "favorites write failed", err, logging.FieldCount, len(list))
		return err
	}
	return nil
}

func indexOf(list []players.Player, id players.PlayerID) int {
	for i, p := range list {
		if p.ID == id {
			return i
		}
	}
	return -1
}
