package store

import (
	"checkers/game"
	"checkers/gamemaster"
	"checkers/meta"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("snapshot not found")

// Snapshot is the stored form of a game at one version.
type Snapshot struct {
	GameID  string          `json:"game_id"`
	Version int             `json:"version"`
	SavedAt time.Time       `json:"saved_at"`
	State   *game.GameState `json:"state"`
}

// Store keeps the latest snapshot of each game in Redis and fans updates out
// to viewers over pub/sub.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client) *Store { return &Store{rdb: rdb, ttl: meta.SNAPSHOT_TTL} }

// Open connects to the Redis server at url (redis://[user:pass@]host:port/db).
func Open(ctx context.Context, url string) (*Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(rdb), nil
}

func (s *Store) Close() error { return s.rdb.Close() }

func keySnapshot(gameID string) string { return "game:" + gameID }
func keyUpdates(gameID string) string  { return keySnapshot(gameID) + ":updates" }

func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.rdb.Set(ctx, keySnapshot(snap.GameID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save snapshot %s: %w", snap.GameID, err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, gameID string) (Snapshot, error) {
	raw, err := s.rdb.Get(ctx, keySnapshot(gameID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Snapshot{}, fmt.Errorf("load %s: %w", gameID, ErrNotFound)
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("load %s: %w", gameID, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot %s: %w", gameID, err)
	}
	return snap, nil
}

func (s *Store) Publish(ctx context.Context, snap Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.rdb.Publish(ctx, keyUpdates(snap.GameID), raw).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", snap.GameID, err)
	}
	return nil
}

// Subscribe streams the snapshots published for gameID until ctx is done.
// The subscription is live when Subscribe returns.
func (s *Store) Subscribe(ctx context.Context, gameID string) (<-chan Snapshot, error) {
	sub := s.rdb.Subscribe(ctx, keyUpdates(gameID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", gameID, err)
	}

	out := make(chan Snapshot)
	go func() {
		defer close(out)
		defer sub.Close()
		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var snap Snapshot
				if err := json.Unmarshal([]byte(msg.Payload), &snap); err != nil {
					continue
				}
				select {
				case out <- snap:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// FromUpdate turns a game master update into a snapshot.
func FromUpdate(u gamemaster.Update) Snapshot {
	return Snapshot{
		GameID:  u.GameID,
		Version: u.Version,
		SavedAt: time.Now().UTC(),
		State:   u.State,
	}
}
