package store

import (
	"checkers/gamemaster"
	"checkers/meta"
	"context"

	"github.com/rs/zerolog/log"
)

// Publisher mirrors every game master update into the store.
type Publisher struct {
	store   *Store
	publish bool
}

// NewPublisher saves each update as the game's snapshot and, when publish is
// set, broadcasts it to subscribers.
func NewPublisher(s *Store, publish bool) *Publisher {
	return &Publisher{store: s, publish: publish}
}

func (p *Publisher) Notify(u gamemaster.Update) {
	ctx, cancel := context.WithTimeout(context.Background(), meta.PUBLISH_TIMEOUT)
	defer cancel()

	snap := FromUpdate(u)
	if err := p.store.Save(ctx, snap); err != nil {
		log.Warn().Err(err).Str("game", u.GameID).Int("version", u.Version).Msg("snapshot not saved")
		return
	}
	if !p.publish {
		return
	}
	if err := p.store.Publish(ctx, snap); err != nil {
		log.Warn().Err(err).Str("game", u.GameID).Int("version", u.Version).Msg("update not published")
	}
}

var _ gamemaster.Listener = (*Publisher)(nil)
