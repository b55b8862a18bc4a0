// meta/meta.go
package meta

import "time"

// MAX_TURNS bounds the moves of a self-play game.
const MAX_TURNS = 300

// GAMES_PER_MATCHUP is the default number of games of each experiment matchup.
const GAMES_PER_MATCHUP = 30

// SNAPSHOT_TTL is how long a published game snapshot stays in Redis.
const SNAPSHOT_TTL = 24 * time.Hour

// PUBLISH_TIMEOUT bounds one Redis round trip made while publishing an update.
const PUBLISH_TIMEOUT = 2 * time.Second
