package memory

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/bestball-live/bestballbot/internal/models"
)

// Repository caches the slow-moving upstream data (league config, player
// directory) between computations. Entries expire by TTL; the clock is
// injected so tests can advance time.
type Repository struct {
	mu    sync.RWMutex
	clock clockwork.Clock

	league        *models.SleeperLeague
	leagueFetched time.Time

	players        map[string]models.SleeperPlayer
	playersFetched time.Time
}

func NewRepository(clock clockwork.Clock) *Repository {
	return &Repository{clock: clock}
}

func (r *Repository) SaveLeague(league *models.SleeperLeague) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.league = league
	r.leagueFetched = r.clock.Now()
}

// GetLeague returns the cached league config, or nil if absent or older
// than ttl.
func (r *Repository) GetLeague(ttl time.Duration) *models.SleeperLeague {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.league == nil || r.clock.Since(r.leagueFetched) > ttl {
		return nil
	}
	return r.league
}

func (r *Repository) SavePlayers(players map[string]models.SleeperPlayer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players = players
	r.playersFetched = r.clock.Now()
}

// GetPlayers returns the cached player directory, or nil if absent or older
// than ttl.
func (r *Repository) GetPlayers(ttl time.Duration) map[string]models.SleeperPlayer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.players == nil || r.clock.Since(r.playersFetched) > ttl {
		return nil
	}
	return r.players
}
