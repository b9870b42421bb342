package memory

import (
	"sync"
	"time"

	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/models"
)

// Repository caches league snapshots between Sleeper fetches. Staleness is
// the service layer's call; the repository just remembers when each snapshot
// landed.
type Repository struct {
	mu sync.RWMutex

	metadata *models.LeagueMetadata

	standings   []models.TeamStanding
	standingsAt time.Time

	tradedPicks   []models.TradedPick
	tradedPicksAt time.Time
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveMetadata(metadata *models.LeagueMetadata) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metadata = metadata
}

func (r *Repository) GetMetadata() *models.LeagueMetadata {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.metadata
}

func (r *Repository) SaveStandings(standings []models.TeamStanding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.standings = standings
	r.standingsAt = time.Now()
}

func (r *Repository) GetStandings() ([]models.TeamStanding, time.Time) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.standings, r.standingsAt
}

func (r *Repository) SaveTradedPicks(picks []models.TradedPick) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tradedPicks = picks
	r.tradedPicksAt = time.Now()
}

func (r *Repository) GetTradedPicks() ([]models.TradedPick, time.Time) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tradedPicks, r.tradedPicksAt
}
