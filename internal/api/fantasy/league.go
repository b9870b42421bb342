package fantasy

import (
	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/api/sleeper"
	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/models"
)

// API is the platform-neutral face of the league data provider. The service
// layer talks to this so the Sleeper specifics stay in one package.
type API struct {
	sleeperAPI *sleeper.API
}

func NewAPI(sleeperAPI *sleeper.API) *API {
	return &API{sleeperAPI: sleeperAPI}
}

func (a *API) GetLeagueMetadata() (*models.LeagueMetadata, error) {
	return a.sleeperAPI.GetLeagueMetadata()
}

func (a *API) GetStandings() ([]models.TeamStanding, error) {
	return a.sleeperAPI.GetStandings()
}

func (a *API) GetMatchups(week int) ([]models.Matchup, error) {
	return a.sleeperAPI.GetMatchups(week)
}

func (a *API) GetTradedPicks() ([]models.TradedPick, error) {
	return a.sleeperAPI.GetTradedPicks()
}

func (a *API) FindTeam(name string) (models.TeamStanding, error) {
	return a.sleeperAPI.FindTeam(name)
}
