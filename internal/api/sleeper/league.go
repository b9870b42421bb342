package sleeper

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func (a *API) GetLeagueMetadata() (*models.LeagueMetadata, error) {
	var league models.LeagueResponse
	endpoint := fmt.Sprintf("/league/%s", a.client.Config.LeagueID)

	if err := a.client.Get(endpoint, &league); err != nil {
		return nil, fmt.Errorf("fetching league metadata: %w", err)
	}

	var state models.NFLState
	if err := a.client.Get("/state/nfl", &state); err != nil {
		return nil, fmt.Errorf("fetching nfl state: %w", err)
	}

	week := state.DisplayWeek
	if week <= 0 {
		week = state.Week
	}

	metadata := &models.LeagueMetadata{
		LeagueID:    league.LeagueID,
		Name:        league.Name,
		Season:      league.Season,
		SeasonType:  league.SeasonType,
		CurrentWeek: week,
		TeamCount:   league.TotalRosters,
		InSeason:    league.Status == "in_season",
		LastUpdated: time.Now(),
	}

	return metadata, nil
}

func (a *API) GetStandings() ([]models.TeamStanding, error) {
	rosters, err := a.getRosters()
	if err != nil {
		return nil, fmt.Errorf("fetching standings: %w", err)
	}

	users, err := a.getUsers()
	if err != nil {
		return nil, fmt.Errorf("fetching standings: %w", err)
	}

	standings := make([]models.TeamStanding, len(rosters))
	for i, roster := range rosters {
		owner := users[roster.OwnerID]
		standings[i] = models.TeamStanding{
			RosterID:      roster.RosterID,
			TeamName:      displayTeamName(owner),
			OwnerName:     owner.DisplayName,
			Wins:          roster.Settings.Wins,
			Losses:        roster.Settings.Losses,
			Ties:          roster.Settings.Ties,
			PointsFor:     roster.Settings.Points(),
			PointsAgainst: roster.Settings.PointsAgainst(),
			WinPercentage: winPercentage(roster.Settings),
		}
	}

	sort.Slice(standings, func(i, j int) bool {
		if standings[i].WinPercentage != standings[j].WinPercentage {
			return standings[i].WinPercentage > standings[j].WinPercentage
		}
		return standings[i].PointsFor > standings[j].PointsFor
	})

	for i := range standings {
		standings[i].Rank = i + 1
	}

	return standings, nil
}

// GetMatchups pairs the week's matchup entries into head-to-head games. The
// lower roster ID in each pair is treated as home. Bye-week rosters, which
// carry a null matchup id, and entries without a partner are skipped.
func (a *API) GetMatchups(week int) ([]models.Matchup, error) {
	var entries []models.MatchupEntry
	endpoint := fmt.Sprintf("/league/%s/matchups/%d", a.client.Config.LeagueID, week)

	if err := a.client.Get(endpoint, &entries); err != nil {
		return nil, fmt.Errorf("fetching matchups: %w", err)
	}

	names, err := a.teamNames()
	if err != nil {
		return nil, fmt.Errorf("fetching matchups: %w", err)
	}

	byMatchup := make(map[int][]models.MatchupEntry)
	for _, entry := range entries {
		// A null matchup id decodes to 0. Grouping those would pair two
		// bye rosters into a game that never happens.
		if entry.MatchupID == 0 {
			continue
		}
		byMatchup[entry.MatchupID] = append(byMatchup[entry.MatchupID], entry)
	}

	ids := make([]int, 0, len(byMatchup))
	for id := range byMatchup {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var matchups []models.Matchup
	for _, id := range ids {
		pair := byMatchup[id]
		if len(pair) < 2 {
			continue
		}
		sort.Slice(pair, func(i, j int) bool { return pair[i].RosterID < pair[j].RosterID })

		home, away := pair[0], pair[1]
		matchups = append(matchups, models.Matchup{
			MatchupID:  id,
			HomeTeamID: home.RosterID,
			AwayTeamID: away.RosterID,
			HomeTeam:   names[home.RosterID],
			AwayTeam:   names[away.RosterID],
			HomeScore:  math.Round(home.Points*100) / 100,
			AwayScore:  math.Round(away.Points*100) / 100,
		})
	}

	return matchups, nil
}

func (a *API) GetTradedPicks() ([]models.TradedPick, error) {
	var picks []models.TradedPickResponse
	endpoint := fmt.Sprintf("/league/%s/traded_picks", a.client.Config.LeagueID)

	if err := a.client.Get(endpoint, &picks); err != nil {
		return nil, fmt.Errorf("fetching traded picks: %w", err)
	}

	traded := make([]models.TradedPick, len(picks))
	for i, pick := range picks {
		traded[i] = models.TradedPick{
			Season:        pick.Season,
			Round:         pick.Round,
			OriginalOwner: pick.RosterID,
			CurrentOwner:  pick.OwnerID,
		}
	}

	return traded, nil
}

// FindTeam fuzzy-matches name against the league's team names and returns
// the closest team's standing row.
func (a *API) FindTeam(name string) (models.TeamStanding, error) {
	standings, err := a.GetStandings()
	if err != nil {
		return models.TeamStanding{}, err
	}

	bestIdx := -1
	bestScore := -1.0
	threshold := 0.6

	for i, team := range standings {
		distance := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(team.TeamName))
		maxLen := float64(max(len(name), len(team.TeamName)))
		similarity := 1 - float64(distance)/maxLen

		if similarity > threshold && similarity > bestScore {
			bestScore = similarity
			bestIdx = i
		}
	}

	if bestIdx == -1 {
		return models.TeamStanding{}, fmt.Errorf("team not found: %s", name)
	}

	return standings[bestIdx], nil
}

func (a *API) getRosters() ([]models.Roster, error) {
	var rosters []models.Roster
	endpoint := fmt.Sprintf("/league/%s/rosters", a.client.Config.LeagueID)

	if err := a.client.Get(endpoint, &rosters); err != nil {
		return nil, fmt.Errorf("fetching rosters: %w", err)
	}

	return rosters, nil
}

func (a *API) getUsers() (map[string]models.LeagueUser, error) {
	var users []models.LeagueUser
	endpoint := fmt.Sprintf("/league/%s/users", a.client.Config.LeagueID)

	if err := a.client.Get(endpoint, &users); err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}

	byID := make(map[string]models.LeagueUser, len(users))
	for _, user := range users {
		byID[user.UserID] = user
	}

	return byID, nil
}

func (a *API) teamNames() (map[int]string, error) {
	rosters, err := a.getRosters()
	if err != nil {
		return nil, err
	}

	users, err := a.getUsers()
	if err != nil {
		return nil, err
	}

	names := make(map[int]string, len(rosters))
	for _, roster := range rosters {
		names[roster.RosterID] = displayTeamName(users[roster.OwnerID])
	}

	return names, nil
}

// displayTeamName prefers the owner's custom team name, then their Sleeper
// display name.
func displayTeamName(user models.LeagueUser) string {
	if user.Metadata.TeamName != "" {
		return user.Metadata.TeamName
	}
	if user.DisplayName != "" {
		return user.DisplayName
	}
	return "Unknown"
}

// winPercentage counts a tie as half a win.
func winPercentage(s models.RosterSettings) float64 {
	games := s.Wins + s.Losses + s.Ties
	if games == 0 {
		return 0
	}
	return (float64(s.Wins) + 0.5*float64(s.Ties)) / float64(games)
}
