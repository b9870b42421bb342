package models

// Raw payloads from the Sleeper API. Only the fields the service layer reads
// are modeled; Sleeper returns much more.

type LeagueResponse struct {
	LeagueID     string         `json:"league_id"`
	Name         string         `json:"name"`
	Season       string         `json:"season"`
	SeasonType   string         `json:"season_type"`
	Sport        string         `json:"sport"`
	Status       string         `json:"status"`
	TotalRosters int            `json:"total_rosters"`
	DraftID      string         `json:"draft_id"`
	Settings     LeagueSettings `json:"settings"`
}

type LeagueSettings struct {
	NumTeams         int `json:"num_teams"`
	PlayoffTeams     int `json:"playoff_teams"`
	PlayoffWeekStart int `json:"playoff_week_start"`
}

type Roster struct {
	RosterID int            `json:"roster_id"`
	OwnerID  string         `json:"owner_id"`
	Players  []string       `json:"players"`
	Starters []string       `json:"starters"`
	Settings RosterSettings `json:"settings"`
}

// RosterSettings carries the season record. Sleeper splits point totals into
// an integer part and a hundredths part.
type RosterSettings struct {
	Wins               int `json:"wins"`
	Losses             int `json:"losses"`
	Ties               int `json:"ties"`
	Fpts               int `json:"fpts"`
	FptsDecimal        int `json:"fpts_decimal"`
	FptsAgainst        int `json:"fpts_against"`
	FptsAgainstDecimal int `json:"fpts_against_decimal"`
}

// Points returns the roster's points scored as a single float.
func (s RosterSettings) Points() float64 {
	return float64(s.Fpts) + float64(s.FptsDecimal)/100
}

// PointsAgainst returns the roster's points allowed as a single float.
func (s RosterSettings) PointsAgainst() float64 {
	return float64(s.FptsAgainst) + float64(s.FptsAgainstDecimal)/100
}

type LeagueUser struct {
	UserID      string       `json:"user_id"`
	DisplayName string       `json:"display_name"`
	Metadata    UserMetadata `json:"metadata"`
}

type UserMetadata struct {
	TeamName string `json:"team_name"`
}

// MatchupEntry is one roster's side of a weekly matchup. Entries sharing a
// MatchupID played each other.
type MatchupEntry struct {
	RosterID  int     `json:"roster_id"`
	MatchupID int     `json:"matchup_id"`
	Points    float64 `json:"points"`
}

type NFLState struct {
	Week        int    `json:"week"`
	DisplayWeek int    `json:"display_week"`
	Season      string `json:"season"`
	SeasonType  string `json:"season_type"`
}

// TradedPickResponse is one future draft pick that changed hands. RosterID is
// the roster the pick originally belonged to, OwnerID the roster holding it
// now.
type TradedPickResponse struct {
	Season          string `json:"season"`
	Round           int    `json:"round"`
	RosterID        int    `json:"roster_id"`
	OwnerID         int    `json:"owner_id"`
	PreviousOwnerID int    `json:"previous_owner_id"`
}
