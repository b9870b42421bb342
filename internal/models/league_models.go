package models

import "time"

type LeagueMetadata struct {
	LeagueID    string    `json:"league_id"`
	Name        string    `json:"name"`
	Season      string    `json:"season"`
	SeasonType  string    `json:"season_type"`
	CurrentWeek int       `json:"current_week"`
	TeamCount   int       `json:"team_count"`
	InSeason    bool      `json:"in_season"`
	LastUpdated time.Time `json:"last_updated"`
}

type TeamStanding struct {
	Rank          int     `json:"rank"`
	RosterID      int     `json:"roster_id"`
	TeamName      string  `json:"team_name"`
	OwnerName     string  `json:"owner_name"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
	WinPercentage float64 `json:"win_percentage"`
}

type Matchup struct {
	MatchupID  int     `json:"matchup_id"`
	HomeTeamID int     `json:"home_team_id"`
	AwayTeamID int     `json:"away_team_id"`
	HomeTeam   string  `json:"home_team"`
	AwayTeam   string  `json:"away_team"`
	HomeScore  float64 `json:"home_score"`
	AwayScore  float64 `json:"away_score"`
}

type Trophy struct {
	Category string  `json:"category"`
	Team     string  `json:"team"`
	Value    float64 `json:"value"`
}

type WeeklyReport struct {
	Week     int       `json:"week"`
	Matchups []Matchup `json:"matchups"`
	Trophies []Trophy  `json:"trophies"`
}

type CloseGame struct {
	HomeTeam  string  `json:"home_team"`
	AwayTeam  string  `json:"away_team"`
	HomeScore float64 `json:"home_score"`
	AwayScore float64 `json:"away_score"`
	Margin    float64 `json:"margin"`
}

// TradedPick is a future draft pick held by a roster other than the one it
// started with.
type TradedPick struct {
	Season        string `json:"season"`
	Round         int    `json:"round"`
	OriginalOwner int    `json:"original_owner"`
	CurrentOwner  int    `json:"current_owner"`
}

// TeamValue scores a franchise's long-term outlook: current roster strength
// plus the draft capital it holds.
type TeamValue struct {
	Rank         int     `json:"rank"`
	RosterID     int     `json:"roster_id"`
	TeamName     string  `json:"team_name"`
	RosterScore  float64 `json:"roster_score"`
	DraftCapital float64 `json:"draft_capital"`
	TotalValue   float64 `json:"total_value"`
}

type PowerRanking struct {
	Rank         int     `json:"rank"`
	RosterID     int     `json:"roster_id"`
	TeamName     string  `json:"team_name"`
	Score        float64 `json:"score"`
	ExpectedWins float64 `json:"expected_wins"`
	Luck         float64 `json:"luck"`
}

// LotteryOddsEntry is one slot of the published odds board. Weight is the
// raw table value; Odds and Percent are rounded for display.
type LotteryOddsEntry struct {
	Slot     int     `json:"slot"`
	RosterID int     `json:"roster_id"`
	TeamName string  `json:"team_name"`
	Record   string  `json:"record"`
	Weight   float64 `json:"weight"`
	Odds     float64 `json:"odds"`
	Percent  float64 `json:"percent"`
}

type LotteryPick struct {
	Pick     int     `json:"pick"`
	RosterID int     `json:"roster_id"`
	TeamName string  `json:"team_name"`
	Record   string  `json:"record"`
	Odds     float64 `json:"odds"`
	Percent  float64 `json:"percent"`
}

type LotteryReport struct {
	Mode        string        `json:"mode"`
	GeneratedAt time.Time     `json:"generated_at"`
	Picks       []LotteryPick `json:"picks"`
}
