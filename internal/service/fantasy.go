package service

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/api/fantasy"
	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/lottery"
	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/models"
	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/repository/memory"
)

const (
	metadataTTL    = 24 * time.Hour
	standingsTTL   = 5 * time.Minute
	tradedPicksTTL = 6 * time.Hour

	closeGameMargin = 16.0
)

type FantasyService struct {
	api    *fantasy.API
	repo   *memory.Repository
	engine *lottery.Engine
	slots  int
}

func NewFantasyService(api *fantasy.API, repo *memory.Repository, lotterySlots int) *FantasyService {
	if lotterySlots <= 0 {
		lotterySlots = lottery.DefaultSlots
	}
	return &FantasyService{
		api:    api,
		repo:   repo,
		engine: lottery.NewEngine(nil),
		slots:  lotterySlots,
	}
}

func (s *FantasyService) GetCurrentWeek() (int, error) {
	metadata, err := s.getLeagueMetadata()
	if err != nil {
		return 0, err
	}

	return metadata.CurrentWeek, nil
}

func (s *FantasyService) LeagueMetadata() (*models.LeagueMetadata, error) {
	return s.getLeagueMetadata()
}

func (s *FantasyService) getLeagueMetadata() (*models.LeagueMetadata, error) {
	metadata := s.repo.GetMetadata()
	if metadata == nil || time.Since(metadata.LastUpdated) > metadataTTL {
		newMetadata, err := s.api.GetLeagueMetadata()
		if err != nil {
			return nil, err
		}
		s.repo.SaveMetadata(newMetadata)
		return newMetadata, nil
	}
	return metadata, nil
}

// Standings returns the league table, refreshed from Sleeper when the cached
// snapshot has gone stale.
func (s *FantasyService) Standings() ([]models.TeamStanding, error) {
	standings, fetchedAt := s.repo.GetStandings()
	if len(standings) == 0 || time.Since(fetchedAt) > standingsTTL {
		fresh, err := s.api.GetStandings()
		if err != nil {
			return nil, fmt.Errorf("error fetching standings: %w", err)
		}
		s.repo.SaveStandings(fresh)
		return fresh, nil
	}
	return standings, nil
}

func (s *FantasyService) TradedPicks() ([]models.TradedPick, error) {
	picks, fetchedAt := s.repo.GetTradedPicks()
	if len(picks) == 0 || time.Since(fetchedAt) > tradedPicksTTL {
		fresh, err := s.api.GetTradedPicks()
		if err != nil {
			return nil, fmt.Errorf("error fetching traded picks: %w", err)
		}
		s.repo.SaveTradedPicks(fresh)
		return fresh, nil
	}
	return picks, nil
}

// Matchups returns the current week's head-to-head games.
func (s *FantasyService) Matchups() ([]models.Matchup, error) {
	week, err := s.GetCurrentWeek()
	if err != nil {
		return nil, fmt.Errorf("error fetching current week: %w", err)
	}

	matchups, err := s.api.GetMatchups(week)
	if err != nil {
		return nil, fmt.Errorf("error fetching matchups: %w", err)
	}
	return matchups, nil
}

func (s *FantasyService) GetStandings() (string, error) {
	standings, err := s.Standings()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("🏆 *Current Standings*\n\n")
	for _, team := range standings {
		sb.WriteString(fmt.Sprintf("%d. *%s*\n", team.Rank, team.TeamName))
		sb.WriteString(fmt.Sprintf("   Record: %d-%d-%d\n", team.Wins, team.Losses, team.Ties))
		sb.WriteString(fmt.Sprintf("   Points For: %.2f\n", team.PointsFor))
		sb.WriteString(fmt.Sprintf("   Points Against: %.2f\n\n", team.PointsAgainst))
	}

	return sb.String(), nil
}

func (s *FantasyService) GetCurrentScores() (string, error) {
	week, err := s.GetCurrentWeek()
	if err != nil {
		return "", fmt.Errorf("error fetching current week: %w", err)
	}

	matchups, err := s.api.GetMatchups(week)
	if err != nil {
		return "", fmt.Errorf("error fetching current scores: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏈 *Week %d Current Scores*\n\n", week))

	for _, m := range matchups {
		sb.WriteString(fmt.Sprintf("*%s* vs *%s*\n", m.HomeTeam, m.AwayTeam))
		sb.WriteString(fmt.Sprintf("Current: %.2f - %.2f\n\n", m.HomeScore, m.AwayScore))
	}

	return sb.String(), nil
}

func (s *FantasyService) GetMatchups() (string, error) {
	week, err := s.GetCurrentWeek()
	if err != nil {
		return "", fmt.Errorf("error fetching current week: %w", err)
	}

	matchups, err := s.api.GetMatchups(week)
	if err != nil {
		return "", fmt.Errorf("error fetching matchups: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏈 *Week %d Matchups*\n\n", week))

	slog.Info("Matchups", "matchups", len(matchups))
	for _, m := range matchups {
		sb.WriteString(fmt.Sprintf("*%s* vs *%s*\n", m.HomeTeam, m.AwayTeam))

		if m.HomeScore > 0 || m.AwayScore > 0 {
			sb.WriteString(fmt.Sprintf("Current: %.2f - %.2f\n", m.HomeScore, m.AwayScore))
		}

		sb.WriteString("\n")
	}

	return sb.String(), nil
}

func (s *FantasyService) GetFinalScoreReport() (string, error) {
	week, err := s.GetCurrentWeek()
	if err != nil {
		return "", fmt.Errorf("error fetching current week: %w", err)
	}

	matchups, err := s.api.GetMatchups(week)
	if err != nil {
		return "", fmt.Errorf("error fetching matchups: %w", err)
	}

	report := processScores(week, matchups)
	return formatWeeklyReport(report), nil
}

func (s *FantasyService) GetMondayNightCloseGames() (string, error) {
	week, err := s.GetCurrentWeek()
	if err != nil {
		return "", fmt.Errorf("error fetching current week: %w", err)
	}

	matchups, err := s.api.GetMatchups(week)
	if err != nil {
		return "", fmt.Errorf("error fetching current scores: %w", err)
	}

	closeGames := findCloseGames(matchups)
	return formatMondayNightCloseGames(closeGames), nil
}

// GetTeamSummary resolves a fuzzy team name to one franchise and reports its
// standing plus any draft picks it has traded for or away.
func (s *FantasyService) GetTeamSummary(name string) (string, error) {
	team, err := s.api.FindTeam(name)
	if err != nil {
		return "", fmt.Errorf("error finding team: %w", err)
	}

	picks, err := s.TradedPicks()
	if err != nil {
		return "", err
	}

	standings, err := s.Standings()
	if err != nil {
		return "", err
	}

	names := make(map[int]string, len(standings))
	for _, st := range standings {
		names[st.RosterID] = st.TeamName
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s*\n", team.TeamName))
	if team.OwnerName != "" {
		sb.WriteString(fmt.Sprintf("Owner: %s\n", team.OwnerName))
	}
	sb.WriteString(fmt.Sprintf("Rank: %d\n", team.Rank))
	sb.WriteString(fmt.Sprintf("Record: %d-%d-%d\n", team.Wins, team.Losses, team.Ties))
	sb.WriteString(fmt.Sprintf("Points For: %.2f\n", team.PointsFor))
	sb.WriteString(fmt.Sprintf("Points Against: %.2f\n", team.PointsAgainst))

	var acquired, shipped []models.TradedPick
	for _, pick := range picks {
		if pick.CurrentOwner == pick.OriginalOwner {
			continue
		}
		if pick.CurrentOwner == team.RosterID {
			acquired = append(acquired, pick)
		}
		if pick.OriginalOwner == team.RosterID {
			shipped = append(shipped, pick)
		}
	}

	if len(acquired) > 0 {
		sb.WriteString("\n*Picks Acquired:*\n")
		for _, pick := range acquired {
			sb.WriteString(fmt.Sprintf("  • %s Round %d (from %s)\n", pick.Season, pick.Round, rosterName(names, pick.OriginalOwner)))
		}
	}
	if len(shipped) > 0 {
		sb.WriteString("\n*Picks Traded Away:*\n")
		for _, pick := range shipped {
			sb.WriteString(fmt.Sprintf("  • %s Round %d (to %s)\n", pick.Season, pick.Round, rosterName(names, pick.CurrentOwner)))
		}
	}

	return sb.String(), nil
}

func rosterName(names map[int]string, rosterID int) string {
	if name, ok := names[rosterID]; ok {
		return name
	}
	return fmt.Sprintf("Roster %d", rosterID)
}

func processScores(week int, scores []models.Matchup) models.WeeklyReport {
	report := models.WeeklyReport{Week: week}
	report.Matchups = make([]models.Matchup, len(scores))
	copy(report.Matchups, scores)

	if len(scores) == 0 {
		return report
	}

	var highScore, lowScore float64
	var biggestWin, closestWin float64
	var highScoreTeam, lowScoreTeam, biggestWinTeam, closestWinTeam string

	highScore = -math.MaxFloat64
	lowScore = math.MaxFloat64
	biggestWin = -math.MaxFloat64
	closestWin = math.MaxFloat64

	for _, score := range scores {
		// High Score
		if score.HomeScore > highScore {
			highScore = score.HomeScore
			highScoreTeam = score.HomeTeam
		}
		if score.AwayScore > highScore {
			highScore = score.AwayScore
			highScoreTeam = score.AwayTeam
		}

		// Low Score
		if score.HomeScore < lowScore {
			lowScore = score.HomeScore
			lowScoreTeam = score.HomeTeam
		}
		if score.AwayScore < lowScore {
			lowScore = score.AwayScore
			lowScoreTeam = score.AwayTeam
		}

		// Biggest Win and Closest Win
		scoreDiff := math.Abs(score.HomeScore - score.AwayScore)
		if scoreDiff > biggestWin {
			biggestWin = scoreDiff
			if score.HomeScore > score.AwayScore {
				biggestWinTeam = score.HomeTeam
			} else {
				biggestWinTeam = score.AwayTeam
			}
		}
		if scoreDiff < closestWin {
			closestWin = scoreDiff
			if score.HomeScore > score.AwayScore {
				closestWinTeam = score.HomeTeam
			} else {
				closestWinTeam = score.AwayTeam
			}
		}
	}

	report.Trophies = []models.Trophy{
		{Category: "High Score", Team: highScoreTeam, Value: highScore},
		{Category: "Low Score", Team: lowScoreTeam, Value: lowScore},
		{Category: "Biggest Win", Team: biggestWinTeam, Value: biggestWin},
		{Category: "Closest Win", Team: closestWinTeam, Value: closestWin},
	}

	return report
}

func formatWeeklyReport(report models.WeeklyReport) string {
	var sb strings.Builder

	sb.WriteString("📊 *Final Scores:*\n\n")

	sort.Slice(report.Matchups, func(i, j int) bool {
		totalScoreI := report.Matchups[i].HomeScore + report.Matchups[i].AwayScore
		totalScoreJ := report.Matchups[j].HomeScore + report.Matchups[j].AwayScore
		return totalScoreI > totalScoreJ
	})

	for _, m := range report.Matchups {
		sb.WriteString(fmt.Sprintf("%s %.2f - %.2f %s\n", m.HomeTeam, m.HomeScore, m.AwayScore, m.AwayTeam))
	}

	sb.WriteString("\n🏆 *Trophies:*\n")
	for _, t := range report.Trophies {
		switch t.Category {
		case "High Score":
			sb.WriteString(fmt.Sprintf("Highest Score: %s (%.2f)\n", t.Team, t.Value))
		case "Low Score":
			sb.WriteString(fmt.Sprintf("Lowest Score: %s (%.2f)\n", t.Team, t.Value))
		case "Biggest Win":
			sb.WriteString(fmt.Sprintf("Biggest Win: %s (Margin: %.2f)\n", t.Team, t.Value))
		case "Closest Win":
			sb.WriteString(fmt.Sprintf("Closest Win: %s (Margin: %.2f)\n", t.Team, t.Value))
		}
	}

	return sb.String()
}

func findCloseGames(scores []models.Matchup) []models.CloseGame {
	var closeGames []models.CloseGame

	for _, score := range scores {
		margin := math.Abs(score.HomeScore - score.AwayScore)
		if margin <= closeGameMargin {
			closeGames = append(closeGames, models.CloseGame{
				HomeTeam:  score.HomeTeam,
				AwayTeam:  score.AwayTeam,
				HomeScore: score.HomeScore,
				AwayScore: score.AwayScore,
				Margin:    margin,
			})
		}
	}

	sort.Slice(closeGames, func(i, j int) bool {
		return closeGames[i].Margin < closeGames[j].Margin
	})

	return closeGames
}

func formatMondayNightCloseGames(closeGames []models.CloseGame) string {
	var sb strings.Builder

	sb.WriteString("🏈 *Monday Night Watch List*\n\n")

	if len(closeGames) == 0 {
		sb.WriteString("No close games this week. All outcomes are likely decided.")
		return sb.String()
	}

	for _, game := range closeGames {
		sb.WriteString(fmt.Sprintf("%s %.2f - %.2f %s (Margin: %.2f)\n",
			game.HomeTeam, game.HomeScore, game.AwayScore, game.AwayTeam, game.Margin))
	}

	return sb.String()
}
