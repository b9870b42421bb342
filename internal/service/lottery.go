package service

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/lottery"
	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/models"
)

// LotteryOdds publishes the odds board: the worst teams in seed order with
// their raw weights and display percentages.
func (s *FantasyService) LotteryOdds() ([]models.LotteryOddsEntry, error) {
	seeds, err := s.lotterySeeds()
	if err != nil {
		return nil, err
	}
	return buildOddsBoard(seeds), nil
}

// RunLottery draws the full draft order for the eligible field.
func (s *FantasyService) RunLottery(mode lottery.Mode) (*models.LotteryReport, error) {
	seeds, err := s.lotterySeeds()
	if err != nil {
		return nil, err
	}
	if len(seeds) == 0 {
		return nil, lottery.ErrNoTeams
	}

	picks, err := s.engine.Run(seeds, mode)
	if err != nil {
		return nil, fmt.Errorf("error running lottery: %w", err)
	}

	slog.Info("Lottery complete", "mode", mode, "picks", len(picks))
	return buildLotteryReport(mode, picks), nil
}

func (s *FantasyService) lotterySeeds() ([]lottery.Team, error) {
	standings, err := s.Standings()
	if err != nil {
		return nil, err
	}
	return seedsFromStandings(standings, s.slots), nil
}

// seedsFromStandings maps the league table onto the lottery field: every
// roster enters, the worst slots survive the cut.
func seedsFromStandings(standings []models.TeamStanding, slots int) []lottery.Team {
	teams := make([]lottery.Team, len(standings))
	for i, st := range standings {
		teams[i] = lottery.Team{
			ID:            strconv.Itoa(st.RosterID),
			Name:          st.TeamName,
			Wins:          st.Wins,
			Losses:        st.Losses,
			PointsAgainst: st.PointsAgainst,
		}
	}
	return lottery.Rank(teams, slots)
}

// parseRosterID undoes the seed-id mapping above. A non-numeric id means a
// seed that did not come from the standings; it logs and maps to roster 0.
func parseRosterID(id string) int {
	rosterID, err := strconv.Atoi(id)
	if err != nil {
		slog.Warn("Non-numeric roster id in lottery seed", "id", id)
	}
	return rosterID
}

func buildOddsBoard(seeds []lottery.Team) []models.LotteryOddsEntry {
	table := lottery.BuildOddsTable(len(seeds))
	total := lottery.TotalWeight(table)

	entries := make([]models.LotteryOddsEntry, len(seeds))
	for i, team := range seeds {
		entries[i] = models.LotteryOddsEntry{
			Slot:     i + 1,
			RosterID: parseRosterID(team.ID),
			TeamName: team.Name,
			Record:   team.Record(),
			Weight:   table[i],
			Odds:     lottery.DisplayOdds(table[i]),
			Percent:  lottery.DisplayPercent(table[i], total),
		}
	}
	return entries
}

func buildLotteryReport(mode lottery.Mode, picks []lottery.Pick) *models.LotteryReport {
	var total float64
	for _, p := range picks {
		total += p.Weight
	}

	report := &models.LotteryReport{
		Mode:        string(mode),
		GeneratedAt: time.Now(),
		Picks:       make([]models.LotteryPick, len(picks)),
	}
	for i, p := range picks {
		report.Picks[i] = models.LotteryPick{
			Pick:     p.Number,
			RosterID: parseRosterID(p.Team.ID),
			TeamName: p.Team.Name,
			Record:   p.Team.Record(),
			Odds:     lottery.DisplayOdds(p.Weight),
			Percent:  lottery.DisplayPercent(p.Weight, total),
		}
	}
	return report
}

func (s *FantasyService) GetLotteryOdds() (string, error) {
	entries, err := s.LotteryOdds()
	if err != nil {
		return "", err
	}
	return formatOddsBoard(entries), nil
}

func formatOddsBoard(entries []models.LotteryOddsEntry) string {
	var sb strings.Builder
	sb.WriteString("🎱 *Draft Lottery Odds*\n\n")

	if len(entries) == 0 {
		sb.WriteString("No eligible teams yet.")
		return sb.String()
	}

	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("%d. *%s* (%s)\n", e.Slot, e.TeamName, e.Record))
		sb.WriteString(fmt.Sprintf("   Weight: %.2f (%.2f%%)\n\n", e.Odds, e.Percent))
	}

	sb.WriteString("Worst record draws first. Winning a pick removes a team from later draws.")
	return sb.String()
}

// LotteryRevealMessages renders a report as one message per pick, bracketed
// by an intro and a final order summary. Callers control the pacing between
// messages.
func LotteryRevealMessages(report *models.LotteryReport) []string {
	messages := make([]string, 0, len(report.Picks)+2)

	modeLabel := "weighted odds"
	if report.Mode == string(lottery.ModeEqual) {
		modeLabel = "equal odds"
	}
	messages = append(messages, fmt.Sprintf("🎱 *Draft Lottery* (%s)\nDrawing %d picks...", modeLabel, len(report.Picks)))

	for _, pick := range report.Picks {
		line := fmt.Sprintf("Pick %d: *%s* (%s)", pick.Pick, pick.TeamName, pick.Record)
		if report.Mode == string(lottery.ModeWeighted) {
			line += fmt.Sprintf("\nEntered at %.2f%%", pick.Percent)
		}
		messages = append(messages, line)
	}

	var sb strings.Builder
	sb.WriteString("📋 *Final Draft Order:*\n")
	for _, pick := range report.Picks {
		sb.WriteString(fmt.Sprintf("%d. %s\n", pick.Pick, pick.TeamName))
	}
	messages = append(messages, sb.String())

	return messages
}
