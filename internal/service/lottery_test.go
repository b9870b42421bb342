package service

import (
	"strings"
	"testing"

	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/lottery"
	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/models"
)

func leagueTable() []models.TeamStanding {
	return []models.TeamStanding{
		{Rank: 1, RosterID: 1, TeamName: "Juggernaut", Wins: 7, Losses: 1, PointsAgainst: 880, WinPercentage: 0.875},
		{Rank: 2, RosterID: 2, TeamName: "Solid", Wins: 6, Losses: 2, PointsAgainst: 910, WinPercentage: 0.75},
		{Rank: 3, RosterID: 3, TeamName: "Decent", Wins: 5, Losses: 3, PointsAgainst: 960, WinPercentage: 0.625},
		{Rank: 4, RosterID: 4, TeamName: "Average", Wins: 4, Losses: 4, PointsAgainst: 1000, WinPercentage: 0.5},
		{Rank: 5, RosterID: 5, TeamName: "Shaky", Wins: 3, Losses: 5, PointsAgainst: 1020, WinPercentage: 0.375},
		{Rank: 6, RosterID: 6, TeamName: "Rough", Wins: 3, Losses: 5, PointsAgainst: 1090, WinPercentage: 0.375},
		{Rank: 7, RosterID: 7, TeamName: "Bad", Wins: 2, Losses: 6, PointsAgainst: 1130, WinPercentage: 0.25},
		{Rank: 8, RosterID: 8, TeamName: "Cellar", Wins: 1, Losses: 7, PointsAgainst: 1200, WinPercentage: 0.125},
	}
}

func TestSeedsFromStandings(t *testing.T) {
	seeds := seedsFromStandings(leagueTable(), 6)

	if len(seeds) != 6 {
		t.Fatalf("got %d seeds, want 6", len(seeds))
	}

	// Worst first; Rough out-seeds Shaky on points against at the same
	// record.
	wantOrder := []string{"Cellar", "Bad", "Rough", "Shaky", "Average", "Decent"}
	for i, name := range wantOrder {
		if seeds[i].Name != name {
			t.Errorf("seed %d = %s, want %s", i+1, seeds[i].Name, name)
		}
	}
}

func TestSeedsFromStandingsSmallLeague(t *testing.T) {
	seeds := seedsFromStandings(leagueTable()[:3], 6)

	if len(seeds) != 3 {
		t.Errorf("got %d seeds, want all 3 teams", len(seeds))
	}
	if got := seedsFromStandings(nil, 6); len(got) != 0 {
		t.Errorf("empty standings produced %d seeds", len(got))
	}
}

func TestParseRosterID(t *testing.T) {
	tests := []struct {
		id   string
		want int
	}{
		{"8", 8},
		{"", 0},
		{"bogus", 0},
	}

	for _, tt := range tests {
		if got := parseRosterID(tt.id); got != tt.want {
			t.Errorf("parseRosterID(%q) = %d, want %d", tt.id, got, tt.want)
		}
	}
}

func TestBuildOddsBoard(t *testing.T) {
	seeds := []lottery.Team{
		{ID: "8", Name: "Cellar", Wins: 1, Losses: 7},
		{ID: "7", Name: "Bad", Wins: 2, Losses: 6},
	}

	entries := buildOddsBoard(seeds)

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	first := entries[0]
	if first.Slot != 1 || first.RosterID != 8 || first.TeamName != "Cellar" {
		t.Errorf("slot 1 = %+v", first)
	}
	if first.Record != "1-7" {
		t.Errorf("slot 1 record = %q, want 1-7", first.Record)
	}
	if !closeTo(first.Weight, 60) || !closeTo(first.Odds, 60) {
		t.Errorf("slot 1 weight = %v odds = %v, want 60", first.Weight, first.Odds)
	}
	// 60 of an 84 total.
	if !closeTo(first.Percent, 71.43) {
		t.Errorf("slot 1 percent = %v, want 71.43", first.Percent)
	}
	if !closeTo(entries[1].Percent, 28.57) {
		t.Errorf("slot 2 percent = %v, want 28.57", entries[1].Percent)
	}
}

func TestBuildOddsBoardEmpty(t *testing.T) {
	if entries := buildOddsBoard(nil); len(entries) != 0 {
		t.Errorf("got %d entries for no seeds", len(entries))
	}
}

func TestBuildLotteryReport(t *testing.T) {
	picks := []lottery.Pick{
		{Number: 1, Team: lottery.Team{ID: "7", Name: "Bad", Wins: 2, Losses: 6}, Weight: 24},
		{Number: 2, Team: lottery.Team{ID: "8", Name: "Cellar", Wins: 1, Losses: 7}, Weight: 60},
	}

	report := buildLotteryReport(lottery.ModeWeighted, picks)

	if report.Mode != "weighted" {
		t.Errorf("Mode = %q", report.Mode)
	}
	if report.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not set")
	}
	if len(report.Picks) != 2 {
		t.Fatalf("got %d picks, want 2", len(report.Picks))
	}

	first := report.Picks[0]
	if first.Pick != 1 || first.RosterID != 7 || first.TeamName != "Bad" {
		t.Errorf("pick 1 = %+v", first)
	}
	if first.Record != "2-6" {
		t.Errorf("pick 1 record = %q, want 2-6", first.Record)
	}
	// 24 of the 84 the field entered with.
	if !closeTo(first.Percent, 28.57) {
		t.Errorf("pick 1 percent = %v, want 28.57", first.Percent)
	}
}

func TestLotteryRevealMessages(t *testing.T) {
	report := &models.LotteryReport{
		Mode: "weighted",
		Picks: []models.LotteryPick{
			{Pick: 1, TeamName: "Cellar", Record: "1-7", Percent: 60.25},
			{Pick: 2, TeamName: "Bad", Record: "2-6", Percent: 24.1},
		},
	}

	messages := LotteryRevealMessages(report)

	if len(messages) != 4 {
		t.Fatalf("got %d messages, want intro + 2 picks + summary", len(messages))
	}
	if !strings.Contains(messages[0], "Draft Lottery") {
		t.Errorf("intro = %q", messages[0])
	}
	if !strings.Contains(messages[1], "Pick 1") || !strings.Contains(messages[1], "Cellar") {
		t.Errorf("first reveal = %q", messages[1])
	}
	if !strings.Contains(messages[1], "60.25%") {
		t.Errorf("weighted reveal should show odds, got %q", messages[1])
	}
	if !strings.Contains(messages[3], "Final Draft Order") {
		t.Errorf("summary = %q", messages[3])
	}
}

func TestLotteryRevealMessagesEqualMode(t *testing.T) {
	report := &models.LotteryReport{
		Mode: "equal",
		Picks: []models.LotteryPick{
			{Pick: 1, TeamName: "Shaky", Record: "3-5"},
		},
	}

	messages := LotteryRevealMessages(report)

	if strings.Contains(messages[1], "%") {
		t.Errorf("equal-mode reveal should not show odds, got %q", messages[1])
	}
}
