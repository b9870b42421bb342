package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/models"
)

const (
	// A future first rounder is worth 10 value points, each later round half
	// the round before it.
	firstRoundPickValue = 10.0
	pickRoundDecay      = 2.0

	powerRecordWeight  = 0.5
	powerScoringWeight = 0.35
	powerDiffWeight    = 0.15

	// Classic Pythagorean exponent for points-based expected wins.
	pythagoreanExponent = 2.37
)

// TradeValues scores every franchise's long-term outlook from current
// scoring strength and the net draft capital it has traded for.
func (s *FantasyService) TradeValues() ([]models.TeamValue, error) {
	standings, err := s.Standings()
	if err != nil {
		return nil, err
	}

	picks, err := s.TradedPicks()
	if err != nil {
		return nil, err
	}

	return computeTradeValues(standings, picks), nil
}

func (s *FantasyService) PowerRankings() ([]models.PowerRanking, error) {
	standings, err := s.Standings()
	if err != nil {
		return nil, err
	}
	return computePowerRankings(standings), nil
}

func computeTradeValues(standings []models.TeamStanding, picks []models.TradedPick) []models.TeamValue {
	if len(standings) == 0 {
		return nil
	}

	var maxPoints float64
	for _, team := range standings {
		if team.PointsFor > maxPoints {
			maxPoints = team.PointsFor
		}
	}

	capital := draftCapitalByRoster(picks)

	values := make([]models.TeamValue, len(standings))
	for i, team := range standings {
		var rosterScore float64
		if maxPoints > 0 {
			rosterScore = 100 * team.PointsFor / maxPoints
		}

		values[i] = models.TeamValue{
			RosterID:     team.RosterID,
			TeamName:     team.TeamName,
			RosterScore:  round2(rosterScore),
			DraftCapital: round2(capital[team.RosterID]),
			TotalValue:   round2(rosterScore + capital[team.RosterID]),
		}
	}

	sort.Slice(values, func(i, j int) bool {
		return values[i].TotalValue > values[j].TotalValue
	})
	for i := range values {
		values[i].Rank = i + 1
	}

	return values
}

// draftCapitalByRoster nets out the traded picks: the holder gains the
// pick's value, the roster that gave it up loses it.
func draftCapitalByRoster(picks []models.TradedPick) map[int]float64 {
	capital := make(map[int]float64)
	for _, pick := range picks {
		if pick.CurrentOwner == pick.OriginalOwner {
			continue
		}
		value := pickValue(pick.Round)
		capital[pick.CurrentOwner] += value
		capital[pick.OriginalOwner] -= value
	}
	return capital
}

func pickValue(round int) float64 {
	value := firstRoundPickValue
	for r := 1; r < round; r++ {
		value /= pickRoundDecay
	}
	return value
}

func computePowerRankings(standings []models.TeamStanding) []models.PowerRanking {
	if len(standings) == 0 {
		return nil
	}

	var maxPoints, maxDiff float64
	for _, team := range standings {
		if team.PointsFor > maxPoints {
			maxPoints = team.PointsFor
		}
		if diff := math.Abs(team.PointsFor - team.PointsAgainst); diff > maxDiff {
			maxDiff = diff
		}
	}

	rankings := make([]models.PowerRanking, len(standings))
	for i, team := range standings {
		var scoring float64
		if maxPoints > 0 {
			scoring = team.PointsFor / maxPoints
		}

		var diff float64
		if maxDiff > 0 {
			diff = (team.PointsFor - team.PointsAgainst) / maxDiff
		}

		score := 100 * (powerRecordWeight*team.WinPercentage +
			powerScoringWeight*scoring +
			powerDiffWeight*(diff+1)/2)

		expectedWins := pythagoreanWins(team)
		rankings[i] = models.PowerRanking{
			RosterID:     team.RosterID,
			TeamName:     team.TeamName,
			Score:        round2(score),
			ExpectedWins: round2(expectedWins),
			Luck:         round2(float64(team.Wins) - expectedWins),
		}
	}

	sort.Slice(rankings, func(i, j int) bool {
		return rankings[i].Score > rankings[j].Score
	})
	for i := range rankings {
		rankings[i].Rank = i + 1
	}

	return rankings
}

// pythagoreanWins estimates how many games a team should have won on points
// alone. Luck is actual wins minus this.
func pythagoreanWins(team models.TeamStanding) float64 {
	games := team.Wins + team.Losses + team.Ties
	if games == 0 {
		return 0
	}

	pf := math.Pow(team.PointsFor, pythagoreanExponent)
	pa := math.Pow(team.PointsAgainst, pythagoreanExponent)
	if pf+pa == 0 {
		return 0
	}

	return float64(games) * pf / (pf + pa)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *FantasyService) GetTradeValues() (string, error) {
	values, err := s.TradeValues()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("💰 *Team Trade Values*\n\n")

	for _, v := range values {
		sb.WriteString(fmt.Sprintf("%d. *%s*: %.2f\n", v.Rank, v.TeamName, v.TotalValue))
		sb.WriteString(fmt.Sprintf("   Roster: %.2f | Draft Capital: %+.2f\n\n", v.RosterScore, v.DraftCapital))
	}

	return sb.String(), nil
}

func (s *FantasyService) GetPowerRankings() (string, error) {
	rankings, err := s.PowerRankings()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("⚡ *Power Rankings*\n\n")

	for _, r := range rankings {
		sb.WriteString(fmt.Sprintf("%d. *%s*: %.2f\n", r.Rank, r.TeamName, r.Score))
		sb.WriteString(fmt.Sprintf("   Expected Wins: %.2f | Luck: %+.2f\n\n", r.ExpectedWins, r.Luck))
	}

	return sb.String(), nil
}
