package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/service"
)

type Scheduler struct {
	s              gocron.Scheduler
	fantasyService *service.FantasyService
	sendMessage    func(string) error
}

func NewScheduler(fantasyService *service.FantasyService, sendMessage func(string) error) (*Scheduler, error) {
	// League home timezone; job times below are local to it.
	location, err := time.LoadLocation("America/Chicago")
	if err != nil {
		slog.Error("Failed to load location", "error", err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:              s,
		fantasyService: fantasyService,
		sendMessage:    sendMessage,
	}, nil
}

func (s *Scheduler) Start() error {
	var err error

	// Monday evening, before the final game kicks off
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Monday), gocron.NewAtTimes(gocron.NewAtTime(17, 30, 0))),
		gocron.NewTask(s.sendCloseScores),
	)
	if err != nil {
		return fmt.Errorf("failed to create close scores job: %w", err)
	}

	// Morning scoreboards
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Monday, time.Friday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendScoreboard),
	)
	if err != nil {
		return fmt.Errorf("failed to create scoreboard job: %w", err)
	}

	// Trophies once the week is settled
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Tuesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendTrophies),
	)
	if err != nil {
		return fmt.Errorf("failed to create trophies job: %w", err)
	}

	// Midweek standings
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Wednesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendStandings),
	)
	if err != nil {
		return fmt.Errorf("failed to create standings job: %w", err)
	}

	// Matchup preview before Thursday night kickoff
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Thursday), gocron.NewAtTimes(gocron.NewAtTime(18, 30, 0))),
		gocron.NewTask(s.sendMatchups),
	)
	if err != nil {
		return fmt.Errorf("failed to create matchups job: %w", err)
	}

	// Tankathon check-in: refreshed lottery odds alongside the trophies
	_, err = s.s.NewJob(
		gocron.CronJob("0 8 * * 2", false),
		gocron.NewTask(s.sendLotteryOdds),
	)
	if err != nil {
		return fmt.Errorf("failed to create lottery odds job: %w", err)
	}

	// Power rankings a day later so the arguments stay spread out
	_, err = s.s.NewJob(
		gocron.CronJob("0 8 * * 3", false),
		gocron.NewTask(s.sendPowerRankings),
	)
	if err != nil {
		return fmt.Errorf("failed to create power rankings job: %w", err)
	}

	// Sunday afternoon and evening score checks
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Sunday), gocron.NewAtTimes(gocron.NewAtTime(15, 0, 0), gocron.NewAtTime(19, 0, 0))),
		gocron.NewTask(s.sendScoreboard),
	)
	if err != nil {
		return fmt.Errorf("failed to create Sunday scoreboard job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendCloseScores() {
	report, err := s.fantasyService.GetMondayNightCloseGames()
	if err != nil {
		slog.Error("Failed to get close games", "error", err)
		return
	}
	s.sendMessage(report)
}

func (s *Scheduler) sendScoreboard() {
	scores, err := s.fantasyService.GetCurrentScores()
	if err != nil {
		slog.Error("Failed to get current scores", "error", err)
		return
	}
	s.sendMessage(scores)
}

func (s *Scheduler) sendTrophies() {
	report, err := s.fantasyService.GetFinalScoreReport()
	if err != nil {
		slog.Error("Failed to get final score report", "error", err)
		return
	}
	s.sendMessage(report)
}

func (s *Scheduler) sendStandings() {
	standings, err := s.fantasyService.GetStandings()
	if err != nil {
		slog.Error("Failed to get standings", "error", err)
		return
	}
	s.sendMessage(standings)
}

func (s *Scheduler) sendMatchups() {
	matchups, err := s.fantasyService.GetMatchups()
	if err != nil {
		slog.Error("Failed to get matchups", "error", err)
		return
	}
	s.sendMessage(matchups)
}

func (s *Scheduler) sendLotteryOdds() {
	board, err := s.fantasyService.GetLotteryOdds()
	if err != nil {
		slog.Error("Failed to get lottery odds", "error", err)
		return
	}
	s.sendMessage(board)
}

func (s *Scheduler) sendPowerRankings() {
	rankings, err := s.fantasyService.GetPowerRankings()
	if err != nil {
		slog.Error("Failed to get power rankings", "error", err)
		return
	}
	s.sendMessage(rankings)
}
