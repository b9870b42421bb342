package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/lottery"
	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/models"
	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/service"
)

type Handler struct {
	fantasyService *service.FantasyService
	send           func(text string) error
	revealDelay    time.Duration

	mu        sync.Mutex
	revealing bool
}

func NewHandler(fantasyService *service.FantasyService, send func(string) error, revealDelay time.Duration) *Handler {
	return &Handler{
		fantasyService: fantasyService,
		send:           send,
		revealDelay:    revealDelay,
	}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to the Dookie Dynasty bot! Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n/scores - Get current scores\n/standings - Get league standings\n/matchup - Get matchups for this week\n/finalscore - Get final score report\n/mondaynight - Get close games for Monday night\n/team <team> - View a team's record and traded picks\n/odds - Show draft lottery odds\n/lottery [weighted|equal] - Run the draft lottery\n/tradevalue - Team trade values\n/power - Power rankings"
	case "scores":
		h.handleScores(&msg)
	case "standings":
		h.handleStandings(&msg)
	case "finalscore":
		h.handleFinalScore(&msg)
	case "mondaynight":
		h.handleMondayNightGames(&msg)
	case "matchup":
		h.handleMatchup(&msg)
	case "team":
		h.handleTeam(&msg, args)
	case "odds":
		h.handleOdds(&msg)
	case "lottery":
		h.handleLottery(ctx, &msg, args)
	case "tradevalue":
		h.handleTradeValues(&msg)
	case "power":
		h.handlePowerRankings(&msg)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleScores(msg *tgbotapi.MessageConfig) {
	scores, err := h.fantasyService.GetCurrentScores()
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching scores: %v", err)
	} else {
		msg.Text = scores
	}
}

func (h *Handler) handleStandings(msg *tgbotapi.MessageConfig) {
	standings, err := h.fantasyService.GetStandings()
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching standings: %v", err)
	} else {
		msg.Text = standings
	}
}

func (h *Handler) handleFinalScore(msg *tgbotapi.MessageConfig) {
	report, err := h.fantasyService.GetFinalScoreReport()
	if err != nil {
		msg.Text = fmt.Sprintf("Error generating final score report: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleMondayNightGames(msg *tgbotapi.MessageConfig) {
	report, err := h.fantasyService.GetMondayNightCloseGames()
	if err != nil {
		msg.Text = fmt.Sprintf("Error generating Monday night close games report: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleMatchup(msg *tgbotapi.MessageConfig) {
	report, err := h.fantasyService.GetMatchups()
	if err != nil {
		msg.Text = fmt.Sprintf("Error generating matchups report: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleTeam(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a team name. Usage: /team <team name>"
		return
	}
	result, err := h.fantasyService.GetTeamSummary(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error getting team summary: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleOdds(msg *tgbotapi.MessageConfig) {
	board, err := h.fantasyService.GetLotteryOdds()
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching lottery odds: %v", err)
	} else {
		msg.Text = board
	}
}

func (h *Handler) handleTradeValues(msg *tgbotapi.MessageConfig) {
	values, err := h.fantasyService.GetTradeValues()
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching trade values: %v", err)
	} else {
		msg.Text = values
	}
}

func (h *Handler) handlePowerRankings(msg *tgbotapi.MessageConfig) {
	rankings, err := h.fantasyService.GetPowerRankings()
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching power rankings: %v", err)
	} else {
		msg.Text = rankings
	}
}

// handleLottery draws the order up front, then reveals it pick by pick in a
// background goroutine. Only one reveal runs at a time.
func (h *Handler) handleLottery(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	mode, err := lottery.ParseMode(strings.TrimSpace(strings.ToLower(args)))
	if err != nil {
		msg.Text = "Usage: /lottery [weighted|equal]"
		return
	}

	h.mu.Lock()
	if h.revealing {
		h.mu.Unlock()
		msg.Text = "A lottery reveal is already in progress."
		return
	}
	h.revealing = true
	h.mu.Unlock()

	report, err := h.fantasyService.RunLottery(mode)
	if err != nil {
		h.mu.Lock()
		h.revealing = false
		h.mu.Unlock()

		if errors.Is(err, lottery.ErrNoTeams) {
			msg.Text = "No eligible teams to draw from yet."
		} else {
			msg.Text = fmt.Sprintf("Error running lottery: %v", err)
		}
		return
	}

	msg.Text = "🎱 The lottery machine is warming up..."
	go h.revealLottery(ctx, report)
}

func (h *Handler) revealLottery(ctx context.Context, report *models.LotteryReport) {
	defer func() {
		h.mu.Lock()
		h.revealing = false
		h.mu.Unlock()
	}()

	for i, message := range service.LotteryRevealMessages(report) {
		if i > 0 {
			select {
			case <-time.After(h.revealDelay):
			case <-ctx.Done():
				return
			}
		}
		if err := h.send(message); err != nil {
			slog.Error("Error sending lottery reveal", "error", err)
			return
		}
	}
}
