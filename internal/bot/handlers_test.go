package bot

import (
	"context"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/models"
)

func commandUpdate(text string) tgbotapi.Update {
	length := len(text)
	if i := strings.Index(text, " "); i != -1 {
		length = i
	}
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: text,
			Chat: &tgbotapi.Chat{ID: 1},
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: length},
			},
		},
	}
}

func sampleReport() *models.LotteryReport {
	return &models.LotteryReport{
		Mode: "weighted",
		Picks: []models.LotteryPick{
			{Pick: 1, TeamName: "Cellar", Record: "1-7", Percent: 60.25},
			{Pick: 2, TeamName: "Bad", Record: "2-6", Percent: 24.1},
		},
	}
}

func TestRevealLotterySendsEveryMessage(t *testing.T) {
	var sent []string
	h := NewHandler(nil, func(text string) error {
		sent = append(sent, text)
		return nil
	}, time.Millisecond)

	h.revealLottery(context.Background(), sampleReport())

	if len(sent) != 4 {
		t.Fatalf("sent %d messages, want intro + 2 picks + summary", len(sent))
	}
	if !strings.Contains(sent[1], "Pick 1") || !strings.Contains(sent[1], "Cellar") {
		t.Errorf("first reveal = %q", sent[1])
	}
	if !strings.Contains(sent[3], "Final Draft Order") {
		t.Errorf("summary = %q", sent[3])
	}
}

func TestRevealLotteryStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var sent int
	h := NewHandler(nil, func(string) error {
		sent++
		return nil
	}, time.Hour)

	h.revealLottery(ctx, sampleReport())

	// The intro goes out before the first delay, then the cancelled context
	// ends the reveal.
	if sent != 1 {
		t.Errorf("sent %d messages after cancel, want 1", sent)
	}
}

func TestRevealLotteryClearsGuard(t *testing.T) {
	h := NewHandler(nil, func(string) error { return nil }, time.Millisecond)
	h.revealing = true

	h.revealLottery(context.Background(), sampleReport())

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.revealing {
		t.Error("reveal guard still set after reveal finished")
	}
}

func TestHandleCommandLotteryBadMode(t *testing.T) {
	h := NewHandler(nil, func(string) error { return nil }, time.Millisecond)

	msg := h.HandleCommand(context.Background(), commandUpdate("/lottery chaos"))

	if !strings.Contains(msg.Text, "Usage: /lottery") {
		t.Errorf("bad mode reply = %q", msg.Text)
	}
}

func TestHandleCommandLotteryWhileRevealing(t *testing.T) {
	h := NewHandler(nil, func(string) error { return nil }, time.Millisecond)
	h.revealing = true

	msg := h.HandleCommand(context.Background(), commandUpdate("/lottery"))

	if !strings.Contains(msg.Text, "already in progress") {
		t.Errorf("busy reply = %q", msg.Text)
	}
}

func TestHandleCommandTeamRequiresName(t *testing.T) {
	h := NewHandler(nil, func(string) error { return nil }, time.Millisecond)

	msg := h.HandleCommand(context.Background(), commandUpdate("/team"))

	if !strings.Contains(msg.Text, "Usage: /team") {
		t.Errorf("missing-arg reply = %q", msg.Text)
	}
}

func TestHandleCommandUnknown(t *testing.T) {
	h := NewHandler(nil, func(string) error { return nil }, time.Millisecond)

	msg := h.HandleCommand(context.Background(), commandUpdate("/juggle"))

	if !strings.Contains(msg.Text, "Unknown command") {
		t.Errorf("unknown command reply = %q", msg.Text)
	}
}

func TestHandleCommandHelpListsLottery(t *testing.T) {
	h := NewHandler(nil, func(string) error { return nil }, time.Millisecond)

	msg := h.HandleCommand(context.Background(), commandUpdate("/help"))

	for _, cmd := range []string{"/standings", "/odds", "/lottery", "/tradevalue", "/power"} {
		if !strings.Contains(msg.Text, cmd) {
			t.Errorf("help text missing %s", cmd)
		}
	}
}
