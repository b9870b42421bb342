package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	TelegramBot TelegramBot
	SleeperAPI  SleeperAPI
	Server      Server
	Lottery     Lottery
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN" required:"true"`
	ChatID int64  `envconfig:"CHAT_ID" required:"true"`
}

type SleeperAPI struct {
	LeagueID string `envconfig:"SLEEPER_LEAGUE_ID" required:"true"`
}

type Server struct {
	Addr string `envconfig:"HTTP_ADDR" default:":8080"`
}

type Lottery struct {
	Slots       int           `envconfig:"LOTTERY_SLOTS" default:"6"`
	RevealDelay time.Duration `envconfig:"LOTTERY_REVEAL_DELAY" default:"3s"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
