package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
)

type Config struct {
	TelegramBot TelegramBot
	Sleeper     Sleeper
	Scheduler   Scheduler
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN" required:"true"`
	ChatID int64  `envconfig:"CHAT_ID" required:"true"`
}

type Sleeper struct {
	LeagueID string `envconfig:"LEAGUE_ID" required:"true"`
}

type Scheduler struct {
	// Standard 5-field crontab controlling how often live scoreboards are
	// posted while games are on.
	LivePollCron string `envconfig:"LIVE_POLL_CRON" default:"*/15 * * * *"`
	Timezone     string `envconfig:"TIMEZONE" default:"America/Chicago"`
}

func New() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}

	if _, err := cron.ParseStandard(c.Scheduler.LivePollCron); err != nil {
		return nil, fmt.Errorf("invalid LIVE_POLL_CRON %q: %w", c.Scheduler.LivePollCron, err)
	}

	return &c, nil
}
