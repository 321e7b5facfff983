package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/bestball-live/bestballbot/internal/config"
	"github.com/bestball-live/bestballbot/internal/service"
)

type Scheduler struct {
	s              gocron.Scheduler
	fantasyService *service.FantasyService
	sendMessage    func(string) error
	livePollCron   string
}

func NewScheduler(cfg config.Scheduler, fantasyService *service.FantasyService, sendMessage func(string) error) (*Scheduler, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load location %q: %w", cfg.Timezone, err)
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
		livePollCron:   cfg.LivePollCron,
	}, nil
}

func (s *Scheduler) Start() error {
	var err error

	// Live scoreboard on game days, driven by the configured crontab
	// (validated at config load).
	_, err = s.s.NewJob(
		gocron.CronJob(s.livePollCron, false),
		gocron.NewTask(s.sendLiveScores),
	)
	if err != nil {
		return fmt.Errorf("failed to create live scores job: %w", err)
	}

	// Matchup previews - Thursday before kickoff
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Thursday), gocron.NewAtTimes(gocron.NewAtTime(18, 30, 0))),
		gocron.NewTask(s.sendMatchups),
	)
	if err != nil {
		return fmt.Errorf("failed to create matchups job: %w", err)
	}

	// Weekly wrap-up - Tuesday morning
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Tuesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendScoreboard),
	)
	if err != nil {
		return fmt.Errorf("failed to create scoreboard job: %w", err)
	}

	// Standings - Wednesday morning
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Wednesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendStandings),
	)
	if err != nil {
		return fmt.Errorf("failed to create standings job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

// sendLiveScores only posts while at least one game is in progress, so the
// crontab can fire around the clock without spamming the chat.
func (s *Scheduler) sendLiveScores() {
	scores, live, err := s.fantasyService.GetLiveScores()
	if err != nil {
		slog.Error("Failed to get live scores", "error", err)
		return
	}
	if !live {
		return
	}
	if err := s.sendMessage(scores); err != nil {
		slog.Error("Failed to send live scores", "error", err)
	}
}

func (s *Scheduler) sendMatchups() {
	matchups, err := s.fantasyService.GetMatchups()
	if err != nil {
		slog.Error("Failed to get matchups", "error", err)
		return
	}
	if err := s.sendMessage(matchups); err != nil {
		slog.Error("Failed to send matchups", "error", err)
	}
}

func (s *Scheduler) sendScoreboard() {
	scores, err := s.fantasyService.GetCurrentScores()
	if err != nil {
		slog.Error("Failed to get current scores", "error", err)
		return
	}
	if err := s.sendMessage(scores); err != nil {
		slog.Error("Failed to send scoreboard", "error", err)
	}
}

func (s *Scheduler) sendStandings() {
	standings, err := s.fantasyService.GetStandings()
	if err != nil {
		slog.Error("Failed to get standings", "error", err)
		return
	}
	if err := s.sendMessage(standings); err != nil {
		slog.Error("Failed to send standings", "error", err)
	}
}
