package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/bestball-live/bestballbot/internal/service"
)

type Handler struct {
	fantasyService *service.FantasyService
}

func NewHandler(fantasyService *service.FantasyService) *Handler {
	return &Handler{fantasyService: fantasyService}
}

func (h *Handler) HandleCommand(update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to BestBallBot! Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n/scores - Live matchup scores with best-ball projections\n/matchups - Matchups with each team's best lineup\n/roster <team> - A team's best lineup and bench\n/whohas <player> - Which team has a player\n/standings - League standings"
	case "scores":
		h.handleScores(&msg)
	case "matchups":
		h.handleMatchups(&msg)
	case "roster":
		h.handleRoster(&msg, args)
	case "whohas":
		h.handleWhoHas(&msg, args)
	case "standings":
		h.handleStandings(&msg)
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

func (h *Handler) handleMatchups(msg *tgbotapi.MessageConfig) {
	report, err := h.fantasyService.GetMatchups()
	if err != nil {
		msg.Text = fmt.Sprintf("Error generating matchups report: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleRoster(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a team name. Usage: /roster <team name>"
		return
	}
	result, err := h.fantasyService.GetTeamRoster(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error getting team roster: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleWhoHas(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a player name. Usage: /whohas <player name>"
		return
	}
	result, err := h.fantasyService.WhoHas(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error checking who has player: %v", err)
	} else {
		msg.Text = result
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
