package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diegoclair/prep-rotation/internal/domain"
	"github.com/diegoclair/prep-rotation/internal/domain/contract"
	"github.com/diegoclair/prep-rotation/internal/domain/entity"
	"github.com/diegoclair/prep-rotation/internal/domain/schedule"
	slackcmd "github.com/diegoclair/prep-rotation/internal/domain/slack"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	prepService   contract.PrepService
	signingSecret string
	log           *zap.Logger
}

func NewSlackHandler(prepService contract.PrepService, signingSecret string, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		prepService:   prepService,
		signingSecret: signingSecret,
		log:           log,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn("rejected unsigned slash command", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd := slackcmd.ParseCommand(s.Text)
	response := h.handleCommand(cmd)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdToday:
		return h.handleToday()
	case slackcmd.CmdOptions:
		return h.handleOptions(cmd)
	case slackcmd.CmdLocations:
		return h.handleLocations()
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.handleLookup(cmd)
	}
}

func (h *SlackHandler) handleToday() *slack.Msg {
	suggestion := h.prepService.Suggest()

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("📅 Today is *%s*.", schedule.OptionLabel(suggestion.Week, suggestion.DayLabel)),
	}
}

func (h *SlackHandler) handleLookup(cmd *slackcmd.Command) *slack.Msg {
	selection, override := h.prepService.ResolveSelection(cmd.Raw, nil)
	if !override {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text: fmt.Sprintf("🤔 Could not read a week or weekday in \"%s\". Keeping *%s*.",
				cmd.Raw, selectionLabel(selection)),
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("📅 *%s*", selectionLabel(selection)),
	}
}

func (h *SlackHandler) handleOptions(cmd *slackcmd.Command) *slack.Msg {
	query := strings.Join(cmd.Args, " ")

	var options []entity.WeekdayOption
	if query == "" {
		options = h.prepService.WeekdayOptions()
	} else {
		options = h.prepService.FilterWeekdayOptions(query)
	}

	if len(options) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         fmt.Sprintf("No slots match \"%s\". Try `mon`, `tue`, `wed`, `thu` or `fri`.", query),
		}
	}

	var list strings.Builder
	list.WriteString("*Slots:*\n")
	for _, opt := range options {
		list.WriteString(fmt.Sprintf("• %s\n", opt.Label))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleLocations() *slack.Msg {
	locations, err := h.prepService.Locations()
	if err != nil {
		h.log.Error("failed to list locations", zap.Error(err))
		return h.createErrorResponse("Could not load locations")
	}

	if len(locations) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No locations yet. Items may not have been synced.",
		}
	}

	var list strings.Builder
	list.WriteString("*Locations:*\n")
	for _, loc := range locations {
		list.WriteString(fmt.Sprintf("• %s\n", loc))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         list.String(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func selectionLabel(selection *entity.Selection) string {
	return schedule.OptionLabel(selection.Week, domain.LabelForCode(selection.Day))
}
