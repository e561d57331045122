package presentation

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/bob/internal/modules/temp_voice/application/usecases"
	"github.com/sglre6355/bob/internal/modules/temp_voice/domain"
)

// EventHandlers handles Discord gateway events for temporary rooms.
type EventHandlers struct {
	cleanup *usecases.CleanupService
}

// NewEventHandlers creates a new EventHandlers.
func NewEventHandlers(cleanup *usecases.CleanupService) *EventHandlers {
	return &EventHandlers{
		cleanup: cleanup,
	}
}

// HandleVoiceStateUpdate reclaims the channel a member left, if it is now an
// empty temporary room. Failures are logged and never propagated.
func (h *EventHandlers) HandleVoiceStateUpdate(
	_ *discordgo.Session,
	event *discordgo.VoiceStateUpdate,
) {
	if event.VoiceState == nil {
		return
	}

	input, err := voiceStateChangeInput(event)
	if err != nil {
		slog.Warn("failed to parse voice state update", "error", err)
		return
	}

	output, err := h.cleanup.HandleVoiceStateChange(context.Background(), input)
	switch {
	case domain.IsSkip(err):
		slog.Debug("not deleting channel",
			"guild", input.GuildID,
			"user", input.New.UserID,
			"reason", err,
		)
	case err != nil:
		slog.Warn("failed to clean up temp channel",
			"guild", input.GuildID,
			"user", input.New.UserID,
			"error", err,
		)
	default:
		slog.Info("deleted temp channel",
			"guild", input.GuildID,
			"channel", output.ChannelID,
			"name", output.ChannelName,
			"already_deleted", output.AlreadyDeleted,
		)
	}
}

func voiceStateChangeInput(event *discordgo.VoiceStateUpdate) (usecases.VoiceStateChangeInput, error) {
	var input usecases.VoiceStateChangeInput

	guildID, err := parseOptionalID(event.GuildID)
	if err != nil {
		return input, err
	}
	input.GuildID = guildID

	newState, err := toDomainVoiceState(event.VoiceState)
	if err != nil {
		return input, err
	}
	input.New = newState

	// BeforeUpdate is only known when the previous state was cached.
	if event.BeforeUpdate != nil {
		oldState, err := toDomainVoiceState(event.BeforeUpdate)
		if err != nil {
			return input, err
		}
		input.Old = &oldState
	}

	return input, nil
}

func toDomainVoiceState(vs *discordgo.VoiceState) (domain.VoiceState, error) {
	userID, err := parseOptionalID(vs.UserID)
	if err != nil {
		return domain.VoiceState{}, err
	}
	channelID, err := parseOptionalID(vs.ChannelID)
	if err != nil {
		return domain.VoiceState{}, err
	}
	return domain.VoiceState{UserID: userID, ChannelID: channelID}, nil
}

func parseOptionalID(id string) (snowflake.ID, error) {
	if id == "" {
		return 0, nil
	}
	return snowflake.Parse(id)
}
