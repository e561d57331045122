package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/bob/internal/modules/temp_voice/application/ports"
	"github.com/sglre6355/bob/internal/modules/temp_voice/domain"
)

// VoiceStateChangeInput contains the input for handling a voice presence change.
type VoiceStateChangeInput struct {
	GuildID snowflake.ID       // 0 if unknown
	Old     *domain.VoiceState // nil if no previous state is known
	New     domain.VoiceState
}

// CleanupOutput describes a reclaimed room.
type CleanupOutput struct {
	ChannelID   snowflake.ID
	ChannelName string
	// AlreadyDeleted is true when the room was gone by the time deletion ran.
	AlreadyDeleted bool
}

// CleanupService deletes temporary rooms once they are empty.
type CleanupService struct {
	designatedName string
	guilds         ports.GuildProvider
	channels       ports.ChannelProvider
	voiceState     ports.VoiceStateProvider
	manager        ports.ChannelManager
	notifier       ports.NotificationSender
}

// NewCleanupService creates a new CleanupService.
func NewCleanupService(
	designatedName string,
	guilds ports.GuildProvider,
	channels ports.ChannelProvider,
	voiceState ports.VoiceStateProvider,
	manager ports.ChannelManager,
	notifier ports.NotificationSender,
) *CleanupService {
	return &CleanupService{
		designatedName: designatedName,
		guilds:         guilds,
		channels:       channels,
		voiceState:     voiceState,
		manager:        manager,
		notifier:       notifier,
	}
}

// HandleVoiceStateChange deletes the channel a member just left if it is an
// empty channel inside the managed category.
//
// When nothing needs to be deleted the returned error satisfies domain.IsSkip.
// Any other error is an unexpected platform failure.
func (c *CleanupService) HandleVoiceStateChange(
	ctx context.Context,
	input VoiceStateChangeInput,
) (*CleanupOutput, error) {
	if input.GuildID == 0 {
		return nil, domain.ErrUnknownGuild
	}
	guild, err := c.guilds.Guild(ctx, input.GuildID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch guild data: %w", err)
	}

	if input.Old == nil {
		return nil, domain.ErrJustJoined
	}
	if !input.Old.Connected() {
		return nil, domain.ErrUnknownPreviousChannel
	}
	if input.New.ChannelID == input.Old.ChannelID {
		return nil, domain.ErrSameChannel
	}

	vacated, err := c.channels.Channel(ctx, input.Old.ChannelID)
	if errors.Is(err, domain.ErrChannelNotFound) {
		return nil, domain.ErrChannelGone
	}
	if err != nil {
		return nil, fmt.Errorf("could not fetch channel data: %w", err)
	}
	if !vacated.InGuild() {
		return nil, domain.ErrNotGuildChannel
	}
	if !vacated.HasCategory() {
		return nil, domain.ErrNoCategory
	}

	occupants, err := c.voiceState.GetChannelOccupants(ctx, guild.ID, vacated.ID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch channel members: %w", err)
	}
	if len(occupants) != 0 {
		return nil, domain.ErrChannelNotEmpty
	}

	all, err := c.channels.GuildChannels(ctx, guild.ID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch guild channels: %w", err)
	}
	designated := domain.FindChannelByName(all, c.designatedName)
	if designated == nil {
		return nil, domain.ErrNoDesignatedChannel
	}
	if !designated.HasCategory() {
		return nil, domain.ErrNoDesignatedCategory
	}
	if vacated.ParentID != designated.ParentID {
		return nil, domain.ErrOutsideManagedCategory
	}

	if err := c.notifier.SendRoomDeleted(ctx, designated.ID, vacated.Name); err != nil {
		slog.Warn("failed to announce channel deletion",
			"guild", guild.ID,
			"channel", vacated.ID,
			"error", err,
		)
	}

	output := &CleanupOutput{ChannelID: vacated.ID, ChannelName: vacated.Name}

	slog.Info("deleting temp channel", "guild", guild.ID, "channel", vacated.ID, "name", vacated.Name)
	err = c.manager.DeleteChannel(ctx, vacated.ID)
	if errors.Is(err, domain.ErrChannelNotFound) {
		slog.Debug("temp channel was already deleted", "guild", guild.ID, "channel", vacated.ID)
		output.AlreadyDeleted = true
		return output, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete channel: %w", err)
	}

	return output, nil
}
