package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/bob/internal/modules/temp_voice/application/ports"
	"github.com/sglre6355/bob/internal/modules/temp_voice/domain"
)

// BuildInput contains the input for the Build use case.
type BuildInput struct {
	GuildID   snowflake.ID
	ChannelID snowflake.ID // Channel the command was sent from
	UserID    snowflake.ID
	RoomName  string // Free text, sanitized before use
}

// BuildOutput contains the result of the Build use case.
type BuildOutput struct {
	Room *domain.Channel
}

// BuildService creates temporary rooms.
type BuildService struct {
	guilds     ports.GuildProvider
	channels   ports.ChannelProvider
	manager    ports.ChannelManager
	notifier   ports.NotificationSender
	fullAccess domain.Permissions
}

// NewBuildService creates a new BuildService. fullAccess is the permission
// set granted to the creator of each room.
func NewBuildService(
	guilds ports.GuildProvider,
	channels ports.ChannelProvider,
	manager ports.ChannelManager,
	notifier ports.NotificationSender,
	fullAccess domain.Permissions,
) *BuildService {
	return &BuildService{
		guilds:     guilds,
		channels:   channels,
		manager:    manager,
		notifier:   notifier,
		fullAccess: fullAccess,
	}
}

// Build creates a voice room in the category of the invoking channel, announces
// it and moves the invoker into it.
//
// Callers must have run the build checks first. A failure after the room was
// created leaves the room in place; it is reclaimed once observed empty.
func (b *BuildService) Build(ctx context.Context, input BuildInput) (*BuildOutput, error) {
	guild, err := b.guilds.Guild(ctx, input.GuildID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild: %w", err)
	}

	channel, err := b.channels.Channel(ctx, input.ChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel: %w", err)
	}
	if !channel.HasCategory() {
		return nil, fmt.Errorf("channel %d has no category", channel.ID)
	}

	category, err := b.channels.Channel(ctx, channel.ParentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}

	name := domain.SanitizeChannelName(input.RoomName)
	slog.Debug("sanitized channel name", "input", input.RoomName, "name", name)

	if err := b.notifier.SendTyping(ctx, input.ChannelID); err != nil {
		return nil, fmt.Errorf("failed to send typing indicator: %w", err)
	}

	room, err := b.manager.CreateVoiceChannel(ctx, domain.VoiceChannelParams{
		GuildID:  guild.ID,
		Name:     name,
		ParentID: category.ID,
		PermissionOverwrites: domain.RoomOverwrites(
			category.PermissionOverwrites,
			input.UserID,
			b.fullAccess,
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create voice channel: %w", err)
	}
	slog.Info("created temp channel",
		"guild", guild.ID,
		"channel", room.ID,
		"name", room.Name,
		"user", input.UserID,
	)

	if err := b.notifier.SendRoomBuilt(ctx, input.ChannelID, room.ID); err != nil {
		return nil, fmt.Errorf("failed to announce channel: %w", err)
	}

	if err := b.manager.MoveMember(ctx, guild.ID, input.UserID, room.ID); err != nil {
		return nil, fmt.Errorf("failed to move member: %w", err)
	}
	slog.Debug("moved command caller to the created channel",
		"guild", guild.ID,
		"channel", room.ID,
		"user", input.UserID,
	)

	return &BuildOutput{Room: room}, nil
}
