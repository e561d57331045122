package presentation

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/bob/internal/bot"
	"github.com/sglre6355/bob/internal/modules/temp_voice/application/usecases"
)

// CommandHandlers holds the temp_voice command handlers.
type CommandHandlers struct {
	checks *usecases.CheckPipeline
	build  *usecases.BuildService
}

// NewCommandHandlers creates new CommandHandlers.
func NewCommandHandlers(
	checks *usecases.CheckPipeline,
	build *usecases.BuildService,
) *CommandHandlers {
	return &CommandHandlers{
		checks: checks,
		build:  build,
	}
}

// HandleBuild handles the build command. args is the requested room name.
func (h *CommandHandlers) HandleBuild(
	_ *discordgo.Session,
	m *discordgo.MessageCreate,
	args string,
	_ bot.Responder,
) error {
	if m.GuildID == "" {
		return bot.ErrGuildOnly
	}

	ctx := context.Background()

	guildID, err := snowflake.Parse(m.GuildID)
	if err != nil {
		return fmt.Errorf("invalid guild ID: %w", err)
	}
	channelID, err := snowflake.Parse(m.ChannelID)
	if err != nil {
		return fmt.Errorf("invalid channel ID: %w", err)
	}
	userID, err := snowflake.Parse(m.Author.ID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	if rejection := h.checks.Run(ctx, usecases.CheckInput{
		GuildID:   guildID,
		ChannelID: channelID,
		UserID:    userID,
	}); rejection != nil {
		return rejectionError(rejection)
	}

	_, err = h.build.Build(ctx, usecases.BuildInput{
		GuildID:   guildID,
		ChannelID: channelID,
		UserID:    userID,
		RoomName:  args,
	})
	return err
}
