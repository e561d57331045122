package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/bob/internal/modules/temp_voice/domain"
)

// ChannelProvider reads channel data from the platform.
type ChannelProvider interface {
	// Channel fetches a channel by ID.
	// Returns an error wrapping domain.ErrChannelNotFound if it does not exist.
	Channel(ctx context.Context, channelID snowflake.ID) (*domain.Channel, error)

	// GuildChannels lists every channel of a guild, categories included.
	GuildChannels(ctx context.Context, guildID snowflake.ID) ([]*domain.Channel, error)
}

// ChannelManager performs channel writes on the platform.
type ChannelManager interface {
	// CreateVoiceChannel creates a voice channel and returns it.
	CreateVoiceChannel(ctx context.Context, params domain.VoiceChannelParams) (*domain.Channel, error)

	// DeleteChannel deletes a channel.
	// Returns an error wrapping domain.ErrChannelNotFound if it was already gone.
	DeleteChannel(ctx context.Context, channelID snowflake.ID) error

	// MoveMember moves a connected member to another voice channel.
	MoveMember(ctx context.Context, guildID, userID, channelID snowflake.ID) error
}
