package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
)

// VoiceStateProvider defines the interface for getting voice presence information.
type VoiceStateProvider interface {
	// GetUserVoiceChannel returns the voice channel ID the user is currently in.
	// Returns 0 if the user is not in a voice channel.
	GetUserVoiceChannel(ctx context.Context, guildID, userID snowflake.ID) (snowflake.ID, error)

	// GetChannelOccupants returns the IDs of the members currently in a voice channel.
	GetChannelOccupants(ctx context.Context, guildID, channelID snowflake.ID) ([]snowflake.ID, error)
}
