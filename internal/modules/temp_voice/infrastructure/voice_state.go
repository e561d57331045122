package infrastructure

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/bob/internal/modules/temp_voice/application/ports"
)

// Ensure VoiceStateProvider implements ports.VoiceStateProvider.
var _ ports.VoiceStateProvider = (*VoiceStateProvider)(nil)

// VoiceStateProvider provides Discord voice state information.
// Voice states are only delivered over the gateway, so they are read from
// the session state cache.
type VoiceStateProvider struct {
	session *discordgo.Session
}

// NewVoiceStateProvider creates a new VoiceStateProvider.
func NewVoiceStateProvider(session *discordgo.Session) *VoiceStateProvider {
	return &VoiceStateProvider{
		session: session,
	}
}

// GetUserVoiceChannel returns the voice channel ID that the user is currently in.
// Returns 0 if the user is not in a voice channel.
func (v *VoiceStateProvider) GetUserVoiceChannel(
	_ context.Context,
	guildID, userID snowflake.ID,
) (snowflake.ID, error) {
	var channelID snowflake.ID
	err := v.eachVoiceState(guildID, func(vs *discordgo.VoiceState) error {
		if vs.UserID != userID.String() || vs.ChannelID == "" {
			return nil
		}
		id, err := snowflake.Parse(vs.ChannelID)
		if err != nil {
			return err
		}
		channelID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return channelID, nil
}

// GetChannelOccupants returns the members currently connected to a voice channel.
func (v *VoiceStateProvider) GetChannelOccupants(
	_ context.Context,
	guildID, channelID snowflake.ID,
) ([]snowflake.ID, error) {
	var occupants []snowflake.ID
	err := v.eachVoiceState(guildID, func(vs *discordgo.VoiceState) error {
		if vs.ChannelID != channelID.String() {
			return nil
		}
		id, err := snowflake.Parse(vs.UserID)
		if err != nil {
			return err
		}
		occupants = append(occupants, id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return occupants, nil
}

func (v *VoiceStateProvider) eachVoiceState(
	guildID snowflake.ID,
	fn func(*discordgo.VoiceState) error,
) error {
	guild, err := v.session.State.Guild(guildID.String())
	if err != nil {
		return err
	}

	v.session.State.RLock()
	defer v.session.State.RUnlock()

	for _, vs := range guild.VoiceStates {
		if err := fn(vs); err != nil {
			return err
		}
	}
	return nil
}
