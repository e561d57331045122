package infrastructure

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/bob/internal/modules/temp_voice/application/ports"
	"github.com/sglre6355/bob/internal/modules/temp_voice/domain"
)

var _ ports.ChannelManager = (*ChannelManager)(nil)

// ChannelManager creates, deletes and populates Discord channels.
type ChannelManager struct {
	session *discordgo.Session
}

// NewChannelManager creates a new ChannelManager.
func NewChannelManager(session *discordgo.Session) *ChannelManager {
	return &ChannelManager{session: session}
}

// CreateVoiceChannel creates a voice channel.
func (m *ChannelManager) CreateVoiceChannel(
	ctx context.Context,
	params domain.VoiceChannelParams,
) (*domain.Channel, error) {
	channel, err := m.session.GuildChannelCreateComplex(
		params.GuildID.String(),
		discordgo.GuildChannelCreateData{
			Name:                 params.Name,
			Type:                 discordgo.ChannelTypeGuildVoice,
			ParentID:             optionalIDString(params.ParentID),
			PermissionOverwrites: toDiscordOverwrites(params.PermissionOverwrites),
		},
		discordgo.WithContext(ctx),
	)
	if err != nil {
		return nil, err
	}
	return toDomainChannel(channel)
}

// DeleteChannel deletes a channel.
func (m *ChannelManager) DeleteChannel(ctx context.Context, channelID snowflake.ID) error {
	_, err := m.session.ChannelDelete(channelID.String(), discordgo.WithContext(ctx))
	return channelError(err)
}

// MoveMember moves a member to a voice channel.
func (m *ChannelManager) MoveMember(ctx context.Context, guildID, userID, channelID snowflake.ID) error {
	target := channelID.String()
	return m.session.GuildMemberMove(
		guildID.String(),
		userID.String(),
		&target,
		discordgo.WithContext(ctx),
	)
}
