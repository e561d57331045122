package infrastructure

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/bob/internal/modules/temp_voice/application/ports"
	"github.com/sglre6355/bob/internal/modules/temp_voice/domain"
)

var (
	_ ports.ChannelProvider = (*ChannelProvider)(nil)
	_ ports.GuildProvider   = (*ChannelProvider)(nil)
)

// ChannelProvider reads channels and guilds from Discord.
// Channel data always comes from the REST API so decisions use fresh data.
type ChannelProvider struct {
	session *discordgo.Session
}

// NewChannelProvider creates a new ChannelProvider.
func NewChannelProvider(session *discordgo.Session) *ChannelProvider {
	return &ChannelProvider{session: session}
}

// Channel fetches a channel by ID.
func (p *ChannelProvider) Channel(ctx context.Context, channelID snowflake.ID) (*domain.Channel, error) {
	channel, err := p.session.Channel(channelID.String(), discordgo.WithContext(ctx))
	if err != nil {
		return nil, channelError(err)
	}
	return toDomainChannel(channel)
}

// GuildChannels lists the channels of a guild.
func (p *ChannelProvider) GuildChannels(
	ctx context.Context,
	guildID snowflake.ID,
) ([]*domain.Channel, error) {
	channels, err := p.session.GuildChannels(guildID.String(), discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Channel, 0, len(channels))
	for _, c := range channels {
		channel, err := toDomainChannel(c)
		if err != nil {
			return nil, err
		}
		result = append(result, channel)
	}
	return result, nil
}

// Guild returns a guild from the state cache, falling back to the REST API.
func (p *ChannelProvider) Guild(ctx context.Context, guildID snowflake.ID) (*domain.Guild, error) {
	guild, err := p.session.State.Guild(guildID.String())
	if err != nil {
		guild, err = p.session.Guild(guildID.String(), discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to fetch guild: %w", err)
		}
	}

	return &domain.Guild{ID: guildID, Name: guild.Name}, nil
}
