// Package testutil provides an in-memory platform for temp_voice tests.
//
// [Platform] implements every port of the temp_voice application layer
// against maps, records each write it receives and lets tests inject
// failures per operation. Deleting a channel twice yields
// domain.ErrChannelNotFound, like the real platform.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/bob/internal/modules/temp_voice/application/ports"
	"github.com/sglre6355/bob/internal/modules/temp_voice/domain"
)

var (
	_ ports.ChannelProvider    = (*Platform)(nil)
	_ ports.ChannelManager     = (*Platform)(nil)
	_ ports.GuildProvider      = (*Platform)(nil)
	_ ports.VoiceStateProvider = (*Platform)(nil)
	_ ports.NotificationSender = (*Platform)(nil)
)

// ErrGuildNotFound is returned for guilds that were never added.
var ErrGuildNotFound = errors.New("guild not found")

// Move records a MoveMember call.
type Move struct {
	GuildID   snowflake.ID
	UserID    snowflake.ID
	ChannelID snowflake.ID
}

// Announcement records a message sent by the notifier methods.
type Announcement struct {
	ChannelID snowflake.ID
	RoomID    snowflake.ID
	RoomName  string
}

// Platform is an in-memory, concurrency-safe platform double.
type Platform struct {
	mu sync.Mutex

	guilds      map[snowflake.ID]*domain.Guild
	channels    []*domain.Channel
	voiceStates map[snowflake.ID]snowflake.ID // userID -> channelID
	nextID      snowflake.ID

	// Injected failures. ChannelErrs applies to Channel lookups by ID.
	GuildErr         error
	ChannelErrs      map[snowflake.ID]error
	GuildChannelsErr error
	VoiceStateErr    error
	CreateErr        error
	DeleteErr        error
	MoveErr          error
	TypingErr        error
	AnnounceErr      error

	// Recorded writes.
	Created      []domain.VoiceChannelParams
	Deleted      []snowflake.ID
	Moves        []Move
	Typing       []snowflake.ID
	BuiltNotices []Announcement
	GoneNotices  []Announcement
}

// NewPlatform creates an empty Platform. Created channels get IDs from 1000.
func NewPlatform() *Platform {
	return &Platform{
		guilds:      make(map[snowflake.ID]*domain.Guild),
		voiceStates: make(map[snowflake.ID]snowflake.ID),
		ChannelErrs: make(map[snowflake.ID]error),
		nextID:      1000,
	}
}

// AddGuild adds a guild.
func (p *Platform) AddGuild(id snowflake.ID, name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.guilds[id] = &domain.Guild{ID: id, Name: name}
}

// AddChannel adds a channel. Channels are listed in insertion order.
func (p *Platform) AddChannel(channel *domain.Channel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.channels = append(p.channels, channel)
}

// SetVoiceChannel connects a user to a voice channel, or disconnects them when channelID is 0.
func (p *Platform) SetVoiceChannel(userID, channelID snowflake.ID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if channelID == 0 {
		delete(p.voiceStates, userID)
		return
	}
	p.voiceStates[userID] = channelID
}

// HasChannel reports whether a channel currently exists.
func (p *Platform) HasChannel(channelID snowflake.ID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.find(channelID) >= 0
}

func (p *Platform) find(channelID snowflake.ID) int {
	for i, c := range p.channels {
		if c.ID == channelID {
			return i
		}
	}
	return -1
}

func cloneChannel(c *domain.Channel) *domain.Channel {
	clone := *c
	clone.PermissionOverwrites = append([]domain.PermissionOverwrite(nil), c.PermissionOverwrites...)
	return &clone
}

// Guild implements ports.GuildProvider.
func (p *Platform) Guild(_ context.Context, guildID snowflake.ID) (*domain.Guild, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.GuildErr != nil {
		return nil, p.GuildErr
	}
	guild, ok := p.guilds[guildID]
	if !ok {
		return nil, fmt.Errorf("guild %d: %w", guildID, ErrGuildNotFound)
	}
	clone := *guild
	return &clone, nil
}

// Channel implements ports.ChannelProvider.
func (p *Platform) Channel(_ context.Context, channelID snowflake.ID) (*domain.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ChannelErrs[channelID]; err != nil {
		return nil, err
	}
	i := p.find(channelID)
	if i < 0 {
		return nil, fmt.Errorf("channel %d: %w", channelID, domain.ErrChannelNotFound)
	}
	return cloneChannel(p.channels[i]), nil
}

// GuildChannels implements ports.ChannelProvider.
func (p *Platform) GuildChannels(_ context.Context, guildID snowflake.ID) ([]*domain.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.GuildChannelsErr != nil {
		return nil, p.GuildChannelsErr
	}
	var channels []*domain.Channel
	for _, c := range p.channels {
		if c.GuildID == guildID {
			channels = append(channels, cloneChannel(c))
		}
	}
	return channels, nil
}

// GetUserVoiceChannel implements ports.VoiceStateProvider.
func (p *Platform) GetUserVoiceChannel(
	_ context.Context,
	_, userID snowflake.ID,
) (snowflake.ID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.VoiceStateErr != nil {
		return 0, p.VoiceStateErr
	}
	return p.voiceStates[userID], nil
}

// GetChannelOccupants implements ports.VoiceStateProvider.
func (p *Platform) GetChannelOccupants(
	_ context.Context,
	_, channelID snowflake.ID,
) ([]snowflake.ID, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.VoiceStateErr != nil {
		return nil, p.VoiceStateErr
	}
	var occupants []snowflake.ID
	for userID, current := range p.voiceStates {
		if current == channelID {
			occupants = append(occupants, userID)
		}
	}
	return occupants, nil
}

// CreateVoiceChannel implements ports.ChannelManager.
func (p *Platform) CreateVoiceChannel(
	_ context.Context,
	params domain.VoiceChannelParams,
) (*domain.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.CreateErr != nil {
		return nil, p.CreateErr
	}
	p.Created = append(p.Created, params)
	channel := &domain.Channel{
		ID:                   p.nextID,
		Name:                 params.Name,
		Kind:                 domain.ChannelKindVoice,
		GuildID:              params.GuildID,
		ParentID:             params.ParentID,
		PermissionOverwrites: params.PermissionOverwrites,
	}
	p.nextID++
	p.channels = append(p.channels, channel)
	return cloneChannel(channel), nil
}

// DeleteChannel implements ports.ChannelManager.
func (p *Platform) DeleteChannel(_ context.Context, channelID snowflake.ID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.DeleteErr != nil {
		return p.DeleteErr
	}
	i := p.find(channelID)
	if i < 0 {
		return fmt.Errorf("channel %d: %w", channelID, domain.ErrChannelNotFound)
	}
	p.channels = append(p.channels[:i], p.channels[i+1:]...)
	p.Deleted = append(p.Deleted, channelID)
	return nil
}

// MoveMember implements ports.ChannelManager.
func (p *Platform) MoveMember(_ context.Context, guildID, userID, channelID snowflake.ID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.MoveErr != nil {
		return p.MoveErr
	}
	p.Moves = append(p.Moves, Move{GuildID: guildID, UserID: userID, ChannelID: channelID})
	p.voiceStates[userID] = channelID
	return nil
}

// SendTyping implements ports.NotificationSender.
func (p *Platform) SendTyping(_ context.Context, channelID snowflake.ID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.TypingErr != nil {
		return p.TypingErr
	}
	p.Typing = append(p.Typing, channelID)
	return nil
}

// SendRoomBuilt implements ports.NotificationSender.
func (p *Platform) SendRoomBuilt(_ context.Context, channelID, roomID snowflake.ID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.AnnounceErr != nil {
		return p.AnnounceErr
	}
	p.BuiltNotices = append(p.BuiltNotices, Announcement{ChannelID: channelID, RoomID: roomID})
	return nil
}

// SendRoomDeleted implements ports.NotificationSender.
func (p *Platform) SendRoomDeleted(_ context.Context, channelID snowflake.ID, roomName string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.AnnounceErr != nil {
		return p.AnnounceErr
	}
	p.GoneNotices = append(p.GoneNotices, Announcement{ChannelID: channelID, RoomName: roomName})
	return nil
}
