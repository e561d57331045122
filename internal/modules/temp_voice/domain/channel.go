package domain

import "github.com/disgoorg/snowflake/v2"

// ChannelKind classifies guild channels by what the lifecycle manager cares about.
type ChannelKind int

const (
	ChannelKindOther ChannelKind = iota
	ChannelKindText
	ChannelKindVoice
	ChannelKindCategory
)

// String returns the lowercase name of the kind.
func (k ChannelKind) String() string {
	switch k {
	case ChannelKindText:
		return "text"
	case ChannelKindVoice:
		return "voice"
	case ChannelKindCategory:
		return "category"
	default:
		return "other"
	}
}

// Channel is a snapshot of a platform channel. Categories are channels too.
type Channel struct {
	ID   snowflake.ID
	Name string
	Kind ChannelKind
	// GuildID is 0 for channels outside a guild (e.g. direct messages).
	GuildID snowflake.ID
	// ParentID is the category the channel belongs to, 0 if none.
	ParentID             snowflake.ID
	PermissionOverwrites []PermissionOverwrite
}

// InGuild reports whether the channel belongs to a guild.
func (c *Channel) InGuild() bool {
	return c.GuildID != 0
}

// HasCategory reports whether the channel sits inside a category.
func (c *Channel) HasCategory() bool {
	return c.ParentID != 0
}

// Guild is a snapshot of a guild.
type Guild struct {
	ID   snowflake.ID
	Name string
}

// VoiceChannelParams describes a voice channel to be created.
type VoiceChannelParams struct {
	GuildID              snowflake.ID
	Name                 string
	ParentID             snowflake.ID
	PermissionOverwrites []PermissionOverwrite
}

// FindChannelByName returns the first channel named name, or nil.
func FindChannelByName(channels []*Channel, name string) *Channel {
	for _, c := range channels {
		if c != nil && c.Name == name {
			return c
		}
	}
	return nil
}

// CountChannelsByName returns how many channels are named name.
func CountChannelsByName(channels []*Channel, name string) int {
	n := 0
	for _, c := range channels {
		if c != nil && c.Name == name {
			n++
		}
	}
	return n
}
