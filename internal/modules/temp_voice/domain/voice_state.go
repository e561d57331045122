package domain

import "github.com/disgoorg/snowflake/v2"

// VoiceState records which voice channel a member occupies.
// ChannelID is 0 when the member is not connected.
type VoiceState struct {
	UserID    snowflake.ID
	ChannelID snowflake.ID
}

// Connected reports whether the member is in a voice channel.
func (v VoiceState) Connected() bool {
	return v.ChannelID != 0
}
