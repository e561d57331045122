package infrastructure

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/bob/internal/modules/temp_voice/application/ports"
)

var _ ports.NotificationSender = (*Notifier)(nil)

// Notifier sends room announcements to Discord channels.
type Notifier struct {
	session *discordgo.Session
}

// NewNotifier creates a new Notifier.
func NewNotifier(session *discordgo.Session) *Notifier {
	return &Notifier{session: session}
}

// SendTyping shows the typing indicator in a channel.
func (n *Notifier) SendTyping(ctx context.Context, channelID snowflake.ID) error {
	return n.session.ChannelTyping(channelID.String(), discordgo.WithContext(ctx))
}

// SendRoomBuilt announces a newly built room.
func (n *Notifier) SendRoomBuilt(ctx context.Context, channelID, roomID snowflake.ID) error {
	_, err := n.session.ChannelMessageSend(
		channelID.String(),
		RoomBuiltMessage(roomID),
		discordgo.WithContext(ctx),
	)
	return err
}

// SendRoomDeleted announces the removal of an empty room.
func (n *Notifier) SendRoomDeleted(ctx context.Context, channelID snowflake.ID, roomName string) error {
	_, err := n.session.ChannelMessageSend(
		channelID.String(),
		RoomDeletedMessage(roomName),
		discordgo.WithContext(ctx),
	)
	return err
}

// RoomBuiltMessage is the announcement for a new room. It mentions the room
// so members can click through to it.
func RoomBuiltMessage(roomID snowflake.ID) string {
	return fmt.Sprintf("🔨 Temp channel <#%s> was built.", roomID)
}

// RoomDeletedMessage is the announcement for a deleted room. A mention of a
// deleted channel does not render, so the name is used instead.
func RoomDeletedMessage(roomName string) string {
	return fmt.Sprintf("🗑 Temp channel #%s was deleted, as it was empty.", roomName)
}
