package ports

import (
	"context"

	"github.com/disgoorg/snowflake/v2"
)

// NotificationSender defines the interface for announcing room changes in chat.
type NotificationSender interface {
	// SendTyping shows the typing indicator in a channel.
	SendTyping(ctx context.Context, channelID snowflake.ID) error

	// SendRoomBuilt announces a newly built room.
	SendRoomBuilt(ctx context.Context, channelID, roomID snowflake.ID) error

	// SendRoomDeleted announces the removal of an empty room.
	SendRoomDeleted(ctx context.Context, channelID snowflake.ID, roomName string) error
}
