package presentation

import (
	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/bob/internal/modules/temp_voice/application/usecases"
	"github.com/sglre6355/bob/internal/modules/temp_voice/domain"
	"github.com/sglre6355/bob/internal/modules/temp_voice/testutil"
)

const designatedName = "lobby"

var (
	guildID     = snowflake.ID(1)
	categoryID  = snowflake.ID(10)
	lobbyID     = snowflake.ID(11)
	hangoutID   = snowflake.ID(12)
	generalID   = snowflake.ID(13)
	elsewhereID = snowflake.ID(21)
	userID      = snowflake.ID(100)
	otherUserID = snowflake.ID(101)

	fullAccess = domain.Permissions(0x7FF)

	categoryOverwrites = []domain.PermissionOverwrite{
		{TargetID: guildID, Kind: domain.OverwriteKindRole, Deny: 1024},
	}
)

// newPlatform builds a guild with #lobby and a voice channel inside the
// managed category, an uncategorised #general and a voice channel in
// another category.
func newPlatform() *testutil.Platform {
	p := testutil.NewPlatform()
	p.AddGuild(guildID, "test guild")
	p.AddChannel(&domain.Channel{
		ID:                   categoryID,
		Name:                 "Temp Rooms",
		Kind:                 domain.ChannelKindCategory,
		GuildID:              guildID,
		PermissionOverwrites: categoryOverwrites,
	})
	p.AddChannel(&domain.Channel{
		ID: lobbyID, Name: designatedName, Kind: domain.ChannelKindText,
		GuildID: guildID, ParentID: categoryID,
	})
	p.AddChannel(&domain.Channel{
		ID: hangoutID, Name: "hangout", Kind: domain.ChannelKindVoice,
		GuildID: guildID, ParentID: categoryID,
	})
	p.AddChannel(&domain.Channel{
		ID: generalID, Name: "general", Kind: domain.ChannelKindText, GuildID: guildID,
	})
	p.AddChannel(&domain.Channel{
		ID: snowflake.ID(20), Name: "Voice", Kind: domain.ChannelKindCategory, GuildID: guildID,
	})
	p.AddChannel(&domain.Channel{
		ID: elsewhereID, Name: "elsewhere", Kind: domain.ChannelKindVoice,
		GuildID: guildID, ParentID: snowflake.ID(20),
	})
	return p
}

func newCommandHandlers(p *testutil.Platform) *CommandHandlers {
	return NewCommandHandlers(
		usecases.NewBuildCheckPipeline(designatedName, p, p, p),
		usecases.NewBuildService(p, p, p, p, fullAccess),
	)
}

func newEventHandlers(p *testutil.Platform) *EventHandlers {
	return NewEventHandlers(usecases.NewCleanupService(designatedName, p, p, p, p, p))
}

func buildMessage(channelID snowflake.ID, content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{Message: &discordgo.Message{
		GuildID:   guildID.String(),
		ChannelID: channelID.String(),
		Content:   content,
		Author:    &discordgo.User{ID: userID.String()},
	}}
}

func voiceStateUpdate(user, from, to snowflake.ID) *discordgo.VoiceStateUpdate {
	event := &discordgo.VoiceStateUpdate{
		VoiceState: &discordgo.VoiceState{
			GuildID: guildID.String(),
			UserID:  user.String(),
		},
		BeforeUpdate: &discordgo.VoiceState{
			GuildID:   guildID.String(),
			UserID:    user.String(),
			ChannelID: from.String(),
		},
	}
	if to != 0 {
		event.ChannelID = to.String()
	}
	return event
}
