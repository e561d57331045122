package usecases

import (
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/bob/internal/modules/temp_voice/domain"
	"github.com/sglre6355/bob/internal/modules/temp_voice/testutil"
)

const designatedName = "lobby"

var (
	guildID         = snowflake.ID(1)
	categoryID      = snowflake.ID(10)
	lobbyID         = snowflake.ID(11)
	hangoutID       = snowflake.ID(12)
	generalID       = snowflake.ID(13)
	otherCategoryID = snowflake.ID(20)
	elsewhereID     = snowflake.ID(21)
	dmID            = snowflake.ID(30)
	userID          = snowflake.ID(100)
	otherUserID     = snowflake.ID(101)

	fullAccess = domain.Permissions(0x7FF)

	categoryOverwrites = []domain.PermissionOverwrite{
		{TargetID: guildID, Kind: domain.OverwriteKindRole, Deny: 1024},
		{TargetID: snowflake.ID(50), Kind: domain.OverwriteKindRole, Allow: 1024},
	}
)

// newPlatform builds a guild with a managed category holding #lobby and a
// voice channel, an uncategorised #general, and a second category with
// one voice channel.
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
		ID:       lobbyID,
		Name:     designatedName,
		Kind:     domain.ChannelKindText,
		GuildID:  guildID,
		ParentID: categoryID,
	})
	p.AddChannel(&domain.Channel{
		ID:       hangoutID,
		Name:     "hangout",
		Kind:     domain.ChannelKindVoice,
		GuildID:  guildID,
		ParentID: categoryID,
	})
	p.AddChannel(&domain.Channel{
		ID:      generalID,
		Name:    "general",
		Kind:    domain.ChannelKindText,
		GuildID: guildID,
	})
	p.AddChannel(&domain.Channel{
		ID:      otherCategoryID,
		Name:    "Voice",
		Kind:    domain.ChannelKindCategory,
		GuildID: guildID,
	})
	p.AddChannel(&domain.Channel{
		ID:       elsewhereID,
		Name:     "elsewhere",
		Kind:     domain.ChannelKindVoice,
		GuildID:  guildID,
		ParentID: otherCategoryID,
	})
	p.AddChannel(&domain.Channel{
		ID:   dmID,
		Name: "",
		Kind: domain.ChannelKindOther,
	})
	return p
}
