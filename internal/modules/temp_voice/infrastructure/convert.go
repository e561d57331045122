package infrastructure

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/bob/internal/modules/temp_voice/domain"
)

// FullAccess is the permission set granted to the creator of a room.
const FullAccess = domain.Permissions(discordgo.PermissionAll)

// parseOptionalID parses a Discord ID, mapping the empty string to 0.
func parseOptionalID(id string) (snowflake.ID, error) {
	if id == "" {
		return 0, nil
	}
	return snowflake.Parse(id)
}

func optionalIDString(id snowflake.ID) string {
	if id == 0 {
		return ""
	}
	return id.String()
}

func toChannelKind(t discordgo.ChannelType) domain.ChannelKind {
	switch t {
	case discordgo.ChannelTypeGuildText, discordgo.ChannelTypeGuildNews:
		return domain.ChannelKindText
	case discordgo.ChannelTypeGuildVoice, discordgo.ChannelTypeGuildStageVoice:
		return domain.ChannelKindVoice
	case discordgo.ChannelTypeGuildCategory:
		return domain.ChannelKindCategory
	default:
		return domain.ChannelKindOther
	}
}

func toDomainChannel(c *discordgo.Channel) (*domain.Channel, error) {
	id, err := snowflake.Parse(c.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid channel ID %q: %w", c.ID, err)
	}
	guildID, err := parseOptionalID(c.GuildID)
	if err != nil {
		return nil, fmt.Errorf("invalid guild ID %q: %w", c.GuildID, err)
	}
	parentID, err := parseOptionalID(c.ParentID)
	if err != nil {
		return nil, fmt.Errorf("invalid parent ID %q: %w", c.ParentID, err)
	}

	overwrites := make([]domain.PermissionOverwrite, 0, len(c.PermissionOverwrites))
	for _, o := range c.PermissionOverwrites {
		overwrite, err := toDomainOverwrite(o)
		if err != nil {
			return nil, err
		}
		overwrites = append(overwrites, overwrite)
	}

	return &domain.Channel{
		ID:                   id,
		Name:                 c.Name,
		Kind:                 toChannelKind(c.Type),
		GuildID:              guildID,
		ParentID:             parentID,
		PermissionOverwrites: overwrites,
	}, nil
}

func toDomainOverwrite(o *discordgo.PermissionOverwrite) (domain.PermissionOverwrite, error) {
	targetID, err := snowflake.Parse(o.ID)
	if err != nil {
		return domain.PermissionOverwrite{}, fmt.Errorf("invalid overwrite target %q: %w", o.ID, err)
	}

	kind := domain.OverwriteKindRole
	if o.Type == discordgo.PermissionOverwriteTypeMember {
		kind = domain.OverwriteKindMember
	}

	return domain.PermissionOverwrite{
		TargetID: targetID,
		Kind:     kind,
		Allow:    domain.Permissions(o.Allow),
		Deny:     domain.Permissions(o.Deny),
	}, nil
}

func toDiscordOverwrites(overwrites []domain.PermissionOverwrite) []*discordgo.PermissionOverwrite {
	result := make([]*discordgo.PermissionOverwrite, 0, len(overwrites))
	for _, o := range overwrites {
		t := discordgo.PermissionOverwriteTypeRole
		if o.Kind == domain.OverwriteKindMember {
			t = discordgo.PermissionOverwriteTypeMember
		}
		result = append(result, &discordgo.PermissionOverwrite{
			ID:    o.TargetID.String(),
			Type:  t,
			Allow: int64(o.Allow),
			Deny:  int64(o.Deny),
		})
	}
	return result
}
