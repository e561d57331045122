package domain

import "github.com/disgoorg/snowflake/v2"

// Permissions is a platform permission bit set.
type Permissions int64

// OverwriteKind tells whether an overwrite targets a role or a member.
type OverwriteKind int

const (
	OverwriteKindRole OverwriteKind = iota
	OverwriteKindMember
)

// PermissionOverwrite is a per-role or per-member allow/deny exception on a channel.
type PermissionOverwrite struct {
	TargetID snowflake.ID
	Kind     OverwriteKind
	Allow    Permissions
	Deny     Permissions
}

// RoomOverwrites returns the overwrites for a new temporary room: a copy of
// the category template followed by a grant of full access to the creator.
// The template is not modified.
func RoomOverwrites(
	template []PermissionOverwrite,
	creatorID snowflake.ID,
	fullAccess Permissions,
) []PermissionOverwrite {
	overwrites := make([]PermissionOverwrite, len(template), len(template)+1)
	copy(overwrites, template)

	return append(overwrites, PermissionOverwrite{
		TargetID: creatorID,
		Kind:     OverwriteKindMember,
		Allow:    fullAccess,
		Deny:     0,
	})
}
