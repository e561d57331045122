package domain

import (
	"fmt"

	"github.com/disgoorg/snowflake/v2"
)

// Audience tells who must learn about a rejected command.
type Audience int

const (
	// AudienceUnknown is used for reasons the reporter does not recognise.
	AudienceUnknown Audience = iota
	// AudienceUser rejections are expected and only shown to the invoker.
	AudienceUser
	// AudienceOperator rejections are logged but not shown to the invoker.
	AudienceOperator
	// AudienceBoth rejections are logged and shown to the invoker.
	AudienceBoth
)

// RejectionReason enumerates why a command precondition failed.
type RejectionReason int

const (
	ReasonUnknown RejectionReason = iota
	// ReasonChannelUnavailable: the invoking channel could not be fetched.
	ReasonChannelUnavailable
	// ReasonNotInGuild: the invoking channel is not part of a guild.
	ReasonNotInGuild
	// ReasonWrongChannel: the invoking channel is not the designated channel.
	ReasonWrongChannel
	// ReasonChannelsUnavailable: the guild channel list could not be fetched.
	ReasonChannelsUnavailable
	// ReasonDesignatedChannelAmbiguous: several channels carry the designated name.
	ReasonDesignatedChannelAmbiguous
	// ReasonNoCategory: the invoking channel has no parent category.
	ReasonNoCategory
	// ReasonCategoryUnavailable: the parent category could not be fetched.
	ReasonCategoryUnavailable
	// ReasonGuildUnavailable: the guild could not be fetched.
	ReasonGuildUnavailable
	// ReasonNotInVoice: the invoker is not connected to a voice channel.
	ReasonNotInVoice
)

var reasonNames = map[RejectionReason]string{
	ReasonChannelUnavailable:         "channel unavailable",
	ReasonNotInGuild:                 "not in guild",
	ReasonWrongChannel:               "wrong channel",
	ReasonChannelsUnavailable:        "guild channels unavailable",
	ReasonDesignatedChannelAmbiguous: "designated channel ambiguous",
	ReasonNoCategory:                 "no category",
	ReasonCategoryUnavailable:        "category unavailable",
	ReasonGuildUnavailable:           "guild unavailable",
	ReasonNotInVoice:                 "not in voice",
}

// String returns a short description of the reason.
func (r RejectionReason) String() string {
	if name, ok := reasonNames[r]; ok {
		return name
	}
	return "unknown"
}

// Audience returns who must be told about a rejection for this reason.
func (r RejectionReason) Audience() Audience {
	switch r {
	case ReasonNotInGuild, ReasonWrongChannel, ReasonNoCategory, ReasonNotInVoice:
		return AudienceUser
	case ReasonChannelUnavailable, ReasonChannelsUnavailable,
		ReasonCategoryUnavailable, ReasonGuildUnavailable:
		return AudienceOperator
	case ReasonDesignatedChannelAmbiguous:
		return AudienceBoth
	default:
		return AudienceUnknown
	}
}

// Rejection is the outcome of a failed command check. A nil *Rejection
// means the check passed.
type Rejection struct {
	// Check is the name of the check that failed.
	Check  string
	Reason RejectionReason

	GuildID   snowflake.ID
	ChannelID snowflake.ID
	UserID    snowflake.ID

	// DesignatedName is the configured designated-channel name, where relevant.
	DesignatedName string
	// Matches is the number of channels carrying DesignatedName.
	Matches int

	// Err is the platform error behind operator-facing reasons.
	Err error
}

// Error implements error.
func (r *Rejection) Error() string {
	if r.Err != nil {
		return fmt.Sprintf("check %s failed: %s: %v", r.Check, r.Reason, r.Err)
	}
	return fmt.Sprintf("check %s failed: %s", r.Check, r.Reason)
}

// Unwrap returns the underlying platform error, if any.
func (r *Rejection) Unwrap() error {
	return r.Err
}

// Audience returns who must be told about the rejection.
func (r *Rejection) Audience() Audience {
	return r.Reason.Audience()
}
