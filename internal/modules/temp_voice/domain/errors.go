package domain

import "errors"

// ErrChannelNotFound is returned by platform adapters when a channel no
// longer exists.
var ErrChannelNotFound = errors.New("channel not found")

// Reasons for leaving a vacated channel alone. None of them is a failure.
var (
	ErrUnknownGuild           = errors.New("unknown guild")
	ErrJustJoined             = errors.New("user just joined voice chat")
	ErrUnknownPreviousChannel = errors.New("user was in an unknown channel")
	ErrSameChannel            = errors.New("user stayed in the same channel")
	ErrChannelGone            = errors.New("previous channel no longer exists")
	ErrNotGuildChannel        = errors.New("previous channel was not in a guild")
	ErrNoCategory             = errors.New("previous channel isn't in any category")
	ErrChannelNotEmpty        = errors.New("channel isn't empty")
	ErrNoDesignatedChannel    = errors.New("no designated channel found")
	ErrNoDesignatedCategory   = errors.New("designated channel has no category")
	ErrOutsideManagedCategory = errors.New("channel isn't in the managed category")
)

// IsSkip reports whether err only means that no cleanup is needed.
func IsSkip(err error) bool {
	for _, skip := range []error{
		ErrUnknownGuild,
		ErrJustJoined,
		ErrUnknownPreviousChannel,
		ErrSameChannel,
		ErrChannelGone,
		ErrNotGuildChannel,
		ErrNoCategory,
		ErrChannelNotEmpty,
		ErrNoDesignatedChannel,
		ErrNoDesignatedCategory,
		ErrOutsideManagedCategory,
	} {
		if errors.Is(err, skip) {
			return true
		}
	}
	return false
}
