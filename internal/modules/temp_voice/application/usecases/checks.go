package usecases

import (
	"context"
	"fmt"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/bob/internal/modules/temp_voice/application/ports"
	"github.com/sglre6355/bob/internal/modules/temp_voice/domain"
)

// Check names, as reported in rejections.
const (
	CheckMatchChannelName       = "MatchChannelName"
	CheckEnsureCategory         = "EnsureCategory"
	CheckEnsureConnectedToVoice = "EnsureConnectedToVoice"
)

// CheckInput identifies the command invocation being checked.
type CheckInput struct {
	GuildID   snowflake.ID
	ChannelID snowflake.ID
	UserID    snowflake.ID
}

// Check is a command precondition. It returns nil when the precondition holds.
type Check func(ctx context.Context, input CheckInput) *domain.Rejection

// CheckPipeline evaluates checks in order and stops at the first rejection.
type CheckPipeline struct {
	checks []Check
}

// NewCheckPipeline creates a CheckPipeline from the given checks.
func NewCheckPipeline(checks ...Check) *CheckPipeline {
	return &CheckPipeline{checks: checks}
}

// NewBuildCheckPipeline returns the checks guarding the build command.
func NewBuildCheckPipeline(
	designatedName string,
	channels ports.ChannelProvider,
	guilds ports.GuildProvider,
	voiceState ports.VoiceStateProvider,
) *CheckPipeline {
	return NewCheckPipeline(
		MatchChannelName(designatedName, channels),
		EnsureCategory(channels),
		EnsureConnectedToVoice(guilds, voiceState),
	)
}

// Run evaluates every check and returns the first rejection, or nil.
func (p *CheckPipeline) Run(ctx context.Context, input CheckInput) *domain.Rejection {
	for _, check := range p.checks {
		if rejection := check(ctx, input); rejection != nil {
			return rejection
		}
	}
	return nil
}

func reject(
	check string,
	reason domain.RejectionReason,
	input CheckInput,
	err error,
) *domain.Rejection {
	return &domain.Rejection{
		Check:     check,
		Reason:    reason,
		GuildID:   input.GuildID,
		ChannelID: input.ChannelID,
		UserID:    input.UserID,
		Err:       err,
	}
}

// MatchChannelName accepts commands sent from the one channel named designatedName.
func MatchChannelName(designatedName string, channels ports.ChannelProvider) Check {
	return func(ctx context.Context, input CheckInput) *domain.Rejection {
		channel, err := channels.Channel(ctx, input.ChannelID)
		if err != nil {
			return reject(CheckMatchChannelName, domain.ReasonChannelUnavailable, input, err)
		}
		if !channel.InGuild() {
			return reject(CheckMatchChannelName, domain.ReasonNotInGuild, input, nil)
		}
		if channel.Name != designatedName {
			rejection := reject(CheckMatchChannelName, domain.ReasonWrongChannel, input, nil)
			rejection.DesignatedName = designatedName
			return rejection
		}

		all, err := channels.GuildChannels(ctx, channel.GuildID)
		if err != nil {
			return reject(CheckMatchChannelName, domain.ReasonChannelsUnavailable, input, err)
		}
		if matches := domain.CountChannelsByName(all, designatedName); matches > 1 {
			rejection := reject(CheckMatchChannelName, domain.ReasonDesignatedChannelAmbiguous, input, nil)
			rejection.DesignatedName = designatedName
			rejection.Matches = matches
			return rejection
		}

		return nil
	}
}

// EnsureCategory accepts commands sent from a channel inside a category.
func EnsureCategory(channels ports.ChannelProvider) Check {
	return func(ctx context.Context, input CheckInput) *domain.Rejection {
		channel, err := channels.Channel(ctx, input.ChannelID)
		if err != nil {
			return reject(CheckEnsureCategory, domain.ReasonChannelUnavailable, input, err)
		}
		if !channel.InGuild() {
			return reject(CheckEnsureCategory, domain.ReasonNotInGuild, input, nil)
		}
		if !channel.HasCategory() {
			return reject(CheckEnsureCategory, domain.ReasonNoCategory, input, nil)
		}

		category, err := channels.Channel(ctx, channel.ParentID)
		if err != nil {
			return reject(CheckEnsureCategory, domain.ReasonCategoryUnavailable, input, err)
		}
		if category.Kind != domain.ChannelKindCategory {
			err := fmt.Errorf("parent %d is a %s channel", category.ID, category.Kind)
			return reject(CheckEnsureCategory, domain.ReasonCategoryUnavailable, input, err)
		}

		return nil
	}
}

// EnsureConnectedToVoice accepts commands from members connected to voice.
func EnsureConnectedToVoice(
	guilds ports.GuildProvider,
	voiceState ports.VoiceStateProvider,
) Check {
	return func(ctx context.Context, input CheckInput) *domain.Rejection {
		if input.GuildID == 0 {
			return reject(CheckEnsureConnectedToVoice, domain.ReasonNotInGuild, input, nil)
		}
		if _, err := guilds.Guild(ctx, input.GuildID); err != nil {
			return reject(CheckEnsureConnectedToVoice, domain.ReasonGuildUnavailable, input, err)
		}

		voiceChannelID, err := voiceState.GetUserVoiceChannel(ctx, input.GuildID, input.UserID)
		if err != nil {
			return reject(CheckEnsureConnectedToVoice, domain.ReasonGuildUnavailable, input, err)
		}
		if voiceChannelID == 0 {
			return reject(CheckEnsureConnectedToVoice, domain.ReasonNotInVoice, input, nil)
		}

		return nil
	}
}
