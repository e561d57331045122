package presentation

import (
	"fmt"

	"github.com/sglre6355/bob/internal/bot"
	"github.com/sglre6355/bob/internal/modules/temp_voice/domain"
)

// rejectionError renders a rejection for the error reporter. Only the parts
// meant for the rejection's audience are filled in.
func rejectionError(r *domain.Rejection) *bot.CheckFailedError {
	err := &bot.CheckFailedError{Check: r.Check}

	switch r.Audience() {
	case domain.AudienceUser:
		err.UserMessage = userMessage(r)
	case domain.AudienceOperator:
		err.LogDetail = logDetail(r)
	case domain.AudienceBoth:
		err.UserMessage = userMessage(r)
		err.LogDetail = logDetail(r)
	}

	return err
}

func userMessage(r *domain.Rejection) string {
	switch r.Reason {
	case domain.ReasonNotInGuild:
		return "This channel isn't inside a server."
	case domain.ReasonWrongChannel:
		return fmt.Sprintf("This channel isn't named #%s, so commands won't run here.", r.DesignatedName)
	case domain.ReasonDesignatedChannelAmbiguous:
		return fmt.Sprintf(
			"There is more than one channel named #%s, so commands won't run until that is fixed.",
			r.DesignatedName,
		)
	case domain.ReasonNoCategory:
		return "This channel isn't inside a category."
	case domain.ReasonNotInVoice:
		return "You must be connected to a voice channel in order to run this command."
	default:
		return ""
	}
}

func logDetail(r *domain.Rejection) string {
	var detail string
	switch r.Reason {
	case domain.ReasonChannelUnavailable:
		detail = fmt.Sprintf("could not fetch channel %d", r.ChannelID)
	case domain.ReasonChannelsUnavailable:
		detail = fmt.Sprintf("could not list channels of guild %d", r.GuildID)
	case domain.ReasonDesignatedChannelAmbiguous:
		detail = fmt.Sprintf("found %d channels named %q in guild %d", r.Matches, r.DesignatedName, r.GuildID)
	case domain.ReasonCategoryUnavailable:
		detail = fmt.Sprintf("could not fetch the category of channel %d", r.ChannelID)
	case domain.ReasonGuildUnavailable:
		detail = fmt.Sprintf("could not fetch guild %d or its voice states", r.GuildID)
	default:
		detail = r.Reason.String()
	}

	if r.Err != nil {
		return detail + ": " + r.Err.Error()
	}
	return detail
}
