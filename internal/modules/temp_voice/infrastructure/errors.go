package infrastructure

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/bob/internal/modules/temp_voice/domain"
)

// isUnknownChannel reports whether err is Discord's answer for a channel
// that does not exist.
func isUnknownChannel(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}
	if restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownChannel {
		return true
	}
	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}

// channelError maps unknown-channel responses to domain.ErrChannelNotFound.
func channelError(err error) error {
	if isUnknownChannel(err) {
		return fmt.Errorf("%w: %w", domain.ErrChannelNotFound, err)
	}
	return err
}
