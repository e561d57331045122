package bot

import "github.com/bwmarrin/discordgo"

// Responder provides an abstraction for replying to a command.
// This interface enables testing handlers without a live Discord connection.
type Responder interface {
	// Send posts a message to the channel the command came from.
	Send(content string) error
}

// DiscordResponder implements Responder using a live Discord session.
type DiscordResponder struct {
	session   *discordgo.Session
	channelID string
}

// NewDiscordResponder creates a new DiscordResponder.
func NewDiscordResponder(s *discordgo.Session, channelID string) *DiscordResponder {
	return &DiscordResponder{
		session:   s,
		channelID: channelID,
	}
}

// Send sends a message to the command channel via Discord API.
func (r *DiscordResponder) Send(content string) error {
	_, err := r.session.ChannelMessageSend(r.channelID, content)
	return err
}

// MockResponder is a test double for Responder.
type MockResponder struct {
	Messages []string
	Err      error
}

// Send records the message for testing.
func (m *MockResponder) Send(content string) error {
	m.Messages = append(m.Messages, content)
	return m.Err
}

// LastMessage returns the most recent message, or "" if none was sent.
func (m *MockResponder) LastMessage() string {
	if len(m.Messages) == 0 {
		return ""
	}
	return m.Messages[len(m.Messages)-1]
}
