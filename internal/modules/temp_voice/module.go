package temp_voice

import (
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
	"github.com/sglre6355/bob/internal/bot"
	"github.com/sglre6355/bob/internal/modules/temp_voice/application/usecases"
	"github.com/sglre6355/bob/internal/modules/temp_voice/infrastructure"
	"github.com/sglre6355/bob/internal/modules/temp_voice/presentation"
)

func init() {
	bot.Register(&TempVoiceModule{})
}

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*TempVoiceModule)(nil)

// CommandBuild is the name of the room building command.
const CommandBuild = "build"

// TempVoiceModule builds temporary voice rooms on request and deletes them
// once they are empty.
type TempVoiceModule struct {
	config          *Config
	commandHandlers *presentation.CommandHandlers
	eventHandlers   *presentation.EventHandlers
}

// Name returns the module name.
func (m *TempVoiceModule) Name() string {
	return "temp_voice"
}

// Commands returns the text commands for this module.
func (m *TempVoiceModule) Commands() []*bot.Command {
	return []*bot.Command{
		{
			Name:        CommandBuild,
			Description: "Builds a temporary voice channel and moves you into it",
			GuildOnly:   true,
		},
	}
}

// CommandHandlers returns the command handlers for this module.
func (m *TempVoiceModule) CommandHandlers() map[string]bot.CommandHandler {
	return map[string]bot.CommandHandler{
		CommandBuild: m.commandHandlers.HandleBuild,
	}
}

// EventHandlers returns the event handlers for this module.
func (m *TempVoiceModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{
		func(s *discordgo.Session, event *discordgo.VoiceStateUpdate) {
			m.eventHandlers.HandleVoiceStateUpdate(s, event)
		},
	}
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *TempVoiceModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *TempVoiceModule) Init(deps bot.ModuleDependencies) error {
	if m.config == nil {
		return errors.New("temp_voice config not loaded")
	}
	if deps.Session == nil {
		return errors.New("temp_voice requires a Discord session")
	}

	// Create infrastructure
	channels := infrastructure.NewChannelProvider(deps.Session)
	manager := infrastructure.NewChannelManager(deps.Session)
	voiceState := infrastructure.NewVoiceStateProvider(deps.Session)
	notifier := infrastructure.NewNotifier(deps.Session)

	// Create services
	checks := usecases.NewBuildCheckPipeline(
		m.config.DesignatedChannelName,
		channels,
		channels,
		voiceState,
	)
	build := usecases.NewBuildService(
		channels,
		channels,
		manager,
		notifier,
		infrastructure.FullAccess,
	)
	cleanup := usecases.NewCleanupService(
		m.config.DesignatedChannelName,
		channels,
		channels,
		voiceState,
		manager,
		notifier,
	)

	// Create presentation handlers
	m.commandHandlers = presentation.NewCommandHandlers(checks, build)
	m.eventHandlers = presentation.NewEventHandlers(cleanup)

	return nil
}

// Shutdown cleans up module resources.
func (m *TempVoiceModule) Shutdown() error {
	return nil
}
