package bot

import (
	"fmt"
	"log/slog"
	"maps"

	"github.com/bwmarrin/discordgo"
)

// Intents requested on the gateway connection. Message content is needed to
// read prefixed commands, voice states to track room occupancy.
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsGuildVoiceStates |
	discordgo.IntentMessageContent

// Bot manages the Discord bot lifecycle and module coordination.
type Bot struct {
	config   *Config
	session  *discordgo.Session
	modules  []Module
	commands map[string]*Command
	handlers map[string]CommandHandler
	reporter *ErrorReporter
}

// NewBot creates a new Bot instance with the given configuration.
func NewBot(cfg *Config) *Bot {
	return &Bot{
		config:   cfg,
		modules:  make([]Module, 0),
		commands: make(map[string]*Command),
		handlers: make(map[string]CommandHandler),
		reporter: NewErrorReporter(),
	}
}

// LoadModules loads modules from the global registry.
func (b *Bot) LoadModules() {
	b.modules = Modules()
}

// LoadModuleConfigs loads the configuration of every module implementing
// ConfigurableModule. It must run before Start.
func (b *Bot) LoadModuleConfigs() error {
	for _, mod := range b.modules {
		configurable, ok := mod.(ConfigurableModule)
		if !ok {
			continue
		}
		if err := configurable.LoadConfig(); err != nil {
			return fmt.Errorf("failed to load %s module config: %w", mod.Name(), err)
		}
		slog.Debug("loaded module config", "module", mod.Name())
	}
	return nil
}

// Start initializes the bot and connects to Discord.
func (b *Bot) Start() error {
	// Create Discord session
	session, err := discordgo.New("Bot " + b.config.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = Intents
	session.ShardID = b.config.ShardID
	session.ShardCount = b.config.ShardCount
	b.session = session

	// Initialize modules
	if err := b.initModules(); err != nil {
		return fmt.Errorf("failed to initialize modules: %w", err)
	}

	// Build command maps
	b.buildHandlerMap()

	// Register framework handlers
	b.session.AddHandler(b.handleReady)
	b.session.AddHandler(b.handleMessage)

	// Register module event handlers
	b.registerEventHandlers()

	// Open connection
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	slog.Info("started bot",
		"shard_id", b.config.ShardID,
		"shard_count", b.config.ShardCount,
		"prefix", b.config.CommandPrefix,
	)

	return nil
}

// Stop gracefully shuts down the bot.
func (b *Bot) Stop() error {
	// Shutdown modules
	for _, mod := range b.modules {
		if err := mod.Shutdown(); err != nil {
			slog.Warn("failed to shutdown module", "module", mod.Name(), "error", err)
		}
	}

	// Close Discord session
	if b.session != nil {
		return b.session.Close()
	}

	return nil
}

// initModules initializes all loaded modules.
func (b *Bot) initModules() error {
	deps := ModuleDependencies{
		Session: b.session,
		Config:  b.config,
	}

	for _, mod := range b.modules {
		if err := mod.Init(deps); err != nil {
			return fmt.Errorf("failed to initialize %s module: %w", mod.Name(), err)
		}
		slog.Debug("initialized module", "module", mod.Name())
	}

	moduleNames := make([]string, len(b.modules))
	for i, mod := range b.modules {
		moduleNames[i] = mod.Name()
	}
	slog.Info("initialized modules", "modules", moduleNames)

	return nil
}

// buildHandlerMap builds the command name to command and handler mappings.
func (b *Bot) buildHandlerMap() {
	for _, mod := range b.modules {
		for _, cmd := range mod.Commands() {
			b.commands[cmd.Name] = cmd
		}
		maps.Copy(b.handlers, mod.CommandHandlers())
	}
}

// registerEventHandlers registers all module event handlers with the session.
func (b *Bot) registerEventHandlers() {
	for _, mod := range b.modules {
		for _, handler := range mod.EventHandlers() {
			b.session.AddHandler(handler)
		}
	}
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("bot is ready",
		"user_id", r.User.ID,
		"username", r.User.Username,
		"guilds", len(r.Guilds),
		"shard_id", s.ShardID,
	)
}

// handleMessage routes incoming messages to the appropriate command handler.
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	b.dispatch(s, m, NewDiscordResponder(s, m.ChannelID))
}

// dispatch runs the command named in m, if any, and reports its error.
func (b *Bot) dispatch(s *discordgo.Session, m *discordgo.MessageCreate, r Responder) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	name, args, ok := ParseCommand(b.config.CommandPrefix, m.Content)
	if !ok {
		return
	}

	cmd, ok := b.commands[name]
	if !ok {
		return
	}
	handler, ok := b.handlers[name]
	if !ok {
		slog.Warn("found no handler for command", "command", name)
		return
	}

	slog.Debug("dispatching command",
		"command", name,
		"guild", m.GuildID,
		"channel", m.ChannelID,
		"user", m.Author.ID,
	)

	var err error
	if cmd.GuildOnly && m.GuildID == "" {
		err = ErrGuildOnly
	} else {
		err = handler(s, m, args, r)
	}
	if err != nil {
		b.reporter.Report(name, err, r)
	}
}
