package bot

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestNewBot(t *testing.T) {
	cfg := &Config{
		DiscordToken: "test-token",
	}

	b := NewBot(cfg)

	if b == nil {
		t.Fatal("expected bot to be created, got nil")
	}
	if b.config != cfg {
		t.Error("expected config to be stored")
	}
}

func TestBot_InitModules_InitializesModules(t *testing.T) {
	cfg := &Config{DiscordToken: "test-token"}
	b := NewBot(cfg)

	var deps ModuleDependencies
	initCalled := false
	b.modules = []Module{&trackingStubModule{
		stubModule: stubModule{name: "tracking"},
		initCalled: &initCalled,
		deps:       &deps,
	}}

	if err := b.initModules(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !initCalled {
		t.Error("expected Init to be called")
	}
	if deps.Config != cfg {
		t.Error("expected config to be passed to modules")
	}
}

func TestBot_InitModules_ReturnsInitError(t *testing.T) {
	b := NewBot(&Config{DiscordToken: "test-token"})

	expectedErr := errors.New("init failed")
	b.modules = []Module{&stubModule{name: "failing", initErr: expectedErr}}

	err := b.initModules()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

func TestBot_LoadModuleConfigs(t *testing.T) {
	b := NewBot(&Config{DiscordToken: "test-token"})

	configurable := &configurableStubModule{stubModule: stubModule{name: "configurable"}}
	b.modules = []Module{&stubModule{name: "plain"}, configurable}

	if err := b.LoadModuleConfigs(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !configurable.loaded {
		t.Error("expected LoadConfig to be called")
	}
}

func TestBot_LoadModuleConfigs_ReturnsError(t *testing.T) {
	b := NewBot(&Config{DiscordToken: "test-token"})

	expectedErr := errors.New("BOB_CHANNEL_NAME is required")
	b.modules = []Module{&configurableStubModule{
		stubModule: stubModule{name: "configurable"},
		loadErr:    expectedErr,
	}}

	err := b.LoadModuleConfigs()
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

func TestBot_BuildHandlerMap_MultipleModules(t *testing.T) {
	b := NewBot(&Config{DiscordToken: "test-token"})

	handler := func(*discordgo.Session, *discordgo.MessageCreate, string, Responder) error {
		return nil
	}

	b.modules = []Module{
		&stubModule{
			name:     "mod1",
			commands: []*Command{{Name: "cmd1"}},
			handlers: map[string]CommandHandler{"cmd1": handler},
		},
		&stubModule{
			name:     "mod2",
			commands: []*Command{{Name: "cmd2", GuildOnly: true}},
			handlers: map[string]CommandHandler{"cmd2": handler},
		},
	}

	b.buildHandlerMap()

	if len(b.handlers) != 2 || len(b.commands) != 2 {
		t.Errorf("expected 2 commands and handlers, got %d and %d", len(b.commands), len(b.handlers))
	}
	if !b.commands["cmd2"].GuildOnly {
		t.Error("expected cmd2 to be guild only")
	}
}

func TestBot_Dispatch(t *testing.T) {
	handlerErr := errors.New("platform failure")

	tests := []struct {
		name        string
		message     *discordgo.Message
		handlerErr  error
		wantCalled  bool
		wantArgs    string
		wantReplies []string
	}{
		{
			name:       "runs command with args",
			message:    &discordgo.Message{GuildID: "1", Content: "!build  my room", Author: &discordgo.User{ID: "100"}},
			wantCalled: true,
			wantArgs:   "my room",
		},
		{
			name:    "ignores bots",
			message: &discordgo.Message{GuildID: "1", Content: "!build x", Author: &discordgo.User{ID: "100", Bot: true}},
		},
		{
			name:    "ignores messages without prefix",
			message: &discordgo.Message{GuildID: "1", Content: "build x", Author: &discordgo.User{ID: "100"}},
		},
		{
			name:    "ignores unknown commands",
			message: &discordgo.Message{GuildID: "1", Content: "!destroy x", Author: &discordgo.User{ID: "100"}},
		},
		{
			name:        "rejects guild only command in direct messages",
			message:     &discordgo.Message{Content: "!build x", Author: &discordgo.User{ID: "100"}},
			wantReplies: []string{GuildOnlyMessage},
		},
		{
			name:        "reports handler errors",
			message:     &discordgo.Message{GuildID: "1", Content: "!build x", Author: &discordgo.User{ID: "100"}},
			handlerErr:  handlerErr,
			wantCalled:  true,
			wantArgs:    "x",
			wantReplies: []string{UnhandledMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBot(&Config{DiscordToken: "test-token", CommandPrefix: "!"})

			called := false
			var gotArgs string
			b.modules = []Module{&stubModule{
				name:     "temp_voice",
				commands: []*Command{{Name: "build", GuildOnly: true}},
				handlers: map[string]CommandHandler{
					"build": func(_ *discordgo.Session, _ *discordgo.MessageCreate, args string, _ Responder) error {
						called = true
						gotArgs = args
						return tt.handlerErr
					},
				},
			}}
			b.buildHandlerMap()

			responder := &MockResponder{}
			b.dispatch(nil, &discordgo.MessageCreate{Message: tt.message}, responder)

			if called != tt.wantCalled {
				t.Fatalf("expected handler called=%v, got %v", tt.wantCalled, called)
			}
			if gotArgs != tt.wantArgs {
				t.Errorf("expected args %q, got %q", tt.wantArgs, gotArgs)
			}
			if len(responder.Messages) != len(tt.wantReplies) {
				t.Fatalf("expected replies %q, got %q", tt.wantReplies, responder.Messages)
			}
			for i := range tt.wantReplies {
				if responder.Messages[i] != tt.wantReplies[i] {
					t.Errorf("expected reply %q, got %q", tt.wantReplies[i], responder.Messages[i])
				}
			}
		})
	}
}

func TestBot_Stop_ShutsDownModules(t *testing.T) {
	b := NewBot(&Config{DiscordToken: "test-token"})
	b.modules = []Module{
		&stubModule{name: "failing", shutErr: errors.New("shutdown failed")},
		&stubModule{name: "ok"},
	}

	if err := b.Stop(); err != nil {
		t.Errorf("expected module shutdown errors to be logged only, got %v", err)
	}
}

// trackingStubModule is a stub that tracks if Init was called
type trackingStubModule struct {
	stubModule
	initCalled *bool
	deps       *ModuleDependencies
}

func (m *trackingStubModule) Init(deps ModuleDependencies) error {
	*m.initCalled = true
	*m.deps = deps
	return m.stubModule.Init(deps)
}

// configurableStubModule is a stub implementing ConfigurableModule
type configurableStubModule struct {
	stubModule
	loaded  bool
	loadErr error
}

func (m *configurableStubModule) LoadConfig() error {
	m.loaded = true
	return m.loadErr
}
