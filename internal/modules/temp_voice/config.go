package temp_voice

// Config holds the temp_voice module configuration.
type Config struct {
	// DesignatedChannelName names the channel that accepts the build command.
	// Its category is the one holding temporary rooms.
	DesignatedChannelName string `env:"BOB_CHANNEL_NAME,notEmpty"`
}
