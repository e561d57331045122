package bot

import (
	"errors"
	"log/slog"
)

// ErrGuildOnly is returned when a guild-only command is used outside a guild.
var ErrGuildOnly = errors.New("command only works in a guild")

// Replies sent by ErrorReporter.
const (
	GuildOnlyMessage = "⚠️ This command only works in a guild."
	UnhandledMessage = "☢️ An unhandled error just occurred! It has been logged to the console."
	warningPrefix    = "⚠️ "
)

// CheckFailedError reports a command precondition that did not hold.
// UserMessage is shown to the invoker and LogDetail is logged for operators;
// either may be empty.
type CheckFailedError struct {
	Check       string
	UserMessage string
	LogDetail   string
}

func (e *CheckFailedError) Error() string {
	switch {
	case e.LogDetail != "":
		return "check " + e.Check + " failed: " + e.LogDetail
	case e.UserMessage != "":
		return "check " + e.Check + " failed: " + e.UserMessage
	default:
		return "check " + e.Check + " failed"
	}
}

// ErrorReporter turns command errors into replies and log lines.
type ErrorReporter struct{}

// NewErrorReporter creates a new ErrorReporter.
func NewErrorReporter() *ErrorReporter {
	return &ErrorReporter{}
}

// Report handles an error returned while dispatching command.
func (e *ErrorReporter) Report(command string, err error, r Responder) {
	if errors.Is(err, ErrGuildOnly) {
		e.reply(command, r, GuildOnlyMessage)
		return
	}

	var checkErr *CheckFailedError
	if errors.As(err, &checkErr) {
		e.reportCheck(command, checkErr, r)
		return
	}

	slog.Warn("unhandled command error", "command", command, "error", err)
	e.reply(command, r, UnhandledMessage)
}

func (e *ErrorReporter) reportCheck(command string, err *CheckFailedError, r Responder) {
	if err.LogDetail == "" && err.UserMessage == "" {
		slog.Warn("check failed for an unrecognised reason", "command", command, "check", err.Check)
		return
	}

	if err.LogDetail != "" {
		slog.Error("check failed",
			"command", command,
			"check", err.Check,
			"error", err.LogDetail,
		)
	}
	if err.UserMessage != "" {
		e.reply(command, r, warningPrefix+err.UserMessage)
	}
}

func (e *ErrorReporter) reply(command string, r Responder, content string) {
	if err := r.Send(content); err != nil {
		slog.Error("failed to send reply", "command", command, "error", err)
	}
}
