package commands

import (
	"FoodTracker/internal/cli/api"
	clirepo "FoodTracker/internal/cli/repo"
	fsrepo "FoodTracker/internal/cli/repo/fs"
	"FoodTracker/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"sort"
	"strings"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// ErrNotLoggedIn is returned by commands that need a stored token.
var ErrNotLoggedIn = errors.New("not logged in, run: ftcli login <email>")

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "login".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "login <email> [password]".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// registry holds available commands by name.
var registry = map[string]Command{}

// Out - общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// RegisterCmd adds a command to the registry. Should be called from init() of each command.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List returns all registered commands sorted by name.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage builds a help text for all commands.
func FormatGlobalUsage() string {
	lines := []string{
		"FoodTracker CLI",
		"",
		"Usage:",
		"  ftcli [--base-url <host:port>] [--token-file <path>] <command> [args]",
		"",
		"Commands:",
	}
	for _, c := range List() {
		lines = append(lines, fmt.Sprintf("  %-40s %s", c.Usage(), c.Description()))
	}
	return strings.Join(lines, "\n") + "\n"
}

// authStore returns the token store configured for this run.
func authStore(cfg *config.Config) clirepo.AuthStore {
	return fsrepo.AuthFSStore{TokenPath: cfg.TokenFile}
}

// endpoint joins the server URL with path segments, escaping each segment.
func endpoint(cfg *config.Config, segments ...string) string {
	esc := make([]string, len(segments))
	for i, s := range segments {
		esc[i] = url.PathEscape(s)
	}
	return strings.TrimRight(cfg.ServerURL, "/") + "/" + strings.Join(esc, "/")
}

// requireToken loads the stored token or returns ErrNotLoggedIn.
func requireToken(cfg *config.Config) (string, error) {
	tok, err := authStore(cfg).Load()
	if err != nil || tok == "" {
		return "", ErrNotLoggedIn
	}
	return tok, nil
}

// serverError turns a non-success response into an error with the server message.
func serverError(status int, body []byte) error {
	return fmt.Errorf("server status %d: %s", status, api.ErrorMessage(body))
}
