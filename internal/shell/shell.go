// Package shell provides a local interactive shell for moodplay commands.
// It runs the same commands as the Discord transport, with tab completion of mood names.
package shell

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/ishell/v2"

	"moodplay/internal/commands"
	"moodplay/internal/logger"
	"moodplay/internal/testutils"
	"moodplay/pkg/moodtypes"
)

// TransportName identifies the shell in moodtypes.Interaction.Transport.
const TransportName = "shell"

// Shell dispatches shell lines to registered commands.
type Shell struct {
	registry *commands.Registry
	testMode bool
	listing  string
}

// New creates a shell over registry. listing, when non-empty, is printed by the "moods" command.
func New(registry *commands.Registry, testMode bool, listing string) *Shell {
	return &Shell{registry: registry, testMode: testMode, listing: listing}
}

// Execute runs command name with shell words args.
// The local user counts as present in voice, so voice requirements are not checked.
func (s *Shell) Execute(ctx context.Context, name string, args []string) error {
	cmd, ok := s.registry.Get(name)
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}

	opts, err := ParseArgs(cmd.Options(), args)
	if err != nil {
		return err
	}

	return s.registry.Execute(ctx, name, moodtypes.Invocation{
		Interaction: moodtypes.Interaction{
			ID:        testutils.GenerateInteractionID(s.testMode),
			Transport: TransportName,
		},
		Options: opts,
	})
}

// Complete suggests the next word for a command given the words typed so far.
// The first word completes the autocompleted option; later words complete option names.
func (s *Shell) Complete(name string, args []string) []string {
	cmd, ok := s.registry.Get(name)
	if !ok {
		return nil
	}

	if len(args) == 0 {
		for _, spec := range cmd.Options() {
			if !spec.Autocomplete {
				continue
			}
			choices, err := s.registry.Autocomplete(name, spec.Name, "")
			if err != nil {
				return nil
			}
			out := make([]string, len(choices))
			for i, c := range choices {
				out[i] = c.Value
			}
			return out
		}
	}

	var out []string
	for _, spec := range cmd.Options() {
		switch spec.Type {
		case moodtypes.OptionBoolean:
			out = append(out, spec.Name)
		case moodtypes.OptionInteger:
			out = append(out, spec.Name+"=")
		}
	}
	return out
}

// Run starts the interactive loop and blocks until the user exits.
func (s *Shell) Run(ctx context.Context) {
	sh := ishell.New()
	sh.SetPrompt("moodplay> ")

	for _, cmd := range s.registry.GetAll() {
		name := cmd.Name()
		sh.AddCmd(&ishell.Cmd{
			Name:     name,
			Help:     cmd.Description(),
			LongHelp: Usage(cmd),
			Func: func(c *ishell.Context) {
				if err := s.Execute(ctx, name, c.Args); err != nil {
					c.Println(moodtypes.UserMessage(err))
				}
			},
			Completer: func(args []string) []string {
				return s.Complete(name, args)
			},
		})
	}

	if s.listing != "" {
		sh.AddCmd(&ishell.Cmd{
			Name: "moods",
			Help: "list available moods",
			Func: func(c *ishell.Context) {
				c.Print(s.listing)
			},
		})
	}

	sh.Println("moodplay shell - type 'help' for commands, 'exit' to quit.")
	logger.Debug("Shell started", "commands", len(s.registry.GetAll()))
	sh.Run()
}

// Usage renders a one-line usage string for cmd, e.g. "mood <mood> [count=N] [immediate] [shuffle]".
func Usage(cmd moodtypes.Command) string {
	parts := []string{cmd.Name()}
	for _, spec := range cmd.Options() {
		var part string
		switch spec.Type {
		case moodtypes.OptionInteger:
			part = spec.Name + "=N"
		case moodtypes.OptionBoolean:
			part = spec.Name
		default:
			part = "<" + spec.Name + ">"
		}
		if !spec.Required {
			part = "[" + part + "]"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}

// EchoEnqueuer prints a confirmation after the wrapped enqueuer accepts a request.
type EchoEnqueuer struct {
	inner moodtypes.Enqueuer
	out   io.Writer
}

// NewEchoEnqueuer wraps inner, writing confirmations to out.
func NewEchoEnqueuer(inner moodtypes.Enqueuer, out io.Writer) *EchoEnqueuer {
	return &EchoEnqueuer{inner: inner, out: out}
}

// Enqueue forwards to the wrapped enqueuer and prints what was queued.
func (e *EchoEnqueuer) Enqueue(ctx context.Context, interaction moodtypes.Interaction, request moodtypes.PlaybackRequest) error {
	if err := e.inner.Enqueue(ctx, interaction, request); err != nil {
		return err
	}
	msg := "queued: " + request.Query
	if details := request.Details(); len(details) > 0 {
		msg += " (" + strings.Join(details, ", ") + ")"
	}
	_, _ = fmt.Fprintln(e.out, msg)
	return nil
}
