// ipcloak rewrites one IPv4 address into a fixed catalog of 21 alternate
// textual encodings (decimal, hexadecimal, octal, and mixed-radix hybrids)
// that permissive legacy parsers still resolve to the same address. It
// exists to demonstrate that dotted-quad validators built on simple regular
// expressions can be bypassed by equivalent-but-differently-spelled
// addresses.
//
// Usage:
//
//	ipcloak [options] <ip> [prefix] [postfix]
//
// Arguments:
//
//	ip       dotted-quad IPv4 address to cloak (required)
//	prefix   string emitted before every output line
//	postfix  string emitted after every output line, before the newline
//
// Exit codes:
//
//	0: success (21 cloaked forms written to stdout)
//	1: the address did not parse as a dotted-quad IPv4 address
//	2: argument error (missing address, too many arguments, unknown flag)
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/vk/ipcloak/internal/addr"
	"github.com/vk/ipcloak/internal/app"
)

const usageText = "ipcloak [options] <ip> [prefix] [postfix]"

// Version information (injectable via -ldflags, e.g.
//
//	go build -ldflags "-X main.Version=1.0.0"
//
// ).
var Version = "0.1.0-dev"

func main() {
	os.Exit(run(context.Background(), os.Stdout, os.Stderr, os.Args))
}

// newCommand builds the root CLI command. Rendered forms go to outW; usage
// text, error messages, and log records go to errW.
func newCommand(outW, errW io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "ipcloak",
		Usage:     "render an IPv4 address through its catalog of filter-evading spellings",
		UsageText: usageText,
		ArgsUsage: "<ip> [prefix] [postfix]",
		Version:   Version,
		Writer:    outW,
		ErrWriter: errW,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log verbosity: 'debug', 'info', 'warn', or 'error'",
				Value: "info",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log output format: 'text' or 'json'",
				Value: "text",
			},
		},
		// The framework must not call os.Exit itself; run() owns the
		// exit-code mapping. ExitCoder messages are printed here in place
		// of the default HandleExitCoder behavior.
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if err == nil {
				return
			}
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(errW, err)
			}
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args()
			if args.Len() == 0 {
				return cli.Exit("missing required argument: <ip>\nusage: "+usageText, 2)
			}
			if args.Len() > 3 {
				return cli.Exit(fmt.Sprintf("too many arguments (%d)\nusage: %s", args.Len(), usageText), 2)
			}

			cfg, err := app.NewConfig(app.Config{
				Address:   args.Get(0),
				Prefix:    args.Get(1),
				Postfix:   args.Get(2),
				LogLevel:  cmd.String("log-level"),
				LogFormat: cmd.String("log-format"),
			})
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			if err := app.NewApp(outW, errW, cfg).Run(ctx); err != nil {
				if errors.Is(err, addr.ErrInvalidAddress) {
					return cli.Exit(err.Error(), 1)
				}
				return err
			}
			return nil
		},
	}
}

// run encapsulates the main application logic for easier testing and
// exit-code handling.
func run(ctx context.Context, outW, errW io.Writer, args []string) int {
	cmd := newCommand(outW, errW)
	if err := cmd.Run(ctx, args); err != nil {
		var coder cli.ExitCoder
		if errors.As(err, &coder) {
			// Message already written by the ExitErrHandler.
			return coder.ExitCode()
		}
		if isUsageError(err) {
			// The flag parser already reported the details.
			return 2
		}
		fmt.Fprintln(errW, err)
		return 1
	}
	return 0
}

// isUsageError reports whether err came from the CLI framework's argument
// parsing rather than from the application itself.
func isUsageError(err error) bool {
	s := err.Error()
	return strings.Contains(s, "flag provided but not defined") ||
		strings.Contains(s, "flag needs an argument") ||
		strings.Contains(s, "invalid value")
}
