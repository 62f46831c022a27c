package commands

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"kozeni/internal/app"
	"kozeni/internal/log"
)

// Execute runs the CLI on the process's standard streams.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return ExecuteWith(ctx, os.Stdin, os.Stdout, nil)
}

// ExecuteWith runs the CLI with the given streams and arguments; nil args
// means os.Args[1:]. Errors whose message was already shown to the user are
// returned without being logged.
func ExecuteWith(ctx context.Context, in io.Reader, out io.Writer, args []string) error {
	root := NewRootCommand(in, out)
	if args != nil {
		root.SetArgs(args)
	}
	err := root.ExecuteContext(ctx)
	if err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			log.Error("command failed", "error", err)
		}
	}
	return err
}

// NewRootCommand builds the command tree around the given input and output.
func NewRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	var (
		logLevel string
		wire     *app.Wire
	)

	root := &cobra.Command{
		Use:           "kozeni",
		Short:         "Console exercises: change calculator, palindrome and prime checks",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(logLevel)
			if err != nil {
				return err
			}
			wire, err = app.NewWire(cfg, in, out)
			return err
		},
	}

	root.SetIn(in)
	root.SetOut(out)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "diagnostic log level: debug, info, warn or error (default $KOZENI_LOG_LEVEL or warn)")

	deps := func() *app.Wire { return wire }
	root.AddCommand(changeCmd(deps), palindromeCmd(deps), primeCmd(deps))
	return root
}
