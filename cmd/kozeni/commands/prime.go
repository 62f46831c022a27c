package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kozeni/internal/app"
)

func primeCmd(deps func() *app.Wire) *cobra.Command {
	return &cobra.Command{
		Use:   "prime",
		Short: "Check whether a natural number is prime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := deps()
			raw, err := w.Console.Prompt(promptNatural)
			if err != nil {
				return fmt.Errorf("read number: %w", err)
			}
			verdict, err := w.Prime.Judge(cmd.Context(), raw)
			if err != nil {
				return report(w.Console, err)
			}
			if verdict.Prime {
				return w.Console.Println(msgPrime)
			}
			return w.Console.Println(msgNotPrime)
		},
	}
}
