package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kozeni/internal/app"
)

func palindromeCmd(deps func() *app.Wire) *cobra.Command {
	return &cobra.Command{
		Use:   "palindrome",
		Short: "Check whether a line of text is a palindrome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := deps()
			text, err := w.Console.Prompt(promptPalindrome)
			if err != nil {
				return fmt.Errorf("read text: %w", err)
			}
			res, err := w.Palindrome.Check(text)
			if err != nil {
				return report(w.Console, err)
			}
			if res.Palindrome {
				return w.Console.Println(msgPalindrome)
			}
			return w.Console.Println(fmt.Sprintf(fmtNotPalindrome, res.Reversed))
		},
	}
}
