package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"kozeni/internal/app"
	"kozeni/internal/domain"
)

func changeCmd(deps func() *app.Wire) *cobra.Command {
	return &cobra.Command{
		Use:   "change",
		Short: "Compute change for a purchase and break it into notes and coins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := deps()
			return report(w.Console, runChange(w.Console, w.Change))
		},
	}
}

// runChange reads the price and the tendered amount, then prints the change
// and how many of each note and coin make it up.
func runChange(con domain.Console, svc domain.ChangeService) error {
	price, err := readAmount(con, svc, promptPrice)
	if err != nil {
		return err
	}
	tendered, err := readAmount(con, svc, promptTendered)
	if err != nil {
		return err
	}

	change, err := svc.CalculateChange(tendered, price)
	if err != nil {
		return err
	}
	if err := con.Println(fmt.Sprintf(fmtChange, change)); err != nil {
		return err
	}
	for _, e := range svc.Breakdown(change) {
		if err := con.Println(fmt.Sprintf(fmtBreakdownEntry, e.Denomination, e.Count)); err != nil {
			return err
		}
	}
	return nil
}

// readAmount prompts for an amount and echoes it back once it validates.
func readAmount(con domain.Console, svc domain.ChangeService, label string) (domain.Amount, error) {
	raw, err := con.Prompt(label)
	if err != nil {
		return 0, fmt.Errorf("read amount: %w", err)
	}
	amount, err := svc.ParseAmount(raw)
	if err != nil {
		return 0, err
	}
	if err := con.Println(fmt.Sprintf(fmtAmountEcho, raw)); err != nil {
		return 0, err
	}
	return amount, nil
}
