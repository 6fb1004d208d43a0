package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var instrumentsCmd = &cobra.Command{
	Use:     "instruments [EXCHANGE]",
	Short:   "List tradable instruments, optionally for one exchange",
	Example: "kite instruments NSE",
	Args:    cobra.MaximumNArgs(1),
	RunE:    executeInstruments,
}

func executeInstruments(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	exchange := ""
	if len(args) == 1 {
		exchange = args[0]
	}

	instruments, err := client.Instruments(cmd.Context(), exchange)
	if err != nil {
		return err
	}

	for _, instrument := range instruments {
		fmt.Printf("%d\t%s\t%s\t%s\t%s\n",
			instrument.InstrumentToken, instrument.Exchange, instrument.TradingSymbol,
			instrument.InstrumentType, instrument.Name)
	}
	return nil
}
