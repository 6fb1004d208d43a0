package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var quoteCmd = &cobra.Command{
	Use:     "quote INSTRUMENT...",
	Short:   "Print live quotes for one or more instruments",
	Example: "kite quote NSE:INFY NSE:RELIANCE",
	Args:    cobra.MinimumNArgs(1),
	RunE:    executeQuote,
}

func executeQuote(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	quotes, err := client.Quote(cmd.Context(), args...)
	if err != nil {
		return err
	}

	for _, instrument := range args {
		q, ok := quotes[instrument]
		if !ok {
			fmt.Printf("%s: no quote returned\n", instrument)
			continue
		}
		fmt.Printf("%s: last %.2f (o %.2f h %.2f l %.2f c %.2f) volume %d\n",
			instrument, q.LastPrice, q.OHLC.Open, q.OHLC.High, q.OHLC.Low, q.OHLC.Close, q.Volume)
	}
	return nil
}
