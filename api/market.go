package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/elliot-anderson-afk/kite-api-wrapper/kiteerrors"
)

const (
	routeQuote       = "/quote"
	routeInstruments = "/instruments"
)

// Quote retrieves live market quotes for one or more instruments addressed
// as "EXCHANGE:TRADINGSYMBOL", keyed by the same identifier.
func (c *Client) Quote(ctx context.Context, instruments ...string) (map[string]Quote, error) {
	if len(instruments) == 0 {
		return nil, kiteerrors.New(kiteerrors.Input,
			"at least one instrument must be provided for a quote.")
	}

	query := url.Values{}
	for _, instrument := range instruments {
		query.Add("i", instrument)
	}

	var quotes map[string]Quote
	if err := c.getJSON(ctx, routeQuote, query, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// InstrumentsCSV retrieves the raw CSV dump of tradable instruments, for
// all enabled exchanges or one exchange when non-empty.
func (c *Client) InstrumentsCSV(ctx context.Context, exchange string) (string, error) {
	route := routeInstruments
	if exchange != "" {
		route = fmt.Sprintf("%s/%s", routeInstruments, strings.ToUpper(exchange))
	}
	return c.getText(ctx, route, nil)
}

// Instruments retrieves the instrument dump parsed into typed records.
func (c *Client) Instruments(ctx context.Context, exchange string) ([]Instrument, error) {
	dump, err := c.InstrumentsCSV(ctx, exchange)
	if err != nil {
		return nil, err
	}

	var instruments []Instrument
	if err := gocsv.UnmarshalString(dump, &instruments); err != nil {
		return nil, kiteerrors.New(kiteerrors.Data,
			fmt.Sprintf("failed to parse the instrument dump: %v", err))
	}
	return instruments, nil
}

// historicalEnvelope wraps the candle list of the historical data route.
type historicalEnvelope struct {
	Candles []Candle `json:"candles"`
}

// HistoricalData retrieves historical OHLCV candles for an instrument
// token over the given period. interval is one of minute, day, 3minute,
// 5minute, 10minute, 15minute, 30minute, 60minute. continuous requests
// continuous futures data; oi adds open interest to each candle.
func (c *Client) HistoricalData(ctx context.Context, instrumentToken int, interval string,
	from, to time.Time, continuous, oi bool,
) ([]Candle, error) {
	if interval == "" {
		return nil, kiteerrors.New(kiteerrors.Input, "a candle interval is required.")
	}

	query := url.Values{
		"from":       {from.Format("2006-01-02 15:04:05")},
		"to":         {to.Format("2006-01-02 15:04:05")},
		"continuous": {boolToIntString(continuous)},
		"oi":         {boolToIntString(oi)},
	}

	var data historicalEnvelope
	route := fmt.Sprintf("%s/historical/%d/%s", routeInstruments, instrumentToken, interval)
	if err := c.getJSON(ctx, route, query, &data); err != nil {
		return nil, err
	}
	return data.Candles, nil
}

func boolToIntString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
