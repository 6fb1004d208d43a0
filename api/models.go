package api

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// UserSession is the payload returned by the session-token exchange.
type UserSession struct {
	UserID       string   `json:"user_id"`
	UserName     string   `json:"user_name"`
	Email        string   `json:"email"`
	UserType     string   `json:"user_type"`
	Broker       string   `json:"broker"`
	Exchanges    []string `json:"exchanges"`
	Products     []string `json:"products"`
	OrderTypes   []string `json:"order_types"`
	APIKey       string   `json:"api_key"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	PublicToken  string   `json:"public_token"`
	LoginTime    string   `json:"login_time"`
}

// UserProfile is the account profile of the logged-in user.
type UserProfile struct {
	UserID     string   `json:"user_id"`
	UserName   string   `json:"user_name"`
	Email      string   `json:"email"`
	UserType   string   `json:"user_type"`
	Broker     string   `json:"broker"`
	Exchanges  []string `json:"exchanges"`
	Products   []string `json:"products"`
	OrderTypes []string `json:"order_types"`
}

// AvailableMargins is the available cash breakdown of a margin segment.
type AvailableMargins struct {
	AdhocMargin   float64 `json:"adhoc_margin"`
	Cash          float64 `json:"cash"`
	Collateral    float64 `json:"collateral"`
	IntradayPayin float64 `json:"intraday_payin"`
}

// Margins is the margin state of one segment.
type Margins struct {
	Enabled   bool               `json:"enabled"`
	Net       float64            `json:"net"`
	Available AvailableMargins   `json:"available"`
	Utilised  map[string]float64 `json:"utilised"`
}

// AllMargins holds the margins of every segment of the account.
type AllMargins struct {
	Equity    Margins `json:"equity"`
	Commodity Margins `json:"commodity"`
}

// OrderResponse is the acknowledgement returned by order placement,
// modification and cancellation.
type OrderResponse struct {
	OrderID string `json:"order_id"`
}

// Order is one order record as reported by the order book and history.
type Order struct {
	OrderID           string  `json:"order_id"`
	ParentOrderID     string  `json:"parent_order_id"`
	ExchangeOrderID   string  `json:"exchange_order_id"`
	Status            string  `json:"status"`
	StatusMessage     string  `json:"status_message"`
	PlacedBy          string  `json:"placed_by"`
	Variety           string  `json:"variety"`
	Exchange          string  `json:"exchange"`
	TradingSymbol     string  `json:"tradingsymbol"`
	TransactionType   string  `json:"transaction_type"`
	OrderType         string  `json:"order_type"`
	Product           string  `json:"product"`
	Validity          string  `json:"validity"`
	Quantity          float64 `json:"quantity"`
	DisclosedQuantity float64 `json:"disclosed_quantity"`
	FilledQuantity    float64 `json:"filled_quantity"`
	PendingQuantity   float64 `json:"pending_quantity"`
	Price             float64 `json:"price"`
	TriggerPrice      float64 `json:"trigger_price"`
	AveragePrice      float64 `json:"average_price"`
	OrderTimestamp    string  `json:"order_timestamp"`
	Tag               string  `json:"tag"`
}

// Trade is one executed fill.
type Trade struct {
	TradeID         string  `json:"trade_id"`
	OrderID         string  `json:"order_id"`
	ExchangeOrderID string  `json:"exchange_order_id"`
	TradingSymbol   string  `json:"tradingsymbol"`
	Exchange        string  `json:"exchange"`
	TransactionType string  `json:"transaction_type"`
	Product         string  `json:"product"`
	Quantity        float64 `json:"quantity"`
	AveragePrice    float64 `json:"average_price"`
	FillTimestamp   string  `json:"fill_timestamp"`
}

// Position is one open position in a segment.
type Position struct {
	TradingSymbol     string  `json:"tradingsymbol"`
	Exchange          string  `json:"exchange"`
	InstrumentToken   int     `json:"instrument_token"`
	Product           string  `json:"product"`
	Quantity          int     `json:"quantity"`
	OvernightQuantity int     `json:"overnight_quantity"`
	Multiplier        float64 `json:"multiplier"`
	AveragePrice      float64 `json:"average_price"`
	ClosePrice        float64 `json:"close_price"`
	LastPrice         float64 `json:"last_price"`
	Value             float64 `json:"value"`
	PnL               float64 `json:"pnl"`
	M2M               float64 `json:"m2m"`
	Unrealised        float64 `json:"unrealised"`
	Realised          float64 `json:"realised"`
	BuyQuantity       int     `json:"buy_quantity"`
	BuyPrice          float64 `json:"buy_price"`
	BuyValue          float64 `json:"buy_value"`
	SellQuantity      int     `json:"sell_quantity"`
	SellPrice         float64 `json:"sell_price"`
	SellValue         float64 `json:"sell_value"`
}

// Positions groups the open positions into net and day views.
type Positions struct {
	Net []Position `json:"net"`
	Day []Position `json:"day"`
}

// Holding is one equity or mutual fund holding.
type Holding struct {
	TradingSymbol       string  `json:"tradingsymbol"`
	Exchange            string  `json:"exchange"`
	ISIN                string  `json:"isin"`
	Product             string  `json:"product"`
	Price               float64 `json:"price"`
	Quantity            int     `json:"quantity"`
	T1Quantity          int     `json:"t1_quantity"`
	AveragePrice        float64 `json:"average_price"`
	LastPrice           float64 `json:"last_price"`
	PnL                 float64 `json:"pnl"`
	DayChange           float64 `json:"day_change"`
	DayChangePercentage float64 `json:"day_change_percentage"`
}

// OHLC is an open/high/low/close price set.
type OHLC struct {
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// Quote is the live market quote of one instrument.
type Quote struct {
	InstrumentToken   int     `json:"instrument_token"`
	Timestamp         string  `json:"timestamp"`
	LastPrice         float64 `json:"last_price"`
	LastQuantity      int     `json:"last_quantity"`
	AveragePrice      float64 `json:"average_price"`
	Volume            int64   `json:"volume"`
	BuyQuantity       int64   `json:"buy_quantity"`
	SellQuantity      int64   `json:"sell_quantity"`
	OHLC              OHLC    `json:"ohlc"`
	NetChange         float64 `json:"net_change"`
	OI                float64 `json:"oi"`
	LowerCircuitLimit float64 `json:"lower_circuit_limit"`
	UpperCircuitLimit float64 `json:"upper_circuit_limit"`
}

// Instrument is one row of the tradable instrument dump.
type Instrument struct {
	InstrumentToken int     `csv:"instrument_token"`
	ExchangeToken   int     `csv:"exchange_token"`
	TradingSymbol   string  `csv:"tradingsymbol"`
	Name            string  `csv:"name"`
	LastPrice       float64 `csv:"last_price"`
	Expiry          string  `csv:"expiry"`
	Strike          float64 `csv:"strike"`
	TickSize        float64 `csv:"tick_size"`
	LotSize         float64 `csv:"lot_size"`
	InstrumentType  string  `csv:"instrument_type"`
	Segment         string  `csv:"segment"`
	Exchange        string  `csv:"exchange"`
}

// Candle is one historical OHLCV record. The API serializes candles as
// positional arrays: [timestamp, open, high, low, close, volume(, oi)].
type Candle struct {
	Timestamp string
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    int64
	OI        int64
}

func (c *Candle) UnmarshalJSON(b []byte) error {
	var raw []interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) < 6 {
		return errors.Errorf("candle has %d fields, want at least 6", len(raw))
	}

	ts, ok := raw[0].(string)
	if !ok {
		return errors.Errorf("candle timestamp is %T, want string", raw[0])
	}
	c.Timestamp = ts

	values := make([]float64, 0, len(raw)-1)
	for i, v := range raw[1:] {
		f, ok := v.(float64)
		if !ok {
			return errors.Errorf("candle field %d is %T, want number", i+1, v)
		}
		values = append(values, f)
	}
	c.Open, c.High, c.Low, c.Close = values[0], values[1], values[2], values[3]
	c.Volume = int64(values[4])
	if len(values) > 5 {
		c.OI = int64(values[5])
	}
	return nil
}
