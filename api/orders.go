package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/elliot-anderson-afk/kite-api-wrapper/kiteerrors"
)

const (
	routeOrders = "/orders"
	routeTrades = "/trades"
)

// OrderParams are the fields forwarded by PlaceOrder. Zero-valued optional
// fields are omitted from the request payload.
type OrderParams struct {
	Exchange        string
	TradingSymbol   string
	TransactionType string
	Quantity        int
	Product         string
	OrderType       string

	Price             float64
	Validity          string
	DisclosedQuantity int
	TriggerPrice      float64
	Squareoff         float64
	Stoploss          float64
	TrailingStoploss  float64
	Tag               string
}

// payload lists exactly the fields the order placement route accepts.
func (p OrderParams) payload() map[string]interface{} {
	body := map[string]interface{}{
		"exchange":         p.Exchange,
		"tradingsymbol":    p.TradingSymbol,
		"transaction_type": p.TransactionType,
		"quantity":         p.Quantity,
		"product":          p.Product,
		"order_type":       p.OrderType,
	}
	if p.Price != 0 {
		body["price"] = p.Price
	}
	if p.Validity != "" {
		body["validity"] = p.Validity
	}
	if p.DisclosedQuantity != 0 {
		body["disclosed_quantity"] = p.DisclosedQuantity
	}
	if p.TriggerPrice != 0 {
		body["trigger_price"] = p.TriggerPrice
	}
	if p.Squareoff != 0 {
		body["squareoff"] = p.Squareoff
	}
	if p.Stoploss != 0 {
		body["stoploss"] = p.Stoploss
	}
	if p.TrailingStoploss != 0 {
		body["trailing_stoploss"] = p.TrailingStoploss
	}
	if p.Tag != "" {
		body["tag"] = p.Tag
	}
	return body
}

// ModifyOrderParams are the fields forwarded by ModifyOrder. Zero-valued
// fields are omitted from the request payload.
type ModifyOrderParams struct {
	ParentOrderID     string
	Quantity          int
	Price             float64
	OrderType         string
	TriggerPrice      float64
	Validity          string
	DisclosedQuantity int
}

func (p ModifyOrderParams) payload() map[string]interface{} {
	body := map[string]interface{}{}
	if p.ParentOrderID != "" {
		body["parent_order_id"] = p.ParentOrderID
	}
	if p.Quantity != 0 {
		body["quantity"] = p.Quantity
	}
	if p.Price != 0 {
		body["price"] = p.Price
	}
	if p.OrderType != "" {
		body["order_type"] = p.OrderType
	}
	if p.TriggerPrice != 0 {
		body["trigger_price"] = p.TriggerPrice
	}
	if p.Validity != "" {
		body["validity"] = p.Validity
	}
	if p.DisclosedQuantity != 0 {
		body["disclosed_quantity"] = p.DisclosedQuantity
	}
	return body
}

// PlaceOrder places an order under the given variety (regular, amo, co, ...)
// and returns its order ID.
func (c *Client) PlaceOrder(ctx context.Context, variety string, params OrderParams) (*OrderResponse, error) {
	if variety == "" {
		return nil, kiteerrors.New(kiteerrors.Input, "an order variety is required.")
	}
	var resp OrderResponse
	err := c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("%s/%s", routeOrders, variety), params.payload(), &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ModifyOrder modifies an open order.
func (c *Client) ModifyOrder(ctx context.Context, variety, orderID string, params ModifyOrderParams) (*OrderResponse, error) {
	if variety == "" || orderID == "" {
		return nil, kiteerrors.New(kiteerrors.Input, "an order variety and order ID are required.")
	}
	var resp OrderResponse
	err := c.sendJSON(ctx, http.MethodPut,
		fmt.Sprintf("%s/%s/%s", routeOrders, variety, orderID), params.payload(), &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CancelOrder cancels an open order. parentOrderID is required only when
// cancelling the second leg of a multi-legged order.
func (c *Client) CancelOrder(ctx context.Context, variety, orderID, parentOrderID string) (*OrderResponse, error) {
	if variety == "" || orderID == "" {
		return nil, kiteerrors.New(kiteerrors.Input, "an order variety and order ID are required.")
	}
	var query url.Values
	if parentOrderID != "" {
		query = url.Values{"parent_order_id": {parentOrderID}}
	}
	var resp OrderResponse
	err := c.doJSON(ctx, http.MethodDelete,
		fmt.Sprintf("%s/%s/%s", routeOrders, variety, orderID), query, nil, "", &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Orders retrieves the order book for the day.
func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.getJSON(ctx, routeOrders, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderHistory retrieves the state transitions of one order.
func (c *Client) OrderHistory(ctx context.Context, orderID string) ([]Order, error) {
	if orderID == "" {
		return nil, kiteerrors.New(kiteerrors.Input, "an order ID is required.")
	}
	var orders []Order
	if err := c.getJSON(ctx, fmt.Sprintf("%s/%s", routeOrders, orderID), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Trades retrieves all fills executed for the day.
func (c *Client) Trades(ctx context.Context) ([]Trade, error) {
	var trades []Trade
	if err := c.getJSON(ctx, routeTrades, nil, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// OrderTrades retrieves the fills executed for one order.
func (c *Client) OrderTrades(ctx context.Context, orderID string) ([]Trade, error) {
	if orderID == "" {
		return nil, kiteerrors.New(kiteerrors.Input, "an order ID is required.")
	}
	var trades []Trade
	if err := c.getJSON(ctx, fmt.Sprintf("%s/%s/trades", routeOrders, orderID), nil, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}
