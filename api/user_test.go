package api

import (
	"context"
	"net/http"
	"testing"
)

func TestMargins(t *testing.T) {
	t.Parallel()

	body := `{"status":"success","data":{
		"equity":{"enabled":true,"net":12345.67,
			"available":{"cash":10000,"collateral":2000},
			"utilised":{"debits":100,"exposure":50}},
		"commodity":{"enabled":false,"net":0}}}`
	c := newTestClient(t, ClientConfig{}, RoundTripFunc(func(req *http.Request) *http.Response {
		if req.URL.Path != "/user/margins" {
			t.Errorf("path = %q, want /user/margins", req.URL.Path)
		}
		return newTestResponse(http.StatusOK, contentTypeJSON, body)
	}))

	margins, err := c.Margins(context.Background())
	if err != nil {
		t.Fatalf("Margins() error = %v", err)
	}
	if !margins.Equity.Enabled || margins.Equity.Net != 12345.67 {
		t.Errorf("Equity = %+v, decoded payload mismatch", margins.Equity)
	}
	if margins.Equity.Available.Cash != 10000 {
		t.Errorf("Equity.Available.Cash = %v, want 10000", margins.Equity.Available.Cash)
	}
	if margins.Equity.Utilised["exposure"] != 50 {
		t.Errorf("Equity.Utilised[exposure] = %v, want 50", margins.Equity.Utilised["exposure"])
	}
	if margins.Commodity.Enabled {
		t.Error("Commodity.Enabled = true, want false")
	}
}

func TestSegmentMargins(t *testing.T) {
	t.Parallel()

	var path string
	body := `{"status":"success","data":{"enabled":true,"net":500}}`
	c := newTestClient(t, ClientConfig{}, RoundTripFunc(func(req *http.Request) *http.Response {
		path = req.URL.Path
		return newTestResponse(http.StatusOK, contentTypeJSON, body)
	}))

	margins, err := c.SegmentMargins(context.Background(), "equity")
	if err != nil {
		t.Fatalf("SegmentMargins() error = %v", err)
	}
	if path != "/user/margins/equity" {
		t.Errorf("path = %q, want /user/margins/equity", path)
	}
	if margins.Net != 500 {
		t.Errorf("Net = %v, want 500", margins.Net)
	}
}

func TestPositionsAndHoldings(t *testing.T) {
	t.Parallel()

	positionsBody := `{"status":"success","data":{
		"net":[{"tradingsymbol":"INFY","quantity":10,"pnl":120.5}],
		"day":[]}}`
	holdingsBody := `{"status":"success","data":[
		{"tradingsymbol":"RELIANCE","isin":"INE002A01018","quantity":5,"average_price":2400}]}`
	c := newTestClient(t, ClientConfig{}, RoundTripFunc(func(req *http.Request) *http.Response {
		if req.URL.Path == "/portfolio/positions" {
			return newTestResponse(http.StatusOK, contentTypeJSON, positionsBody)
		}
		return newTestResponse(http.StatusOK, contentTypeJSON, holdingsBody)
	}))

	ctx := context.Background()

	positions, err := c.Positions(ctx)
	if err != nil {
		t.Fatalf("Positions() error = %v", err)
	}
	if len(positions.Net) != 1 || positions.Net[0].PnL != 120.5 {
		t.Errorf("Positions().Net = %+v, want one INFY position", positions.Net)
	}
	if len(positions.Day) != 0 {
		t.Errorf("Positions().Day = %+v, want empty", positions.Day)
	}

	holdings, err := c.Holdings(ctx)
	if err != nil {
		t.Fatalf("Holdings() error = %v", err)
	}
	if len(holdings) != 1 || holdings[0].ISIN != "INE002A01018" {
		t.Errorf("Holdings() = %+v, want one RELIANCE holding", holdings)
	}
}
