package api

import "context"

const (
	routePositions = "/portfolio/positions"
	routeHoldings  = "/portfolio/holdings"
)

// Positions retrieves the current open net and day positions across all
// segments.
func (c *Client) Positions(ctx context.Context) (*Positions, error) {
	var positions Positions
	if err := c.getJSON(ctx, routePositions, nil, &positions); err != nil {
		return nil, err
	}
	return &positions, nil
}

// Holdings retrieves the current equity and mutual fund holdings.
func (c *Client) Holdings(ctx context.Context) ([]Holding, error) {
	var holdings []Holding
	if err := c.getJSON(ctx, routeHoldings, nil, &holdings); err != nil {
		return nil, err
	}
	return holdings, nil
}
