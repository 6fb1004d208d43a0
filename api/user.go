package api

import (
	"context"
	"fmt"

	"github.com/elliot-anderson-afk/kite-api-wrapper/kiteerrors"
)

const (
	routeProfile = "/user/profile"
	routeMargins = "/user/margins"
)

// Profile retrieves the account profile of the logged-in user.
func (c *Client) Profile(ctx context.Context) (*UserProfile, error) {
	var profile UserProfile
	if err := c.getJSON(ctx, routeProfile, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Margins retrieves the funds and margins of every segment.
func (c *Client) Margins(ctx context.Context) (*AllMargins, error) {
	var margins AllMargins
	if err := c.getJSON(ctx, routeMargins, nil, &margins); err != nil {
		return nil, err
	}
	return &margins, nil
}

// SegmentMargins retrieves the funds and margins of one segment, e.g.
// "equity" or "commodity".
func (c *Client) SegmentMargins(ctx context.Context, segment string) (*Margins, error) {
	if segment == "" {
		return nil, kiteerrors.New(kiteerrors.Input, "a margin segment is required.")
	}
	var margins Margins
	if err := c.getJSON(ctx, fmt.Sprintf("%s/%s", routeMargins, segment), nil, &margins); err != nil {
		return nil, err
	}
	return &margins, nil
}
