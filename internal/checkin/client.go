// Package checkin is the desk-side client for the meal service: a thin
// HTTP client over the three endpoints and a session state machine that
// drives search, selection and submission the way the web view does.
package checkin

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"mealdesk/internal/model"

	"github.com/go-resty/resty/v2"
)

// ErrDuplicateMeal is returned when the server rejects a submission
// because the guest already has a meal recorded for today.
var ErrDuplicateMeal = errors.New("guest already received a meal today")

// API is what the session needs from the server; satisfied by Client.
type API interface {
	SearchGuests(ctx context.Context, query string) ([]model.Guest, error)
	RecordMeal(ctx context.Context, guestID string, quantity int) error
	TodayTotal(ctx context.Context) (int, error)
}

type Client struct{ http *resty.Client }

func NewClient(baseURL string) *Client {
	return &Client{http: resty.New().SetBaseURL(baseURL)}
}

func (c *Client) SearchGuests(ctx context.Context, query string) ([]model.Guest, error) {
	var out model.GuestsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetResult(&out).
		Get("/api/guests")
	if err != nil {
		return nil, fmt.Errorf("search guests: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("search guests: %s", resp.Status())
	}
	return out.Guests, nil
}

func (c *Client) RecordMeal(ctx context.Context, guestID string, quantity int) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(model.RecordMealRequest{GuestID: guestID, Quantity: quantity}).
		Post("/api/meals")
	if err != nil {
		return fmt.Errorf("record meal: %w", err)
	}
	if resp.StatusCode() == http.StatusConflict {
		return ErrDuplicateMeal
	}
	if resp.IsError() {
		return fmt.Errorf("record meal: %s", resp.Status())
	}
	return nil
}

func (c *Client) TodayTotal(ctx context.Context) (int, error) {
	var out model.TotalsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/totals")
	if err != nil {
		return 0, fmt.Errorf("load totals: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("load totals: %s", resp.Status())
	}
	return out.Total, nil
}
