package fyyur

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rubpy/crawly/clog"
)

//////////////////////////////////////////////////

// Navigator moves the host (a browser page, a TUI, ...) to target.
type Navigator interface {
	Navigate(ctx context.Context, target string) error
}

type NavigatorFunc func(ctx context.Context, target string) error

func (f NavigatorFunc) Navigate(ctx context.Context, target string) error {
	return f(ctx, target)
}

type DeleteOutcome struct {
	Result *DeleteResult
	Err    error

	// Set by Dispatch once the navigator accepted Target.
	Navigated bool
	Target    string
}

//////////////////////////////////////////////////

// DeleteVenueAsync runs DeleteVenue in the background. The returned channel
// yields exactly one outcome and is then closed.
func (c *Client) DeleteVenueAsync(ctx context.Context, id VenueID) <-chan DeleteOutcome {
	ch := make(chan DeleteOutcome, 1)

	go func() {
		defer close(ch)

		result, err := c.DeleteVenue(ctx, id)
		ch <- DeleteOutcome{Result: result, Err: err}
	}()

	return ch
}

// Dispatch deletes the venue in the background and, on success, logs "OK"
// and navigates nav to the configured redirect path. Failures are logged
// once at error level and leave the host where it is. A nil nav skips
// navigation.
//
// The returned channel yields exactly one outcome and is then closed;
// callers are free to ignore it.
func (c *Client) Dispatch(ctx context.Context, id VenueID, nav Navigator) <-chan DeleteOutcome {
	ch := make(chan DeleteOutcome, 1)

	go func() {
		var out DeleteOutcome
		defer func() {
			if r := recover(); r != nil {
				out.Navigated = false
				out.Err = fmt.Errorf("dispatch panicked: %v", r)

				c.Log(ctx, clog.Params{
					Message: "dispatch",
					Level:   slog.LevelError,
					Err:     out.Err,

					Values: clog.ParamGroup{
						"venueID": string(id),
					},
				})
			}

			ch <- out
			close(ch)
		}()

		out = c.dispatch(ctx, id, nav)
	}()

	return ch
}

func (c *Client) dispatch(ctx context.Context, id VenueID, nav Navigator) (out DeleteOutcome) {
	result, err := c.deleteVenue(ctx, id, false)
	out.Result = result
	if err != nil {
		out.Err = err

		c.Log(ctx, clog.Params{
			Message: "deleteVenue",
			Level:   slog.LevelError,
			Err:     err,

			Values: clog.ParamGroup{
				"venueID": string(id),
			},
		})

		return
	}

	c.Log(ctx, clog.Params{
		Message: "OK",
		Level:   slog.LevelInfo,

		Values: clog.ParamGroup{
			"venueID":    string(result.VenueID),
			"status":     result.StatusCode,
			"statusText": result.StatusText,
			"requestID":  result.RequestID,
			"confirmed":  result.Confirmed,
		},
	})

	if nav == nil {
		return
	}

	target := c.loadSettings().RedirectPath
	if err := nav.Navigate(ctx, target); err != nil {
		out.Err = fmt.Errorf("Navigator.Navigate: %w", err)

		c.Log(ctx, clog.Params{
			Message: "navigate",
			Level:   slog.LevelError,
			Err:     out.Err,

			Values: clog.ParamGroup{
				"venueID": string(id),
				"target":  target,
			},
		})

		return
	}

	out.Navigated = true
	out.Target = target

	return
}
