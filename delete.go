package fyyur

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rubpy/crawly/clog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//////////////////////////////////////////////////

type DeleteResult struct {
	VenueID    VenueID `json:"venue_id"`
	StatusCode int     `json:"status_code"`
	StatusText string  `json:"status_text"`
	RequestID  string  `json:"request_id"`

	// Whether the response body carried {"success": true}.
	Confirmed bool `json:"confirmed"`
}

// RejectedError is returned when the server answers a deletion request with
// a non-2xx status.
type RejectedError struct {
	VenueID    VenueID
	StatusCode int
	StatusText string

	// <title> of the HTML error page, if the server sent one.
	Title string
}

func (e *RejectedError) Error() string {
	return "venue deletion rejected: " + e.StatusText
}

var (
	ExceededRequestTimeout = errors.New("exceeded request timeout")
)

const maxResponseBodySize = 1 << 20

//////////////////////////////////////////////////

// DeleteVenue sends one DELETE request for the venue and waits for the
// response. A non-2xx answer yields a *RejectedError; transport failures are
// returned wrapped.
func (c *Client) DeleteVenue(ctx context.Context, id VenueID) (*DeleteResult, error) {
	return c.deleteVenue(ctx, id, true)
}

// With logErr unset the request record omits the error; the caller reports it.
func (c *Client) deleteVenue(ctx context.Context, id VenueID, logErr bool) (result *DeleteResult, err error) {
	if !id.Valid() {
		err = InvalidVenueID
		return
	}

	if c.client == nil {
		err = NilClient
		return
	}

	if ctx == nil {
		ctx = context.Background()
	} else {
		if err = ctx.Err(); err != nil {
			return
		}
	}

	settings := c.loadSettings()
	requestID := uuid.NewString()
	rawURL := c.baseURL + VenuePath(id, settings.EscapeVenueID)

	ctx, span := c.tracer.Start(ctx, "DeleteVenue",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("venue.id", string(id)),
			attribute.String("http.request.method", http.MethodDelete),
			attribute.String("url.full", rawURL),
		),
	)
	defer span.End()

	start := time.Now()
	lp := clog.Params{
		Message: "deleteVenue",
		Level:   slog.LevelDebug,

		Values: clog.ParamGroup{
			"venueID":   string(id),
			"url":       rawURL,
			"requestID": requestID,
		},
	}
	defer func() {
		c.metrics.observe(outcomeOf(err), time.Since(start))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}

		if logErr {
			lp.Err = err
		}
		c.Log(ctx, lp)
	}()

	rctx := ctx
	if settings.RequestTimeout > 0 {
		var cancel context.CancelFunc
		rctx, cancel = context.WithTimeoutCause(ctx, settings.RequestTimeout, ExceededRequestTimeout)
		defer cancel()
	}

	header := http.Header{
		"X-Request-ID": {requestID},
	}
	if settings.Accept != "" {
		header.Set("Accept", settings.Accept)
	}

	resp, err := c.client.Request(rctx, http.MethodDelete, rawURL, nil, header)
	if err != nil {
		if cause := context.Cause(rctx); errors.Is(cause, ExceededRequestTimeout) {
			err = cause
		}

		err = fmt.Errorf("cclient.Client.Request: %w", err)
		return nil, err
	}
	defer resp.Body.Close()

	// A truncated or unreadable body only costs the optional details below.
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))

	text := statusText(resp.StatusCode, resp.Status)
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	lp.Set("status", resp.StatusCode)

	if !isSuccessStatus(resp.StatusCode) {
		err = &RejectedError{
			VenueID:    id,
			StatusCode: resp.StatusCode,
			StatusText: text,
			Title:      htmlTitle(body),
		}
		return nil, err
	}

	result = &DeleteResult{
		VenueID:    id,
		StatusCode: resp.StatusCode,
		StatusText: text,
		RequestID:  requestID,
		Confirmed:  confirmedSuccess(body),
	}

	return result, nil
}
