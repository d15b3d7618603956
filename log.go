package fyyur

import (
	"context"
	"log/slog"
	"sort"

	"github.com/rubpy/crawly/clog"
)

//////////////////////////////////////////////////

func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// Log writes lp to the client's logger (if any). Values are emitted in key
// order, followed by the error under "err".
func (c *Client) Log(ctx context.Context, lp clog.Params) {
	logger := c.logger
	if logger == nil {
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}

	level := lp.Level.Level()
	if !logger.Enabled(ctx, level) {
		return
	}

	keys := make([]string, 0, len(lp.Values))
	for k := range lp.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys)+1)
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, lp.Values[k]))
	}
	if lp.Err != nil {
		attrs = append(attrs, slog.String("err", lp.Err.Error()))
	}

	logger.LogAttrs(ctx, level, lp.Message, attrs...)
}
