package redbulk

import (
	"context"
	"errors"

	"github.com/lmaznek/go-reddit-bulk/internal"
	pkgerrs "github.com/lmaznek/go-reddit-bulk/pkg/errors"
	"github.com/lmaznek/go-reddit-bulk/pkg/types"
)

// paginate drives the bulk fetch loop for one listing: fetch a page,
// validate its shape, normalize its children, accumulate up to limit,
// advance the cursor, and apply the politeness delay before the next
// page. It is a best-effort operation: a transport or upstream failure
// mid-run surfaces the records accumulated so far rather than discarding
// them, unless the client was configured strict. Only a shape violation
// is fatal, since it breaks the normalizer's contract.
//
// Each call owns its accumulator and cursor; concurrent paginate calls
// share nothing but the underlying HTTP client.
func paginate[T any](ctx context.Context, c *Client, op string, baseURL string, limit int, normalize func([]*types.Thing) []T) ([]T, error) {
	// A zero limit short-circuits without touching the network.
	if limit <= 0 {
		return []T{}, nil
	}

	accumulated := make([]T, 0, limit)
	cursor := ""

	for len(accumulated) < limit {
		pageURL := internal.NextPageURL(baseURL, cursor, len(accumulated))

		thing, err := c.transport.FetchThing(ctx, op, pageURL)
		if err != nil {
			return finishPage(c, op, accumulated, err)
		}

		children, after, err := c.parser.Children(thing)
		if err != nil {
			// Not a listing at all: the upstream broke its contract.
			return accumulated, err
		}

		// An empty page is the natural end of the listing, not a failure.
		if len(children) == 0 {
			break
		}

		// Normalize the whole page, then slice the normalized records to
		// the remaining budget. Normalization preserves input order, so
		// slicing after is equivalent to slicing before.
		records := normalize(children)
		if remaining := limit - len(accumulated); len(records) > remaining {
			records = records[:remaining]
		}
		accumulated = append(accumulated, records...)

		// A missing or non-advancing cursor ends the run; the latter
		// guards against an upstream that would otherwise loop forever.
		if after == "" || after == cursor {
			break
		}
		cursor = after

		if len(accumulated) >= limit {
			break
		}

		// Politeness delay, only because another page will be fetched.
		if err := c.wait.Wait(ctx); err != nil {
			return finishPage(c, op, accumulated, err)
		}
	}

	return accumulated, nil
}

// finishPage resolves a mid-pagination failure: shape violations and
// strict mode propagate the error, everything else logs it and keeps the
// partial result.
func finishPage[T any](c *Client, op string, accumulated []T, err error) ([]T, error) {
	var shapeErr *pkgerrs.ShapeError
	if errors.As(err, &shapeErr) {
		return accumulated, err
	}

	c.reportPageFailure(op, len(accumulated), err)
	if c.strict {
		return accumulated, err
	}
	return accumulated, nil
}

// reportPageFailure surfaces a non-fatal page failure to the caller as a
// log line and, when configured, through the error hook.
func (c *Client) reportPageFailure(op string, got int, err error) {
	if c.logger != nil {
		c.logger.Warn("bulk fetch stopped early", "operation", op, "accumulated", got, "error", err)
	}
	if c.onPageError != nil {
		c.onPageError(err)
	}
}
