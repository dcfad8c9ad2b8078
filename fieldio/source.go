package fieldio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/sirupsen/logrus"
)

// Source opens one of the field buffers.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// FileSource reads a buffer from a local file.
type FileSource string

func (f FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Open(string(f))
}

func (f FileSource) String() string { return string(f) }

// DefaultMaxElapsed bounds the time spent retrying an HTTP fetch.
const DefaultMaxElapsed = 30 * time.Second

// HTTPSource fetches a buffer with a GET request. Connection failures and
// server errors are retried with exponential backoff, client errors are not.
type HTTPSource struct {
	URL string
	// Client defaults to http.DefaultClient.
	Client *http.Client
	// MaxElapsed defaults to DefaultMaxElapsed.
	MaxElapsed time.Duration
	// InitialInterval is the first retry wait. Zero keeps the backoff default.
	InitialInterval time.Duration
	Logger          logrus.FieldLogger
}

func (h *HTTPSource) String() string { return h.URL }

func (h *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	log := h.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = h.MaxElapsed
	if b.MaxElapsedTime == 0 {
		b.MaxElapsedTime = DefaultMaxElapsed
	}
	if h.InitialInterval > 0 {
		b.InitialInterval = h.InitialInterval
	}
	var body io.ReadCloser
	attempt := 0
	op := func() error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			log.WithFields(logrus.Fields{"url": h.URL, "attempt": attempt}).WithError(err).Warn("fetch failed")
			return err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			err = fmt.Errorf("GET %s: %s", h.URL, resp.Status)
			if resp.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			log.WithFields(logrus.Fields{"url": h.URL, "attempt": attempt}).WithError(err).Warn("fetch failed")
			return err
		}
		body = resp.Body
		return nil
	}
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}
	return body, nil
}
