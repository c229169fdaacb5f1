package catalog

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/niksmo/techtrove/pkg/retry"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrEmptyURL         = errors.New("catalog url is empty string")
)

type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

type ClientOpt func(*clientOpts) error

type clientOpts struct {
	url       string
	doer      Doer
	retryConf retry.RetryConfig
}

func URLOpt(rawURL string) ClientOpt {
	return func(o *clientOpts) error {
		if rawURL == "" {
			return ErrEmptyURL
		}
		if _, err := url.ParseRequestURI(rawURL); err != nil {
			return err
		}
		o.url = rawURL
		return nil
	}
}

// HTTPClientOpt sets the transport. Default is [http.Client] with timeout.
func HTTPClientOpt(d Doer) ClientOpt {
	return func(o *clientOpts) error {
		if d == nil {
			return errors.New("http client is nil")
		}
		o.doer = d
		return nil
	}
}

func TimeoutOpt(timeout time.Duration) ClientOpt {
	return func(o *clientOpts) error {
		if timeout < 0 {
			return fmt.Errorf("negative timeout %s", timeout)
		}
		o.doer = &http.Client{Timeout: timeout}
		return nil
	}
}

// MaxAttemptsOpt sets fetch attempts. Only transport errors and 5xx
// responses are retried.
func MaxAttemptsOpt(n int) ClientOpt {
	return func(o *clientOpts) error {
		if n < 1 {
			return fmt.Errorf("max attempts must be positive, got %d", n)
		}
		o.retryConf.MaxAttempts = n
		return nil
	}
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}
