package httpclient

import (
	"net"
	"net/http"
	"time"

	"seo-provisioner/internal/core/logger"
	"seo-provisioner/internal/core/proxy"

	"go.uber.org/zap"
)

// Options configures the outbound client used by vendor adapters.
type Options struct {
	// Timeout bounds the whole request/response cycle.
	Timeout time.Duration
	// ConnectTimeout bounds dialing the vendor.
	ConnectTimeout time.Duration
	// Headers are added to every request that does not set them already.
	Headers map[string]string
	// Proxy optionally routes traffic through an HTTP proxy.
	Proxy proxy.Settings
}

// LoggingRoundTripper captures request details for debugging.
// Only method, host and path are logged: vendor credentials travel in bodies,
// headers and login query strings.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	target := req.URL.Host + req.URL.Path

	logger.Get().Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", target),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		logger.Get().Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", target),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Get().Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", target),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// headerRoundTripper fills in default headers.
type headerRoundTripper struct {
	headers map[string]string
	next    http.RoundTripper
}

func (h *headerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(h.headers) > 0 {
		req = req.Clone(req.Context())
		for k, v := range h.headers {
			if req.Header.Get(k) == "" {
				req.Header.Set(k, v)
			}
		}
	}
	return h.next.RoundTrip(req)
}

// NewClient returns an http.Client with logging middleware, default headers
// and a dial timeout separate from the overall request timeout.
func NewClient(opts Options) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = opts.Proxy.Func()
	if opts.ConnectTimeout > 0 {
		transport.DialContext = (&net.Dialer{
			Timeout:   opts.ConnectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext
	}

	return &http.Client{
		Transport: &headerRoundTripper{
			headers: opts.Headers,
			next:    &LoggingRoundTripper{Proxied: transport},
		},
		Timeout: opts.Timeout,
	}
}
