package services

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

type loggerRoundTripper struct {
	logger    *slog.Logger
	transport http.RoundTripper
	requestID atomic.Int32
}

func (rt *loggerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if !rt.logger.Enabled(req.Context(), LevelHttpReport) {
		return rt.transport.RoundTrip(req)
	}

	currentID := rt.requestID.Add(1)
	rt.logger.Log(req.Context(), LevelHttpReport, "outgoing request",
		"method", req.Method,
		"url", req.URL.String(),
		"if-none-match", req.Header.Get("If-None-Match"),
		"id", currentID,
	)

	start := time.Now()
	resp, err := rt.transport.RoundTrip(req)
	if err != nil {
		rt.logger.Log(req.Context(), LevelHttpReport, "request failed", "url", req.URL.String(), "id", currentID, "error", err)
		return nil, err
	}

	rt.logger.Log(req.Context(), LevelHttpReport, "response received",
		"status", resp.Status,
		"etag", resp.Header.Get("ETag"),
		"url", req.URL.String(),
		"elapsed", time.Since(start),
		"id", currentID,
	)

	return resp, nil
}

func AddHttpReporting(client *http.Client, logger *slog.Logger) {
	rt := &loggerRoundTripper{
		logger: logger,
	}
	if client.Transport == nil {
		rt.transport = http.DefaultTransport
	} else {
		rt.transport = client.Transport
	}
	client.Transport = rt
}

// client with a timeout that reports its requests to logger
func NewReportingClient(logger *slog.Logger, timeout time.Duration) *http.Client {
	client := &http.Client{Timeout: timeout}
	AddHttpReporting(client, logger)
	return client
}

// shorthand to check if a response is within 200-299
func IsOk(r *http.Response) bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// returns a ErrTransportFailure wrapped error of either
// the respErr if not nill or status code if non "Ok"
func RespOrStatusErr(r *http.Response, respErr error) error {
	if respErr != nil {
		return fmt.Errorf("%w: %w", ErrTransportFailure, respErr)
	}
	if !IsOk(r) {
		return fmt.Errorf(
			"%w Got status code %d",
			ErrTransportFailure,
			r.StatusCode,
		)
	}
	return nil
}
