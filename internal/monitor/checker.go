package monitor

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Checker performs one availability check against one URL.
type Checker interface {
	Check(ctx context.Context, url string) CheckResult
}

// HTTPChecker classifies targets by issuing a single GET request per check.
// Any completed HTTP response counts as up, regardless of status code; only
// failures to complete a transaction classify as down. Redirects are
// followed, so the final status is what gets reported.
type HTTPChecker struct {
	client  *http.Client
	timeout time.Duration
	strict  bool
}

// NewHTTPChecker creates a checker with the given per-check timeout.
// When strict is true, completed responses with status >= 400 classify as
// down with an HTTP reason (latency still reported).
func NewHTTPChecker(timeout time.Duration, strict bool) *HTTPChecker {
	return &HTTPChecker{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
		strict:  strict,
	}
}

// Close releases idle connections held by the underlying client.
func (c *HTTPChecker) Close() {
	if c.client != nil {
		c.client.CloseIdleConnections()
	}
}

// Check issues one GET against url and classifies the outcome. No retries:
// each call is an independent attempt.
func (c *HTTPChecker) Check(ctx context.Context, url string) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return CheckResult{Reason: ReasonConnection, Err: err}
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		return classifyError(err)
	}

	// Drain and close so the connection can be reused next cycle
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	resp.Body.Close()

	result := CheckResult{
		Up:         true,
		StatusCode: resp.StatusCode,
		Latency:    elapsed,
		HasLatency: true,
	}

	if c.strict && resp.StatusCode >= 400 {
		result.Up = false
		result.Reason = ReasonHTTP
	}

	return result
}

// classifyError maps a transport failure to a down result. Precedence:
// TLS/certificate failures first, then timeouts, then everything else
// (DNS, refused, reset) as a connection error. The connection never
// completed in any of these cases, so no latency is reported.
func classifyError(err error) CheckResult {
	result := CheckResult{Err: err}

	switch {
	case isTLSError(err):
		result.Reason = ReasonTLS
	case isTimeoutError(err):
		result.Reason = ReasonTimeout
	default:
		result.Reason = ReasonConnection
	}

	return result
}

// isTLSError reports whether err stems from TLS or certificate negotiation.
func isTLSError(err error) bool {
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return true
	}
	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return true
	}
	var unknownAuth x509.UnknownAuthorityError
	if errors.As(err, &unknownAuth) {
		return true
	}
	var hostnameErr x509.HostnameError
	if errors.As(err, &hostnameErr) {
		return true
	}
	var invalidErr x509.CertificateInvalidError
	if errors.As(err, &invalidErr) {
		return true
	}

	// Transport errors wrap TLS alerts as plain strings; fall back to
	// matching the standard prefixes.
	msg := err.Error()
	return strings.Contains(msg, "tls:") || strings.Contains(msg, "x509:")
}

// isTimeoutError reports whether err is a deadline or network timeout.
func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
