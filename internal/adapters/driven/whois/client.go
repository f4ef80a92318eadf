// Package whois implements the WhoisClient port over the classic port-43
// protocol: dial the registry's server, write the domain, read the reply
// until EOF. Registries throttle aggressively, so all queries share a
// token-bucket rate limiter.
package whois

import (
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/whois-cli/internal/core/ports/driven"
	"github.com/custodia-labs/whois-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.WhoisClient = (*Client)(nil)

// whoisPort is the IANA-assigned WHOIS port.
const whoisPort = "43"

// Config holds client tuning. Zero values fall back to defaults.
type Config struct {
	// Timeout bounds a single query (dial plus read).
	Timeout time.Duration

	// RequestsPerSecond is the sustained query rate across all servers.
	RequestsPerSecond float64

	// BurstSize is the token bucket burst.
	BurstSize int

	// ServerOverrides maps a TLD (without dot) to a server that replaces
	// the built-in entry for that TLD.
	ServerOverrides map[string]string
}

// DefaultConfig is deliberately conservative: WHOIS servers blacklist
// chatty clients for hours.
var DefaultConfig = Config{
	Timeout:           15 * time.Second,
	RequestsPerSecond: 1.0,
	BurstSize:         3,
}

// QueryError wraps a failed query with the domain and server involved.
type QueryError struct {
	Domain string
	Server string
	Err    error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("whois query for %s via %s failed: %v", e.Domain, e.Server, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Client queries WHOIS servers selected by the domain's TLD, trying
// fallback servers in order until one answers.
type Client struct {
	timeout   time.Duration
	limiter   *rate.Limiter
	overrides map[string]string
}

// NewClient creates a port-43 client with the given tuning.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig.Timeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultConfig.RequestsPerSecond
	}
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = DefaultConfig.BurstSize
	}
	return &Client{
		timeout:   cfg.Timeout,
		limiter:   rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
		overrides: cfg.ServerOverrides,
	}
}

// Lookup fetches the raw WHOIS response for domain, returning the text
// and the server that answered.
func (c *Client) Lookup(ctx context.Context, domain string) (string, string, error) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return "", "", fmt.Errorf("domain cannot be empty")
	}

	parts := strings.Split(domain, ".")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("invalid domain format: %s", domain)
	}
	tld := parts[len(parts)-1]

	var lastErr error
	for _, server := range c.serversFor(tld) {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", "", err
		}

		raw, err := c.query(ctx, domain, server)
		if err != nil {
			logger.Warn("server %s failed for %s: %v", server, domain, err)
			lastErr = &QueryError{Domain: domain, Server: server, Err: err}
			continue
		}
		return raw, server, nil
	}

	return "", "", lastErr
}

// serversFor returns the candidate servers for a TLD. A configured
// override replaces the list entirely; otherwise the built-in entries
// apply, with the default list covering unknown TLDs.
func (c *Client) serversFor(tld string) []string {
	if override, ok := c.overrides[tld]; ok {
		return []string{override}
	}
	if known, ok := tldServers[tld]; ok {
		return known
	}
	return defaultServers
}

// query performs one protocol exchange: connect, send the domain, read
// everything until the server closes the connection. Servers default to
// port 43 unless the entry names a port itself.
func (c *Client) query(ctx context.Context, domain, server string) (string, error) {
	addr := server
	if _, _, err := net.SplitHostPort(server); err != nil {
		addr = net.JoinHostPort(server, whoisPort)
	}

	dialer := &net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return "", fmt.Errorf("connection failed: %w", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return "", err
	}

	if _, err := conn.Write([]byte(domain + "\r\n")); err != nil {
		return "", fmt.Errorf("write failed: %w", err)
	}

	raw, err := io.ReadAll(conn)
	if err != nil {
		return "", fmt.Errorf("read failed: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("empty response from server")
	}

	return string(raw), nil
}
