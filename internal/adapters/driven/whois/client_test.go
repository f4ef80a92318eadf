package whois

import (
	"bufio"
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startFakeServer runs a one-shot WHOIS server on a loopback port: read a
// line, write the response, close. Returns its host:port address.
func startFakeServer(t *testing.T, response string) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				if _, err := bufio.NewReader(conn).ReadString('\n'); err != nil {
					return
				}
				conn.Write([]byte(response))
			}(conn)
		}
	}()

	return ln.Addr().String()
}

func TestServersFor_OverrideReplacesBuiltins(t *testing.T) {
	client := NewClient(Config{
		ServerOverrides: map[string]string{"com": "whois.example.test"},
	})

	assert.Equal(t, []string{"whois.example.test"}, client.serversFor("com"))
}

func TestServersFor_UnknownTLDUsesDefaults(t *testing.T) {
	client := NewClient(Config{})
	assert.Equal(t, defaultServers, client.serversFor("zz"))
}

func TestServersFor_KnownTLD(t *testing.T) {
	client := NewClient(Config{})
	servers := client.serversFor("cz")
	assert.Equal(t, tldServers["cz"], servers)
}

func TestLookup_EmptyAndInvalidDomains(t *testing.T) {
	client := NewClient(Config{})

	_, _, err := client.Lookup(context.Background(), "  ")
	assert.Error(t, err)

	_, _, err = client.Lookup(context.Background(), "nodots")
	assert.Error(t, err)
}

func TestLookup_FakeServerExchange(t *testing.T) {
	const response = "Domain Name: EXAMPLE.COM\nRegistrar: Test Registrar\n"
	addr := startFakeServer(t, response)

	client := NewClient(Config{
		Timeout:           2 * time.Second,
		RequestsPerSecond: 100,
		ServerOverrides:   map[string]string{"test": addr},
	})

	raw, server, err := client.Lookup(context.Background(), "Example.TEST")
	require.NoError(t, err)
	assert.Equal(t, response, raw)
	assert.Equal(t, addr, server)
}

func TestLookup_EmptyResponseIsAnError(t *testing.T) {
	addr := startFakeServer(t, "")

	client := NewClient(Config{
		Timeout:           2 * time.Second,
		RequestsPerSecond: 100,
		ServerOverrides:   map[string]string{"test": addr},
	})

	_, _, err := client.Lookup(context.Background(), "example.test")
	require.Error(t, err)

	var qerr *QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, "example.test", qerr.Domain)
	assert.Equal(t, addr, qerr.Server)
	assert.Contains(t, qerr.Error(), "empty response")
}

func TestLookup_UnreachableServer(t *testing.T) {
	// Reserve a port, then close it so nothing is listening there.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	client := NewClient(Config{
		Timeout:           500 * time.Millisecond,
		RequestsPerSecond: 100,
		ServerOverrides:   map[string]string{"test": addr},
	})

	_, _, err = client.Lookup(context.Background(), "example.test")
	require.Error(t, err)

	var qerr *QueryError
	assert.ErrorAs(t, err, &qerr)
}

func TestLookup_CancelledContext(t *testing.T) {
	client := NewClient(Config{RequestsPerSecond: 100})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := client.Lookup(ctx, "example.com")
	assert.Error(t, err)
}

func TestQueryError_Unwrap(t *testing.T) {
	inner := context.DeadlineExceeded
	qerr := &QueryError{Domain: "example.com", Server: "whois.test", Err: inner}

	assert.ErrorIs(t, qerr, inner)
	assert.True(t, strings.Contains(qerr.Error(), "example.com"))
	assert.True(t, strings.Contains(qerr.Error(), "whois.test"))
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{})
	assert.Equal(t, DefaultConfig.Timeout, client.timeout)
	assert.Equal(t, float64(DefaultConfig.RequestsPerSecond), float64(client.limiter.Limit()))
	assert.Equal(t, DefaultConfig.BurstSize, client.limiter.Burst())
}

func TestTLDServers_CoverSupportedSuffixes(t *testing.T) {
	for _, tld := range []string{"com", "net", "org", "cz", "jp", "uk", "ru"} {
		assert.NotEmpty(t, tldServers[tld], "tld %s", tld)
	}
}
