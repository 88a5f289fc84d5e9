package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/laurisseau/app-dev/internal/config"
)

// ProbeURL returns the URL under which a server started with cfg is
// reachable from the same host. A wildcard bind address is probed over
// loopback.
func ProbeURL(cfg config.Server) string {
	host := cfg.Host

	if ip := net.ParseIP(host); ip == nil || ip.IsUnspecified() {
		if ip != nil && ip.To4() == nil {
			host = "::1"
		} else {
			host = "127.0.0.1"
		}
	}

	return "http://" + net.JoinHostPort(host, strconv.Itoa(cfg.Port)) + "/"
}

// Probe checks that the server behind url answers with the greeting.
func Probe(ctx context.Context, client *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return err
	}

	resp, err := client.Do(req)

	if err != nil {
		return fmt.Errorf("cannot reach %s: %w", url, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code from %s: %d", url, resp.StatusCode)
	}

	// Read one byte more than expected so a longer body is detected.
	body, err := io.ReadAll(io.LimitReader(resp.Body, int64(len(Greeting))+1))

	if err != nil {
		return fmt.Errorf("cannot read response from %s: %w", url, err)
	}

	if string(body) != Greeting {
		return fmt.Errorf("unexpected response body from %s: %q", url, string(body))
	}

	return nil
}
