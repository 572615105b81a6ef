package adapter

import (
	"context"
	"net"
	"net/url"
	"time"
)

// dialConnectivity probes the remote target with a plain TCP dial. It is
// deliberately cheap: the sync coordinator calls it synchronously before
// every sync attempt to fail fast when the device is offline.
type dialConnectivity struct {
	address string
	timeout time.Duration
}

// NewDialConnectivity builds a Connectivity probe for target, which may be a
// full URL (scheme and path are discarded) or a bare host:port. A zero
// timeout defaults to 3 seconds.
func NewDialConnectivity(target string, timeout time.Duration) Connectivity {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	return &dialConnectivity{address: hostPort(target), timeout: timeout}
}

// Online implements Connectivity.
func (c *dialConnectivity) Online(ctx context.Context) bool {
	if c.address == "" {
		return false
	}

	dialer := net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.address)
	if err != nil {
		return false
	}

	_ = conn.Close()
	return true
}

func hostPort(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		// not a URL, assume host:port already
		return target
	}

	host := u.Host
	if u.Port() == "" {
		switch u.Scheme {
		case "https":
			host = net.JoinHostPort(u.Hostname(), "443")
		default:
			host = net.JoinHostPort(u.Hostname(), "80")
		}
	}
	return host
}
