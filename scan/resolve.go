package scan

import (
	"fmt"
	"net"
)

// lookupIP is swapped out in tests.
var lookupIP = net.LookupIP

// ResolveHost checks that host is an IP literal or a name that resolves, and
// returns the first address. The scanner itself dials host as given.
func ResolveHost(host string) (net.IP, error) {

	if host == "" {
		return nil, fmt.Errorf("%w: empty host", ErrResolve)
	}

	if ip := net.ParseIP(host); ip != nil {
		return ip, nil
	}

	ips, err := lookupIP(host)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %s", ErrResolve, host, err)
	}
	if len(ips) == 0 {
		return nil, fmt.Errorf("%w '%s': no addresses", ErrResolve, host)
	}

	return ips[0], nil
}
