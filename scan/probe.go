package scan

import (
	"context"
	"net"
	"time"

	"github.com/sirupsen/logrus"
)

// Dialer opens the TCP connections used by probes. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Probe attempts a TCP connection to target and, if it succeeds, reads
// whatever the remote side sends within bannerTimeout. Every transport error
// is folded into a closed result; Probe never returns an error.
//
// Cancelling ctx does not cut short a probe that is already connecting or
// reading: it runs until its own timeouts expire and always closes its socket.
func Probe(ctx context.Context, d Dialer, target ProbeTarget, connectTimeout, bannerTimeout time.Duration) ProbeResult {

	result := ProbeResult{Port: target.Port}

	dialCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), connectTimeout)
	defer cancel()

	conn, err := d.DialContext(dialCtx, "tcp", target.Address())
	if err != nil {
		logrus.Debugf("Port %d closed: %s", target.Port, err)
		return result
	}
	defer conn.Close()

	result.Open = true
	result.Banner = readBanner(conn, bannerTimeout)

	return result
}

func readBanner(conn net.Conn, timeout time.Duration) string {
	if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return ""
	}

	buf := make([]byte, maxBannerBytes)
	n, err := conn.Read(buf)
	if n == 0 {
		if err != nil {
			logrus.Debugf("No banner from %s: %s", conn.RemoteAddr(), err)
		}
		return ""
	}

	return DecodeBanner(buf[:n])
}
