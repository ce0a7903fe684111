package scan

import (
	"context"
	"errors"
	"fmt"
)

const (
	MinPort = 1
	MaxPort = 65535
)

var (
	ErrInvalidRange       = errors.New("invalid port range")
	ErrInvalidConcurrency = errors.New("concurrency must be at least 1")
	ErrResolve            = errors.New("cannot resolve host")
)

type Scanner interface {
	Scan(ctx context.Context, host string, startPort, endPort int) (*ScanReport, error)
}

var _ Scanner = (*ConnectScanner)(nil)

func ValidateRange(startPort, endPort int) error {
	if startPort < MinPort || startPort > MaxPort {
		return fmt.Errorf("%w: start port %d outside %d-%d", ErrInvalidRange, startPort, MinPort, MaxPort)
	}
	if endPort < MinPort || endPort > MaxPort {
		return fmt.Errorf("%w: end port %d outside %d-%d", ErrInvalidRange, endPort, MinPort, MaxPort)
	}
	if startPort > endPort {
		return fmt.Errorf("%w: %d-%d", ErrInvalidRange, startPort, endPort)
	}
	return nil
}
