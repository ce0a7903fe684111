package scan

import (
	"context"
	"fmt"
	"net"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type ConnectScanner struct {
	connectTimeout time.Duration
	bannerTimeout  time.Duration
	maxRoutines    int
	dialer         Dialer
	onOpen         func(ProbeResult)
}

func NewConnectScanner(connectTimeout, bannerTimeout time.Duration, paralellism int) *ConnectScanner {
	return &ConnectScanner{
		connectTimeout: connectTimeout,
		bannerTimeout:  bannerTimeout,
		maxRoutines:    paralellism,
		dialer:         &net.Dialer{KeepAlive: -1},
	}
}

func (s *ConnectScanner) SetDialer(d Dialer) {
	s.dialer = d
}

// OnOpen registers a callback invoked from the collecting goroutine as each
// open port arrives, before the report is sorted.
func (s *ConnectScanner) OnOpen(fn func(ProbeResult)) {
	s.onOpen = fn
}

// Scan probes every port in [startPort, endPort] on host with at most
// paralellism probes in flight. The range is validated before any socket is
// opened. If ctx is cancelled the ports found so far are returned along with
// ctx.Err().
func (s *ConnectScanner) Scan(ctx context.Context, host string, startPort, endPort int) (*ScanReport, error) {

	if err := ValidateRange(startPort, endPort); err != nil {
		return nil, err
	}
	if s.maxRoutines < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidConcurrency, s.maxRoutines)
	}

	routines := s.maxRoutines
	if count := endPort - startPort + 1; routines > count {
		routines = count
	}

	logrus.Debugf("Scanning %s ports %d-%d on %d routines...", host, startPort, endPort, routines)
	startTime := time.Now()

	wg := &sync.WaitGroup{}
	jobChan := make(chan ProbeTarget, routines)
	resultChan := make(chan ProbeResult, routines)

	for i := 0; i < routines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobChan {
				select {
				case <-ctx.Done():
					continue
				default:
				}
				resultChan <- Probe(ctx, s.dialer, job, s.connectTimeout, s.bannerTimeout)
			}
		}()
	}

	go func() {
	dispatch:
		for port := startPort; port <= endPort; port++ {
			select {
			case <-ctx.Done():
				break dispatch
			case jobChan <- ProbeTarget{Host: host, Port: port}:
			}
		}
		close(jobChan)
		wg.Wait()
		close(resultChan)
	}()

	report := NewScanReport(host)

	for result := range resultChan {
		if !result.Open {
			continue
		}
		if s.onOpen != nil {
			s.onOpen(result)
		}
		report.OpenPorts = append(report.OpenPorts, result)
	}

	sort.Slice(report.OpenPorts, func(i, j int) bool {
		return report.OpenPorts[i].Port < report.OpenPorts[j].Port
	})

	logrus.Debugf("Scan of %s finished in %s, %d open", host, time.Since(startTime), len(report.OpenPorts))

	if err := ctx.Err(); err != nil {
		return report, err
	}

	return report, nil
}

// Scan runs a one-off connect scan with a fresh ConnectScanner.
func Scan(ctx context.Context, host string, startPort, endPort, concurrency int, connectTimeout, bannerTimeout time.Duration) (*ScanReport, error) {
	return NewConnectScanner(connectTimeout, bannerTimeout, concurrency).Scan(ctx, host, startPort, endPort)
}
