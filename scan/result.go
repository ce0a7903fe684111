package scan

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

type ProbeTarget struct {
	Host string
	Port int
}

func (t ProbeTarget) Address() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// ProbeResult is the outcome of a single probe. Banner is only ever set for
// open ports, and an empty Banner means no data was observed.
type ProbeResult struct {
	Port   int    `json:"port"`
	Open   bool   `json:"-"`
	Banner string `json:"banner,omitempty"`
}

func (r ProbeResult) HasBanner() bool {
	return r.Banner != ""
}

// ScanReport holds the open ports of one host, ascending by port.
type ScanReport struct {
	Host      string        `json:"host"`
	OpenPorts []ProbeResult `json:"open_ports"`
}

func NewScanReport(host string) *ScanReport {
	return &ScanReport{
		Host:      host,
		OpenPorts: []ProbeResult{},
	}
}

func (r *ScanReport) Ports() []int {
	ports := make([]int, 0, len(r.OpenPorts))
	for _, result := range r.OpenPorts {
		ports = append(ports, result.Port)
	}
	return ports
}

func (r *ScanReport) String() string {

	text := fmt.Sprintf("Scan results for host %s\n", r.Host)

	if len(r.OpenPorts) == 0 {
		return fmt.Sprintf("%s\t%s\n", text, "No open ports found")
	}

	text = fmt.Sprintf(
		"%s\t%s\t%s\t%s\t%s\n",
		text,
		pad("PORT", 10),
		pad("STATE", 10),
		pad("SERVICE", 16),
		"BANNER",
	)

	for _, result := range r.OpenPorts {
		text = fmt.Sprintf(
			"%s\t%s\t%s\t%s\t%s\n",
			text,
			pad(fmt.Sprintf("%d/tcp", result.Port), 10),
			pad("OPEN", 10),
			pad(DescribePort(result.Port), 16),
			singleLine(result.Banner, 60),
		)
	}

	return text
}

func pad(input string, length int) string {
	for len(input) < length {
		input += " "
	}
	return input
}

func singleLine(banner string, max int) string {
	banner = strings.Join(strings.Fields(banner), " ")
	if runes := []rune(banner); len(runes) > max {
		banner = string(runes[:max]) + "..."
	}
	return banner
}
