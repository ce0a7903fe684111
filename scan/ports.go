package scan

//go:generate go run ../tools/update-ports.go -o known.go

// DescribePort returns the IANA service name registered for a TCP port, or
// an empty string.
func DescribePort(port int) string {
	if s, ok := knownPorts[port]; ok {
		return s
	}

	return ""
}
