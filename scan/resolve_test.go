package scan

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubLookup(t *testing.T, fn func(host string) ([]net.IP, error)) {
	orig := lookupIP
	lookupIP = fn
	t.Cleanup(func() { lookupIP = orig })
}

func TestResolveHostLiteral(t *testing.T) {
	stubLookup(t, func(string) ([]net.IP, error) {
		t.Fatal("literal addresses must not be looked up")
		return nil, nil
	})

	ip, err := ResolveHost("10.0.0.7")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.7", ip.String())

	ip, err = ResolveHost("::1")
	require.NoError(t, err)
	assert.Equal(t, "::1", ip.String())
}

func TestResolveHostName(t *testing.T) {
	stubLookup(t, func(host string) ([]net.IP, error) {
		assert.Equal(t, "scanme.example", host)
		return []net.IP{net.ParseIP("192.0.2.10"), net.ParseIP("192.0.2.11")}, nil
	})

	ip, err := ResolveHost("scanme.example")
	require.NoError(t, err)
	assert.Equal(t, "192.0.2.10", ip.String())
}

func TestResolveHostFailures(t *testing.T) {
	stubLookup(t, func(host string) ([]net.IP, error) {
		if host == "empty.example" {
			return nil, nil
		}
		return nil, errors.New("no such host")
	})

	for _, host := range []string{"", "missing.example", "empty.example"} {
		_, err := ResolveHost(host)
		assert.ErrorIs(t, err, ErrResolve, host)
	}
}
