package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lnusuite/lnu/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *scan.ScanReport {
	r := scan.NewScanReport("192.0.2.1")
	r.OpenPorts = append(r.OpenPorts,
		scan.ProbeResult{Port: 22, Open: true, Banner: "SSH-2.0-OpenSSH_9.6"},
		scan.ProbeResult{Port: 80, Open: true},
	)
	return r
}

func TestMarshalShape(t *testing.T) {
	data, err := Marshal(sampleReport())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "192.0.2.1", decoded["host"])

	ports := decoded["open_ports"].([]interface{})
	require.Len(t, ports, 2)

	first := ports[0].(map[string]interface{})
	assert.Equal(t, float64(22), first["port"])
	assert.Equal(t, "SSH-2.0-OpenSSH_9.6", first["banner"])

	second := ports[1].(map[string]interface{})
	assert.Equal(t, float64(80), second["port"])
	assert.NotContains(t, second, "banner")
	assert.NotContains(t, second, "Open")
}

func TestMarshalNoOpenPorts(t *testing.T) {
	data, err := Marshal(&scan.ScanReport{Host: "192.0.2.2"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"host": "192.0.2.2", "open_ports": []}`, string(data))
}

func TestMarshalNil(t *testing.T) {
	_, err := Marshal(nil)
	assert.Error(t, err)
}

func TestWriteFileCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "scan.json")

	require.NoError(t, WriteFile(path, sampleReport()))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), `"host": "192.0.2.1"`)
}

func TestWriteFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.json")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	require.NoError(t, WriteFile(path, sampleReport()))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "original", string(got))
}

func TestWriteFileFailurePreservesOriginal(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "scan.json")
	require.NoError(t, os.WriteFile(path, []byte("original"), 0o644))

	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() {
		_ = os.Chmod(dir, 0o755)
	})

	assert.Error(t, WriteFile(path, sampleReport()))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))
}
