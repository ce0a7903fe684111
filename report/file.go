// Package report serializes scan reports and persists them to disk.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/lnusuite/lnu/scan"
	"github.com/sirupsen/logrus"
)

// Marshal encodes a report as indented JSON:
//
//	{"host": "...", "open_ports": [{"port": 22, "banner": "SSH-2.0-..."}]}
//
// The banner key is omitted for ports that sent nothing.
func Marshal(r *scan.ScanReport) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("nil report")
	}

	out := *r
	if out.OpenPorts == nil {
		out.OpenPorts = []scan.ProbeResult{}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteFile writes the JSON form of r to path, creating parent directories.
// The file is replaced atomically, so a failed write leaves any previous
// content in place.
func WriteFile(path string, r *scan.ScanReport) error {
	data, err := Marshal(r)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logrus.Debugf("Wrote report for %s to %s", r.Host, path)
	return nil
}
