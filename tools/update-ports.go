package main

import (
	"bytes"
	"encoding/csv"
	"flag"
	"fmt"
	"go/format"
	"io"
	"net/http"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

const ianaCSV = "https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv"

func main() {

	outPath := flag.String("o", "./scan/known.go", "Path of the generated Go file")
	flag.Parse()

	resp, err := http.Get(ianaCSV)
	if err != nil {
		log.Fatalf("Failed to fetch %s: %s", ianaCSV, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("Unexpected status fetching %s: %s", ianaCSV, resp.Status)
	}

	output := &bytes.Buffer{}

	fmt.Fprint(output, `package scan

// data from `+ianaCSV+`
var knownPorts = map[int]string{`)

	written := 0
	lastPort := -1
	reader := csv.NewReader(resp.Body)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("Failed to parse CSV: %s", err)
		}

		if len(record) < 3 || record[2] != "tcp" || record[0] == "" {
			continue
		}

		// ranges such as "49152-65535" are skipped
		port, err := strconv.Atoi(record[1])
		if err != nil || port == lastPort {
			continue
		}

		lastPort = port
		fmt.Fprintf(output, "\n\t%d: %q,", port, record[0])
		written++
	}

	fmt.Fprint(output, "\n}\n")

	src, err := format.Source(output.Bytes())
	if err != nil {
		log.Fatalf("Failed to format generated source: %s", err)
	}

	if err := os.WriteFile(*outPath, src, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %s", *outPath, err)
	}

	log.Infof("Wrote %d service names to %s", written, *outPath)
}
