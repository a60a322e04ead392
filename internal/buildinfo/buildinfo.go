// Package buildinfo reports the version data stamped into the binary at
// link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/mindfulmoments/internal/buildinfo.buildVersion=v1.0.0 \
//	  -X github.com/dmitrijs2005/mindfulmoments/internal/buildinfo.buildDate=2025-03-01 \
//	  -X github.com/dmitrijs2005/mindfulmoments/internal/buildinfo.buildCommit=abc123" ./cmd/journal
package buildinfo

import (
	"fmt"
	"io"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func valueOrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// PrintBuildData writes version, date and commit to w, one per line.
// Values that were not stamped print as "N/A".
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", valueOrNA(buildVersion))
	fmt.Fprintf(w, "Build date: %s\n", valueOrNA(buildDate))
	fmt.Fprintf(w, "Build commit: %s\n", valueOrNA(buildCommit))
}
