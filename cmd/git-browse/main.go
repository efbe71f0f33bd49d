package main

import (
	"fmt"
	"os"
	"runtime"
)

// Version information, set at build time with
// -ldflags "-X main.version=... -X main.commit=... -X main.date=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(Execute())
}

// versionString returns the version string.
func versionString() string {
	return fmt.Sprintf("git-browse %s (%s, %s, %s)", version, commit[:min(7, len(commit))], date, runtime.Version())
}
