// Command tessera is the tiling layout engine CLI.
package main

import (
	"github.com/bnema/tessera/internal/cli/cmd"
	"github.com/bnema/tessera/internal/domain/build"
)

// Build information set via ldflags
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Current(version, commit, buildDate))
	cmd.Execute()
}
