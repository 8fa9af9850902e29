// Command telemetryctl queries the telemetry API from a terminal.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cobra.CheckErr(newRootCmd(os.Stdout).Execute())
}
