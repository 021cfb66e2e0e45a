package main

import (
	"os"

	"github.com/fyerfyer/collkit/cmd/collcli/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
