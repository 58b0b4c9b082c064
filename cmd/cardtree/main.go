package main

import (
	"fmt"
	"os"

	"github.com/inkwell-run/cardtree/pkg/logging"
)

func main() {
	logger := logging.Default()
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
