// ABOUTME: Entry point for the bimarket CLI
// ABOUTME: Terminal client and interactive storefront for BiMarket

package main

import (
	"fmt"
	"os"

	"github.com/GKcoding-prog/BiMarket/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
