package main

import (
	"os"

	"github.com/rpgo/rent-vs-buy/cmd/rentvsbuy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
