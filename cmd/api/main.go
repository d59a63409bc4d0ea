package main

import (
	"fmt"
	"os"
	_ "time/tzdata" // TIMEZONE must resolve in minimal containers
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
