package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hbagde424/ElectionAT-sub001/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "electionat: %v\n", err)
		os.Exit(1)
	}
}
