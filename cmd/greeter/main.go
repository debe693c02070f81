// Package main is the entrypoint for the Greeter service.
// Greeter answers every GET request with a fixed HTML greeting.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aelexs/greeter-service/internal/server"
)

const version = "0.1.0"

func main() {
	ctx := context.Background()
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	return server.Run(ctx, server.Params{
		Name:    "greeter",
		Version: version,
	}, nil)
}
