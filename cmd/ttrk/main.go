package main

import (
	"context"

	"github.com/faizmokh/ttrk/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
