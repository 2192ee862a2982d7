package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvmaze/internal/cli"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cli.Execute(ctx, version)
}
