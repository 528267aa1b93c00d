package main

import (
	"context"

	"github.com/faizmokh/kamus/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}

