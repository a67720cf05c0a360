package main

import (
	"context"

	"todoscan/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
