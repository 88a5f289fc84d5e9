package main

import (
	"context"

	"github.com/laurisseau/app-dev/cmd"
)

func main() {
	cmd.Execute(context.Background())
}
