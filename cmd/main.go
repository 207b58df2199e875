package main

import (
	"context"
	"log"

	"employee-directory/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatalf("employee-directory: %v", err)
	}
}
