package main

import "github.com/okaneco/posterust/internal/cli"

func main() {
	cli.Execute()
}
