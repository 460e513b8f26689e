package main

import (
	"github.com/playforge/bangate/internal/cli"
)

func main() {
	cli.Execute()
}
