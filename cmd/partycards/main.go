package main

import (
	"github.com/mcoot/partycards-go/internal/cli"
)

func main() {
	cli.Execute()
}
