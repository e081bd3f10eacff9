package main

import "github.com/olehluchkiv/gosolid/internal/cli"

// Set by -ldflags "-X main.version=..." at release time.
var version = "dev"

func main() {
	cli.Execute(version)
}
