package main

import (
	"github.com/Nyaadanbou/minecraft-versions/pkg/cli"
)

func main() {
	cli.Execute()
}
