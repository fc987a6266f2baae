package main

import (
	"github.com/panw-tools/panw-utils/cmd"
)

func main() {
	cmd.Execute()
}
