package main

import (
	"github.com/unitboard/unitboard/cmd"
)

func main() {
	cmd.Execute()
}
