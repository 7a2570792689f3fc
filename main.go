// Package main is the entry point for the Findhub CLI, a terminal client
// for the Findhub tutorial-sharing platform.
package main

import (
	"github.com/Sahilkhan-creator/Learnstream/cmd"
)

func main() {
	cmd.Execute()
}
