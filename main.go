package main

import (
	"context"
	"os"

	"dirscope/cmd"

	"github.com/charmbracelet/fang"
)

func main() {
	if err := fang.Execute(context.TODO(), cmd.RootCmd); err != nil {
		os.Exit(1)
	}
}
