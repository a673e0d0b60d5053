package main

import (
	"fmt"
	"os"
)

func main() {
	cmd, ctx := newRootCommand()
	err := cmd.Execute()
	if closeErr := ctx.close(); closeErr != nil {
		fmt.Fprintln(os.Stderr, "Warning: close log file:", closeErr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
