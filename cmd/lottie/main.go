// Command lottie inspects and headlessly plays Lottie animations with the
// default engine.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/drift-lottie/cmd/lottie/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
