//go:build !wasip1

package main

import (
	"fmt"
	"os"
)

// numffi-wasm only has a meaning when compiled for wasip1.
func main() {
	fmt.Fprintln(os.Stderr, "numffi-wasm: build with GOOS=wasip1 GOARCH=wasm -buildmode=c-shared")
	os.Exit(2)
}
