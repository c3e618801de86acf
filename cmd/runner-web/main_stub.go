//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"
)

// main explains how to build this entrypoint; it only runs in a browser.
func main() {
	fmt.Fprintln(os.Stderr, "runner-web must be built with GOOS=js GOARCH=wasm; use 'runner window' on the desktop")
	os.Exit(2)
}
