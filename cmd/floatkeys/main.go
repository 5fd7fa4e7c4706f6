// Command floatkeys encodes floats as order preserving keys and checks that
// sorting by key agrees with sorting by value.
package main

import "os"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
