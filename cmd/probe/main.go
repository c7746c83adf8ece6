// Command probe runs the bearer token smoke test against a ParkEase backend
// and manages the token held in the configured session store.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
