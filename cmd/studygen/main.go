// Package main implements studygen, a command-line front end that generates
// a study guide, flashcards or a quiz for a topic and prints it.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(defaultDeps()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
