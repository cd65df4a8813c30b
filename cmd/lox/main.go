// cmd/lox/main.go
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	loxerrors "lox/internal/errors"
	"lox/internal/repl"
	"lox/internal/vm"
)

const version = "0.1.0"

// Exit codes follow the sysexits convention: 65 for bad input (compile
// errors), 70 for internal runtime faults, 74 for I/O failures.
const (
	exitUsage    = 64
	exitDataErr  = 65
	exitSoftware = 70
	exitIOErr    = 74
)

func main() {
	args := os.Args[1:]

	switch {
	case len(args) == 0:
		repl.Start()
	case args[0] == "--help" || args[0] == "-h" || args[0] == "help":
		showUsage()
	case args[0] == "--version" || args[0] == "-v" || args[0] == "version":
		fmt.Printf("lox %s\n", version)
	case len(args) == 1:
		runFile(args[0])
	default:
		showUsage()
		os.Exit(exitUsage)
	}
}

func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", errors.Wrapf(err, "could not read %q", path))
		os.Exit(exitIOErr)
	}

	machine := vm.New()
	if _, err := machine.Interpret(string(source)); err != nil {
		// Diagnostics were already printed to stderr by the compiler.
		if loxerrors.IsCompileError(err) {
			os.Exit(exitDataErr)
		}
		os.Exit(exitSoftware)
	}
}

func showUsage() {
	fmt.Println("Usage:")
	fmt.Println("  lox              start the REPL")
	fmt.Println("  lox <file>       compile and run a file")
	fmt.Println("  lox --version    print the version")
}
