// internal/repl/repl.go
package repl

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"lox/internal/vm"
)

// Start runs the interactive loop: one expression per line, one shared VM
// whose stack is reset per run. Errors are reported and the loop continues.
// The banner and prompt are only shown on a terminal so piped input stays
// clean.
func Start() {
	interactive := isatty.IsTerminal(os.Stdin.Fd())
	if interactive {
		fmt.Println("lox | type 'exit' to quit")
	}

	in := bufio.NewScanner(os.Stdin)
	machine := vm.New()

	for {
		if interactive {
			fmt.Print("> ")
		}
		if !in.Scan() {
			break
		}
		line := in.Text()
		if line == "exit" {
			break
		}
		if line == "" {
			continue
		}

		// Compile errors were already printed; nothing else to do here.
		machine.Interpret(line)
	}
}
