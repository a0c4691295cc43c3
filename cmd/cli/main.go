package main

import (
	"bufio"
	"fmt"
	"os"

	"recordtable/pkg/shell"
)

func main() {
	fmt.Println("Record Table shell. Type 'help' for commands.")

	sess := shell.NewSession(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(shell.Prompt)
		if !scanner.Scan() {
			break
		}
		if !sess.Exec(scanner.Text()) {
			return
		}
	}
}
