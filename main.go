package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goforj/godump"
	"golang.org/x/term"

	"go.creack.net/rpn/eval"
)

var flDebug = flag.Bool("debug", false, "Dump each evaluation result.")

func printLines(lines []string) {
	for _, line := range lines {
		fmt.Println(line)
	}
}

func run() error {
	session := eval.NewSession()

	// Only prompt on a real terminal so piped input stays clean.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	printLines(eval.Help())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		res := session.Eval(line)
		if *flDebug {
			godump.Dump(res)
		}
		printLines(res.Output)
		if res.Quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	fmt.Printf("Final stack: %v\n", session.Stack())
	return nil
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("Fail: %s.", err)
	}
}
