package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	passwordstrength "github.com/baditaflorin/go_password_strength"
	"github.com/baditaflorin/go_password_strength/internal/adapters/render"
)

var verbose bool

func init() {
	flag.BoolVar(&verbose, "verbose", false, "Log evaluation steps to stderr")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nReads one password from standard input and prints a strength report.\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	opts := []passwordstrength.Option{}
	if !verbose {
		opts = append(opts, passwordstrength.WithSilentLogger())
	}

	chk, err := passwordstrength.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing checker: %v\n", err)
		os.Exit(1)
	}
	defer chk.Close()

	fmt.Println("--- Password Strength Analyzer ---")
	fmt.Print("Enter your password: ")

	password := readLine(os.Stdin)
	if password == "" {
		fmt.Println("No password entered.")
		return
	}

	report := chk.Check(context.Background(), password)

	fmt.Println()
	render.NewTextRenderer().Render(os.Stdout, report)
}

// readLine reads a single line, stripping the trailing newline while
// preserving internal whitespace. End of input counts as an empty line.
func readLine(f *os.File) string {
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return ""
	}
	return scanner.Text()
}
