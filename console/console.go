// Package console implements the interactive surface of the simulator:
// the main menu, the machine configurator, directory based loading, and
// the word loop.
package console

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ezrec/twopda/machine"
	"github.com/ezrec/twopda/simulator"
)

const separator = "---------------------------------------------------"

// Console drives the menu over a line oriented input and an output writer.
type Console struct {
	Dir      string // Directory searched for machine files.
	MaxSteps int    // Step budget handed to the simulator; 0 is unbounded.
	Verbose  bool   // Passed through to the simulator.

	in  *bufio.Scanner
	out io.Writer
}

// New creates a console reading from in and writing to out, loading and
// saving machine files in the current directory.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		Dir: ".",
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// readLine prints the prompt and reads one trimmed input line. ok is false
// once the input is exhausted.
func (c *Console) readLine() (line string, ok bool) {
	c.printf(">> ")
	ok = c.in.Scan()
	line = strings.TrimSpace(c.in.Text())
	return
}

func center(text string, width int) string {
	padding := (width - len(text)) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat(" ", padding) + text
}

// Main shows the banner and runs the menu loop until 'exit' or end of
// input.
func (c *Console) Main() error {
	c.printf("%v\n", separator)
	c.printf("%v\n", center("2-STACK PDA SIMULATOR", len(separator)))

	for {
		c.printf("%v\n", separator)
		c.printf("Menu:\n")
		c.printf("Type 'new' to create a new machine.\n")
		c.printf("Type 'load' to load a machine from a file.\n")
		c.printf("Type 'exit' to close the app.\n")
		c.printf("%v\n", separator)
		c.printf("Enter your choice: \n")

		choice, ok := c.readLine()
		if !ok {
			return nil
		}

		switch choice {
		case "new":
			c.configure()
		case "load":
			c.load()
		case "exit":
			c.printf("Exiting the 2-Stack PDA simulator. Goodbye!\n")
			return nil
		default:
			c.printf("Invalid choice. Please try again.\n\n")
		}
	}
}

// load lists the machine files in the console directory and runs the
// selected one.
func (c *Console) load() {
	names, err := machine.List(c.Dir)
	if err != nil {
		c.printf("Error reading directory: %v\n", err)
		return
	}
	if len(names) == 0 {
		c.printf("No machine files found in the current directory.\n")
		return
	}

	c.printf("Select a machine to load:\n")
	for n, name := range names {
		c.printf("%v. %v\n", n+1, name)
	}

	selection := -1
	for selection < 0 || selection > len(names) {
		c.printf("Enter the number of the machine to load (or 0 to cancel): \n")
		line, ok := c.readLine()
		if !ok {
			return
		}
		selection, err = strconv.Atoi(line)
		if err != nil {
			selection = -1
		}
	}
	if selection == 0 {
		return
	}

	name := names[selection-1]
	m, err := machine.Load(filepath.Join(c.Dir, name))
	if err != nil {
		c.printf("Error reading from file: %v\n", err)
		return
	}

	c.printf("Machine: %v loaded!\n", name)
	c.wordLoop(m)
}

// wordLoop reads words until 'menu', simulating each one.
func (c *Console) wordLoop(m *machine.Machine) {
	sim, err := simulator.NewSimulator(m)
	if err != nil {
		c.printf("Invalid machine: %v\n", err)
		return
	}
	sim.MaxSteps = c.MaxSteps
	sim.Verbose = c.Verbose

	for {
		c.printf("Enter the input string (or 'menu' or 'show'): \n")
		line, ok := c.readLine()
		if !ok {
			return
		}

		switch line {
		case "menu":
			return
		case "show":
			c.printf("%v\n", m)
		default:
			word, err := ExpandWord(line)
			if err != nil {
				c.printf("%v\n", err)
				continue
			}
			c.simulate(sim, word)
		}
	}
}

// simulate runs one word and prints the trace and the verdict.
func (c *Console) simulate(sim *simulator.Simulator, word string) {
	res, err := sim.Simulate(word)
	if err != nil {
		c.printf("%v\n\n", err)
		return
	}

	c.printf("Stack 1: %v\n", stackString([]string{machine.Marker}))
	c.printf("Stack 2: %v\n", stackString([]string{machine.Marker}))
	c.printf("\n")

	for _, step := range res.Trace {
		c.printf("Transition: %v\n", step.Transition)
		c.printf("Stack 1: %v\n", stackString(step.Stack1))
		c.printf("Stack 2: %v\n", stackString(step.Stack2))
		c.printf("\n")
	}

	for _, fault := range res.Faults {
		c.printf("Fault: %v\n", fault)
	}

	if res.Accepted {
		c.printf("Word %v accepted!\n\n", word)
	} else {
		c.printf("Word %v failed!\n\n", word)
	}
}

func stackString(symbols []string) string {
	return "[" + strings.Join(symbols, ", ") + "]"
}
