package console

import (
	"strconv"
	"strings"

	"github.com/ezrec/twopda/machine"
)

// configure builds a machine from interactive prompts, offers to save it,
// and enters the word loop.
func (c *Console) configure() {
	m := &machine.Machine{}
	ok := c.promptAlphabet(m) &&
		c.promptStates(m) &&
		c.promptStart(m) &&
		c.promptEnds(m) &&
		c.promptTransitions(m)
	if !ok {
		return
	}

	c.printf("Do you want to save this machine to a file? (yes/no)\n")
	choice, ok := c.readLine()
	if !ok {
		return
	}
	if strings.EqualFold(choice, "yes") {
		c.printf("Enter the file name: \n")
		name, ok := c.readLine()
		if !ok {
			return
		}
		saved, err := machine.Save(name, m)
		if err != nil {
			c.printf("Error saving machine to file: %v\n", err)
		} else {
			c.printf("Machine saved to file: %v\n", saved)
		}
	}

	c.wordLoop(m)
}

// promptAlphabet reads the input alphabet, re-prompting until it is valid.
func (c *Console) promptAlphabet(m *machine.Machine) bool {
	for {
		c.printf("Enter the input alphabet (separate symbols with commas, blanks/spaces not allowed): \n")
		line, ok := c.readLine()
		if !ok {
			return false
		}

		alphabet := strings.Split(line, ",")
		if line == "" {
			alphabet = nil
		}
		if err := machine.ValidateAlphabet(alphabet); err != nil {
			c.printf("Invalid input alphabet: %v\n", err)
			continue
		}

		m.Alphabet = alphabet
		return true
	}
}

// promptStates reads the state set, re-prompting until it is valid.
func (c *Console) promptStates(m *machine.Machine) bool {
	for {
		c.printf("Enter the set of states (separate symbols with commas, blanks/spaces not allowed): \n")
		line, ok := c.readLine()
		if !ok {
			return false
		}

		states, err := machine.ParseStates(line)
		if err == nil {
			err = machine.ValidateStates(states)
		}
		if err != nil {
			c.printf("Invalid states: %v\n", err)
			continue
		}

		m.States = states
		return true
	}
}

// promptStart reads the start state, re-prompting until it is a member of
// the state set.
func (c *Console) promptStart(m *machine.Machine) bool {
	for {
		c.printf("Enter the starting state (blanks/spaces not allowed): \n")
		line, ok := c.readLine()
		if !ok {
			return false
		}

		start, err := strconv.Atoi(line)
		if err != nil {
			c.printf("Invalid start state: %v\n", machine.ErrNotANumber(line))
			continue
		}
		if err := machine.ValidateStart(start, m.States); err != nil {
			c.printf("Invalid start state: %v\n", err)
			continue
		}

		m.Start = start
		return true
	}
}

// promptEnds reads the end states, re-prompting until they are valid.
func (c *Console) promptEnds(m *machine.Machine) bool {
	for {
		c.printf("Enter the end states (separate symbols with commas, blanks/spaces not allowed): \n")
		line, ok := c.readLine()
		if !ok {
			return false
		}

		ends, err := machine.ParseStates(line)
		if err == nil {
			err = machine.ValidateEnds(ends, m.States)
		}
		if err != nil {
			c.printf("Invalid end states: %v\n", err)
			continue
		}

		m.Ends = ends
		return true
	}
}

// promptTransitions batch reads transition tuples until 'end'. The batch
// is validated as a whole; any bad tuple reports every error and restarts
// the batch.
func (c *Console) promptTransitions(m *machine.Machine) bool {
	c.printf("Enter the transitions in the following format:\n")
	c.printf("current_state,input_symbol,pop_stack1,pop_stack2,push_stack1,push_stack2,next_state\n")
	c.printf("Separate the elements with commas. Blanks/spaces are not allowed.\n")
	c.printf("When you're done, type 'end'.\n")

	var lines []string
	for {
		line, ok := c.readLine()
		if !ok {
			return false
		}

		if !strings.EqualFold(line, "end") {
			lines = append(lines, line)
			continue
		}

		if len(lines) == 0 {
			c.printf("No transitions entered. Please try again.\n")
			continue
		}

		var transitions []machine.Transition
		var errs []error
		for _, text := range lines {
			tr, err := machine.ParseTransition(text)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			transitions = append(transitions, tr)
		}

		if len(errs) != 0 {
			c.printf("One or more transitions are invalid.\n")
			for _, err := range errs {
				c.printf("%v\n", err)
			}
			c.printf("Please enter all transitions again:\n")
			lines = nil
			continue
		}

		m.Transitions = transitions
		return true
	}
}
