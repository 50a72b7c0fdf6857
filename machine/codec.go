// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Decode reads the line oriented key=value machine description format:
//
//	inputAlphabet=a,b
//	states=0,1
//	startState=0
//	endStates=1
//	transition=0,a,E,E,a,E,0
//
// Lines without '=' are ignored. Repeated transition keys accumulate, in
// order. An unrecognized key is fatal; malformed transitions are collected
// and reported together. Decode does not validate the result; see
// (*Machine).Validate.
func Decode(r io.Reader) (m *Machine, err error) {
	m = &Machine{}

	var errs []error
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		var lineErr error
		switch key {
		case "inputAlphabet":
			m.Alphabet = strings.Split(value, ",")
		case "states":
			m.States, lineErr = ParseStates(value)
		case "startState":
			m.Start, lineErr = strconv.Atoi(value)
			if lineErr != nil {
				lineErr = ErrNotANumber(value)
			}
		case "endStates":
			m.Ends, lineErr = ParseStates(value)
		case "transition":
			var tr Transition
			tr, lineErr = ParseTransition(value)
			if lineErr == nil {
				m.Transitions = append(m.Transitions, tr)
			}
		default:
			err = ErrFormat{LineNo: lineno, Line: line, Err: ErrKeyUnknown(key)}
			m = nil
			return
		}

		if lineErr != nil {
			errs = append(errs, ErrFormat{LineNo: lineno, Line: line, Err: lineErr})
		}
	}

	if scanErr := scanner.Err(); scanErr != nil {
		errs = append(errs, scanErr)
	}

	err = errors.Join(errs...)
	if err != nil {
		m = nil
	}

	return
}

// Encode writes the machine in the key=value description format read by
// Decode.
func Encode(w io.Writer, m *Machine) (err error) {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "inputAlphabet=%v\n", strings.Join(m.Alphabet, ","))
	fmt.Fprintf(bw, "states=%v\n", strings.Join(intStrings(m.States), ","))
	fmt.Fprintf(bw, "startState=%v\n", m.Start)
	fmt.Fprintf(bw, "endStates=%v\n", strings.Join(intStrings(m.Ends), ","))
	for _, tr := range m.Transitions {
		fmt.Fprintf(bw, "transition=%v\n", tr)
	}

	err = bw.Flush()

	return
}

// machineDoc is the YAML rendition of a machine description. Transitions
// keep their tuple form so both encodings share one transition syntax.
type machineDoc struct {
	InputAlphabet []string `yaml:"inputAlphabet"`
	States        []int    `yaml:"states"`
	StartState    int      `yaml:"startState"`
	EndStates     []int    `yaml:"endStates"`
	Transitions   []string `yaml:"transitions"`
}

// DecodeYAML reads the YAML machine description format. Unknown document
// keys are fatal, matching Decode.
func DecodeYAML(r io.Reader) (m *Machine, err error) {
	var doc machineDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err = dec.Decode(&doc); err != nil {
		return
	}

	m = &Machine{
		Alphabet: doc.InputAlphabet,
		States:   doc.States,
		Start:    doc.StartState,
		Ends:     doc.EndStates,
	}

	var errs []error
	for n, text := range doc.Transitions {
		tr, trErr := ParseTransition(text)
		if trErr != nil {
			errs = append(errs, ErrFormat{LineNo: n + 1, Line: text, Err: trErr})
			continue
		}
		m.Transitions = append(m.Transitions, tr)
	}

	err = errors.Join(errs...)
	if err != nil {
		m = nil
	}

	return
}

// EncodeYAML writes the machine in the YAML description format read by
// DecodeYAML.
func EncodeYAML(w io.Writer, m *Machine) (err error) {
	doc := machineDoc{
		InputAlphabet: m.Alphabet,
		States:        m.States,
		StartState:    m.Start,
		EndStates:     m.Ends,
	}
	for _, tr := range m.Transitions {
		doc.Transitions = append(doc.Transitions, tr.String())
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()

	err = enc.Encode(&doc)

	return
}

func isYAML(path string) bool {
	return strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")
}

// Load reads a machine description file, dispatching on the extension.
func Load(path string) (m *Machine, err error) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	if isYAML(path) {
		return DecodeYAML(file)
	}

	return Decode(file)
}

// Save writes a machine description file, dispatching on the extension.
// A path with no recognized extension gets ".txt" appended. The path
// actually written is returned.
func Save(path string, m *Machine) (saved string, err error) {
	saved = path
	if !isYAML(saved) && !strings.HasSuffix(saved, ".txt") {
		saved += ".txt"
	}

	file, err := os.Create(saved)
	if err != nil {
		return
	}
	defer file.Close()

	if isYAML(saved) {
		err = EncodeYAML(file, m)
	} else {
		err = Encode(file, m)
	}

	return
}

// List returns the loadable machine description files in dir, in name
// order.
func List(dir string) (names []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".txt") || isYAML(name) {
			names = append(names, name)
		}
	}

	return
}
