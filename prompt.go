package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	statePrompt    = "Enter a state (e.g. California, New York, etc.)"
	districtPrompt = "Enter a district (e.g. 1, (at Large), 2, etc.)"
)

// targetQuery holds the labels the target district identifier is built from.
type targetQuery struct {
	State    string
	District string
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// promptTarget fills the empty fields of q from in, one line each, state first.
// Prompts are written to out only when interactive is set. Input is kept
// verbatim apart from the line terminator.
func promptTarget(in io.Reader, out io.Writer, interactive bool, q targetQuery) (targetQuery, error) {
	reader := bufio.NewReader(in)

	if q.State == "" {
		state, err := readLine(reader, out, interactive, statePrompt)
		if err != nil {
			return q, fmt.Errorf("state: %w", err)
		}
		q.State = state
	}

	if q.District == "" {
		district, err := readLine(reader, out, interactive, districtPrompt)
		if err != nil {
			return q, fmt.Errorf("district: %w", err)
		}
		q.District = district
	}

	return q, nil
}

func readLine(reader *bufio.Reader, out io.Writer, interactive bool, prompt string) (string, error) {
	if interactive {
		fmt.Fprintln(out, prompt)
	}

	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
