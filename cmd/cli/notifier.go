package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// terminalNotifier prints alerts to stderr and reads confirmations from
// stdin. With assumeYes every confirmation is accepted without asking.
type terminalNotifier struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

func newTerminalNotifier(in *bufio.Reader, out io.Writer, assumeYes bool) *terminalNotifier {
	return &terminalNotifier{in: in, out: out, assumeYes: assumeYes}
}

func (n *terminalNotifier) Alert(title, message string) {
	fmt.Fprintf(n.out, "%s: %s\n", title, message)
}

func (n *terminalNotifier) Confirm(title, message string) bool {
	if n.assumeYes {
		return true
	}
	fmt.Fprintf(n.out, "%s: %s [y/N] ", title, message)
	line, err := n.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
