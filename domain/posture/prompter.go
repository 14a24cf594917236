package posture

import (
	"bufio"
	"fmt"
	"io"
)

// ConsolePrompter implements Prompter over a terminal-like reader/writer
// pair. WaitAck blocks until one line is read; the line content is discarded.
type ConsolePrompter struct {
	out io.Writer
	in  *bufio.Reader
}

// NewConsolePrompter wires the prompter to the given streams, typically
// os.Stdout and os.Stdin.
func NewConsolePrompter(out io.Writer, in io.Reader) *ConsolePrompter {
	return &ConsolePrompter{out: out, in: bufio.NewReader(in)}
}

func (p *ConsolePrompter) Say(line string) {
	fmt.Fprintln(p.out, line)
}

func (p *ConsolePrompter) WaitAck() error {
	_, err := p.in.ReadString('\n')
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
