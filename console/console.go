// Package console is the line-oriented text front end for the motion
// controller: one command per line, a "done" or "error: ..."
// acknowledgement per command.
package console

import (
	"bufio"
	"io"
	"strings"

	"github.com/google/shlex"

	"coildrive/core"
)

// Console reads command lines from r, dispatches them into a command
// registry, and writes acknowledgements to w.
type Console struct {
	r   io.Reader
	w   io.Writer
	reg *core.CommandRegistry
}

// New creates a console over the given streams and registry.
func New(r io.Reader, w io.Writer, reg *core.CommandRegistry) *Console {
	return &Console{r: r, w: w, reg: reg}
}

// Run processes lines until r is exhausted or fails. Blank lines and
// #-comments are skipped. Command execution happens synchronously on this
// goroutine; stepping is unaffected because the tick scheduler runs on its
// own time source.
func (c *Console) Run() error {
	sc := bufio.NewScanner(c.r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c.execute(line)
	}
	return sc.Err()
}

func (c *Console) execute(line string) {
	fields, err := shlex.Split(line)
	if err != nil || len(fields) == 0 {
		c.ack("", core.ErrInvalidArgument)
		return
	}
	name := fields[0]
	if name == "help" {
		c.ack(strings.TrimRight(c.reg.Usage(), "\n"), nil)
		return
	}
	// Arguments are comma-separated; whitespace around commas is
	// insignificant, so rejoin the remaining tokens before splitting.
	args := splitArgs(strings.Join(fields[1:], ""))
	c.ack(c.reg.Dispatch(name, args))
}

// splitArgs splits a comma-separated argument list. An absent list yields no
// arguments rather than one empty one; empty tokens are kept so trailing
// fields can be skipped ("move ,,1").
func splitArgs(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func (c *Console) ack(info string, err error) {
	if info != "" {
		io.WriteString(c.w, info+"\n")
	}
	if err != nil {
		io.WriteString(c.w, "error: "+err.Error()+"\n")
		return
	}
	io.WriteString(c.w, "done\n")
}
