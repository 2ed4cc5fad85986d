package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"bankist.dev/bankist/pkg/bankist"
	"bankist.dev/bankist/pkg/view"
)

const usage = `commands:
  login <user> <pin>
  transfer <to> <amount>
  loan <amount>
  close <user> <pin>
  sort
  show
  help
  quit`

type console struct {
	session *bankist.Session
	out     io.Writer
}

func newConsole(s *bankist.Session, out io.Writer) *console {
	return &console{session: s, out: out}
}

// run reads one command per line until quit or EOF. Every action redraws
// the whole screen; a rejected action prints the reason and leaves the
// screen as it was.
func (c *console) run(in io.Reader) error {
	if err := view.Text(c.out, c.session.View()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			break
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			return nil
		}
		if err := c.exec(args); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (c *console) exec(args []string) error {
	var (
		d   bankist.Display
		err error
	)
	switch cmd, rest := args[0], args[1:]; {
	case cmd == "help":
		_, err := fmt.Fprintln(c.out, usage)
		return err
	case cmd == "show" && len(rest) == 0:
		d = c.session.View()
	case cmd == "login" && len(rest) == 2:
		d, err = c.session.Login(rest[0], rest[1])
	case cmd == "transfer" && len(rest) == 2:
		d, err = c.session.Transfer(rest[0], rest[1])
	case cmd == "loan" && len(rest) == 1:
		d, err = c.session.RequestLoan(rest[0])
	case cmd == "close" && len(rest) == 2:
		d, err = c.session.Close(rest[0], rest[1])
	case cmd == "sort" && len(rest) == 0:
		d, err = c.session.ToggleSort()
	default:
		_, err := fmt.Fprintf(c.out, "unknown command %q, try help\n", strings.Join(args, " "))
		return err
	}

	var rejected *bankist.RejectedError
	if errors.As(err, &rejected) {
		_, err := fmt.Fprintln(c.out, rejected.Error())
		return err
	}
	return view.Text(c.out, d)
}
