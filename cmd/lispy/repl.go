package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/peterh/liner"
	"github.com/xiam/lispy/lexer"
)

const (
	promptMain = "> "
	promptCont = "... "
)

type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// lineReader feeds the lexer one terminal line at a time. The first line of
// an expression gets the main prompt, the following ones the continuation
// prompt.
type lineReader struct {
	ln prompter

	pending []byte
	cont    bool
}

func (lr *lineReader) Read(p []byte) (int, error) {
	if len(lr.pending) == 0 {
		prompt := promptMain
		if lr.cont {
			prompt = promptCont
		}

		line, err := lr.ln.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				// only the line is dropped, a partial expression is still
				// open and keeps the continuation prompt
				return 0, nil
			}
			return 0, io.EOF
		}
		if line != "" {
			lr.ln.AppendHistory(line)
		}
		lr.pending = append([]byte(line), '\n')
		lr.cont = true
	}

	n := copy(p, lr.pending)
	lr.pending = lr.pending[n:]
	return n, nil
}

// expect marks the start of a new expression.
func (lr *lineReader) expect() {
	lr.cont = false
}

func repl(cfg config, history string) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if history != "" {
		if f, err := os.Open(history); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(history)
			if err != nil {
				log.Printf("history: %v", err)
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	lr := &lineReader{ln: ln}
	s := newSession(cfg, lr, os.Stdout)
	s.before = lr.expect

	err := s.run()
	if errors.Is(err, lexer.ErrTruncatedInput) {
		log.Print(err)
		return nil
	}
	return err
}
