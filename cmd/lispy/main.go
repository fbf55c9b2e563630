package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/xiam/lispy"
	"github.com/xiam/lispy/ast"
	"github.com/xiam/lispy/lexer"
	"github.com/xiam/lispy/parser"
)

const historyFile = ".lispy_history"

var (
	flagHeap    = flag.Int("heap", 0, "maximum bytes of symbol text alive at once (0 means no limit)")
	flagTree    = flag.Bool("tree", false, "dump the tree of every expression after printing it")
	flagHistory = flag.String("history", "", "history file for the interactive loop (default ~/"+historyFile+")")
)

type config struct {
	heap int
	tree bool
}

// session runs the read-eval-print cycle over one input.
type session struct {
	cfg config

	r   *lispy.Reader
	env *lispy.Env
	out io.Writer

	// before is called ahead of every read
	before func()
}

func newSession(cfg config, in io.Reader, out io.Writer) *session {
	var opts []lispy.Option
	if cfg.heap > 0 {
		opts = append(opts, lispy.WithHeap(ast.NewHeap(cfg.heap)))
	}
	return &session{
		cfg: cfg,
		r:   lispy.NewReader(in, opts...),
		env: lispy.NewEnv(nil),
		out: out,
	}
}

// run loops until the input is exhausted. Syntax errors are reported and
// the rest of the offending line is dropped, truncated input stops the loop.
func (s *session) run() error {
	defer s.env.Close()

	for {
		err := s.step()
		switch {
		case err == nil:
			continue
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, lexer.ErrTruncatedInput):
			return err
		case errors.Is(err, lexer.ErrUnbalancedParens),
			errors.Is(err, lexer.ErrInvalidEncoding),
			errors.Is(err, parser.ErrUnexpectedToken),
			errors.Is(err, ast.ErrAllocation):
			log.Printf("read: %v", err)
			s.r.Reset()
		default:
			return err
		}
	}
}

func (s *session) step() error {
	if s.before != nil {
		s.before()
	}

	obj, err := s.r.Read()
	if err != nil {
		return err
	}

	res, err := lispy.Eval(obj, s.env)
	if err != nil {
		lispy.Destroy(obj)
		return err
	}
	defer lispy.Destroy(res)

	if err := lispy.Print(s.out, res); err != nil {
		return err
	}
	if s.cfg.tree {
		return ast.Dump(s.out, res)
	}
	return nil
}

func runFile(cfg config, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := newSession(cfg, f, os.Stdout).run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func historyPath() string {
	if *flagHistory != "" {
		return *flagHistory
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lispy: ")

	flag.Parse()

	cfg := config{
		heap: *flagHeap,
		tree: *flagTree,
	}

	if flag.NArg() > 0 {
		for _, name := range flag.Args() {
			if err := runFile(cfg, name); err != nil {
				log.Fatal(err)
			}
		}
		return
	}

	if err := repl(cfg, historyPath()); err != nil {
		log.Fatal(err)
	}
}
