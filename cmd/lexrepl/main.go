package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/nfalex"
	"github.com/npillmayer/nfalex/lexer"
)

// main() starts an interactive CLI, where users may enter lines of text to be
// scanned. It is intended as a sandbox for experiments with lexer patterns.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	specf := flag.String("spec", "", "YAML lexer specification (default is a Python-like lexer)")
	dotf := flag.String("dot", "", "Export the automaton to a GraphViz file")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to LexREPL")  // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up the lexer
	intp, err := newIntp(*specf)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	level := tracing.TraceLevelFromString(*tlevel)
	tracer().SetTraceLevel(level) // now set the user supplied level
	for _, key := range []string{"nfalex.regex", "nfalex.nfa", "nfalex.lexer"} {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Lexer has %d patterns, %d states", intp.lexer.PatternCount(),
		intp.lexer.Automaton().StateCount())
	if *dotf != "" {
		if err := intp.exportDot(*dotf); err != nil {
			tracer().Errorf("%v", err)
		}
	}
	if flag.NArg() > 0 {
		for _, filename := range flag.Args() {
			if err := intp.scanFile(filename); err != nil {
				pterm.Error.Println(err.Error())
				os.Exit(1)
			}
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("lex> ")
	if err != nil {
		tracer().Errorf("%v", err)
		os.Exit(3)
	}
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	lexer    *lexer.Lexer
	symtab   *lexer.SymbolTable // nil for lexers loaded from YAML
	typeName nfalex.TokTypeStringer
	repl     *readline.Instance
}

func newIntp(specfile string) (*Intp, error) {
	if specfile == "" {
		symtab := lexer.NewSymbolTable()
		lx, err := pythonLexer(symtab)
		if err != nil {
			return nil, err
		}
		return &Intp{lexer: lx, symtab: symtab, typeName: pyTokTypeStringer}, nil
	}
	f, err := os.Open(specfile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	spec, err := lexer.LoadSpec(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", specfile, err)
	}
	b, err := spec.Builder()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", specfile, err)
	}
	lx, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", specfile, err)
	}
	return &Intp{lexer: lx, typeName: spec.TokTypeStringer()}, nil
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	if failed := intp.evalLines(f); len(failed) > 0 {
		tracer().Errorf("%d lines of init file %s failed", len(failed), filename)
	}
}

// evalLines evaluates every non-blank line of r and returns the numbers of the
// lines which failed, counting blank lines, too.
func (intp *Intp) evalLines(r io.Reader) []int {
	var failed []int
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
			failed = append(failed, lineno)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
	return failed
}

func (intp *Intp) scanFile(filename string) error {
	text, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	pterm.Println(filename)
	intp.printResults(intp.lexer.Scan(string(text)).Collect())
	return nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command or scans a line of input.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		intp.printResults(intp.lexer.Scan(line).Collect())
		return false, nil
	}
	args := strings.Fields(line)
	switch args[0] {
	case ":quit", ":q":
		return true, nil
	case ":symbols":
		intp.printSymbols()
	case ":dot":
		if len(args) != 2 {
			return false, fmt.Errorf("usage: :dot <file>")
		}
		return false, intp.exportDot(args[1])
	case ":digest":
		d, err := intp.lexer.Automaton().Digest()
		if err != nil {
			return false, err
		}
		pterm.Info.Println(d)
	default:
		return false, fmt.Errorf("unknown command %s", args[0])
	}
	return false, nil
}

func (intp *Intp) printResults(results []lexer.Result) {
	for _, r := range results {
		if r.Err != nil {
			pterm.Error.Println(r.Err.Error())
			continue
		}
		token, ok := r.Token.(nfalex.Token)
		if !ok {
			tracer().Debugf("skipped %v", r.Token)
			continue
		}
		s := fmt.Sprintf("%-10s %-20q %v", intp.typeName(token.TokType()), token.Lexeme(), token.Span())
		if v := token.Value(); v != nil {
			s += fmt.Sprintf(" = %v", v)
		}
		pterm.Info.Println(s)
	}
}

func (intp *Intp) printSymbols() {
	if intp.symtab == nil {
		pterm.Info.Println("lexer does not intern symbols")
		return
	}
	if intp.symtab.Size() == 0 {
		pterm.Info.Println("no symbols yet")
		return
	}
	ll := pterm.LeveledList{}
	intp.symtab.Each(func(tag *lexer.Tag) {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: tag.Name()})
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: fmt.Sprintf("#%d, %d occurrences", tag.Serial, tag.Count)})
	})
	pterm.Println("symbols")
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

func (intp *Intp) exportDot(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := intp.lexer.Automaton().ToGraphViz(f); err != nil {
		return err
	}
	tracer().Infof("Exported automaton to %s", filename)
	return nil
}
