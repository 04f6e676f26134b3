package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	scanner "github.com/WENHSUANYU/UT-CompilerDesign2019"
)

const (
	appName     = "scanner"
	defaultOut  = "output.txt"
	historyFile = ".scanner_history"
	promptMain  = "==> "
	promptCont  = "... "
)

var banner = fmt.Sprintf("scanner %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", scanner.Version)

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch cmd := os.Args[1]; cmd {
	case "scan":
		os.Exit(cmdScan(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(scanner.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`scanner %s — lexical scanner for a C subset

Usage:
  %s scan <file.c> [output]    Scan a file; token records go to output (default %s)
  %s repl                      Scan lines interactively
  %s version                   Print the version

`, scanner.Version, appName, appName, defaultOut, appName)
}

// -----------------------------------------------------------------------------
// scan
// -----------------------------------------------------------------------------

func cmdScan(args []string) int {
	if len(args) < 1 {
		// Missing arguments print usage and exit successfully.
		usage()
		return 0
	}
	inPath := args[0]
	outPath := defaultOut
	if len(args) > 1 {
		outPath = args[1]
	}

	src, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, inPath, err)
		return 1
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot create %s: %v\n", appName, outPath, err)
		return 1
	}
	defer out.Close()

	toks, diags, _ := scanner.NewString(string(src)).ScanAll()
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, scanner.WrapErrorWithSource(d, string(src)))
	}
	if err := scanner.WriteTokens(out, toks); err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot write %s: %v\n", appName, outPath, err)
		return 1
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		code, ok := readByScanProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			return 0
		}

		if strings.HasPrefix(strings.TrimSpace(code), ":") {
			switch strings.TrimSpace(strings.ToLower(code)) {
			case ":quit":
				return 0
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}
		if strings.TrimSpace(code) == "" {
			continue
		}

		toks, diags, _ := scanner.NewString(code).ScanAll()
		for i := range toks {
			rec := scanner.Record(&toks[i])
			if toks[i].Err != "" {
				fmt.Println(red(rec))
			} else {
				fmt.Println(blue(rec))
			}
		}
		for _, d := range diags {
			fmt.Fprintln(os.Stderr, red(scanner.WrapErrorWithSource(d, code).Error()))
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readByScanProbe keeps prompting for continuation lines while the input so
// far ends inside an unterminated construct (an open multi-line comment, a
// string cut off at end of line, ...), probing with an interactive scanner.
func readByScanProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		_, _, perr := scanner.NewInteractive(strings.NewReader(src)).ScanAll()
		if perr == nil {
			return src, true
		}
		if scanner.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}
