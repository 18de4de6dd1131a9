package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/reusee/bf/sources"
	"github.com/reusee/dscope"
)

// runREPL runs each line as a program with empty input.
func runREPL(ctx context.Context, scope dscope.Scope) error {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".bf_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "bf> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			return nil
		}
		if line == "" {
			continue
		}
		out := new(bytes.Buffer)
		err = runSourceIO(ctx, scope, sources.Source{
			Name: "repl",
			Text: line,
		}, nil, out)
		if out.Len() > 0 {
			os.Stdout.Write(out.Bytes())
			if !bytes.HasSuffix(out.Bytes(), []byte("\n")) {
				fmt.Println()
			}
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}
