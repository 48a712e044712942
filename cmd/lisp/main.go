/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)
Copyright (C) 2026 The goschemecore Authors

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Command lisp is the REPL and file-runner entry point (spec §6 External
// Interfaces), adapted from scm/prompt.go's Repl loop.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dc0d/onexit"
	"github.com/fsnotify/fsnotify"

	"github.com/gophile/goschemecore/scm"
)

const newPrompt = "\033[32mLisp>>> \033[0m"
const contPrompt = "\033[32m...     \033[0m"
const resultPrompt = "\033[31m= \033[0m"

func main() {
	env := scm.NewStandardEnv()
	env.Define("print", scm.NewIOFunc("print", func(args []scm.Value) scm.Value {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = scm.Show(a)
		}
		fmt.Println(strings.Join(parts, " "))
		return scm.NewBool(true)
	}))

	onexit.Register(scm.CloseAllPorts)

	args := os.Args[1:]
	watch := false
	var fileArgs []string
	for _, a := range args {
		if a == "-watch" {
			watch = true
			continue
		}
		fileArgs = append(fileArgs, a)
	}

	if len(fileArgs) == 0 {
		repl(env)
		onexit.Exit(0)
		return
	}

	runFile(env, fileArgs, watch)
	onexit.Exit(0)
}

// envCompleter drives readline's tab completion off the live environment
// (spec §6: completion should reflect every symbol currently bound,
// including user definitions made earlier in the same session), backed
// by Env.Symbols()'s btree-deduplicated name set.
type envCompleter struct {
	env *scm.Env
}

func (c *envCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	word := lastWord(string(line[:pos]))
	if word == "" {
		return nil, 0
	}
	for _, name := range c.env.Symbols() {
		if strings.HasPrefix(name, word) {
			newLine = append(newLine, []rune(name[len(word):]))
		}
	}
	return newLine, len(word)
}

func lastWord(s string) string {
	i := strings.LastIndexAny(s, " \t\n(")
	return s[i+1:]
}

// repl implements spec §6's interactive mode: read-eval-print over
// chzyer/readline, trapping every error via SafeEval instead of letting
// a malformed form kill the process (scm/prompt.go's anti-panic func).
func repl(env *scm.Env) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       ".goschemecore-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		AutoComplete:      &envCompleter{env: env},
	})
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	fmt.Println("goschemecore REPL. :help for functions, :size <expr> for a value's footprint, quit to exit.")

	pending := ""
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			log.Fatal(err)
		}
		line = pending + line
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == "quit" {
			break
		}
		if handled := metaCommand(env, trimmed); handled {
			pending = ""
			l.SetPrompt(newPrompt)
			continue
		}

		form, perr := scm.Parse("repl", line)
		if perr != nil {
			// an unterminated form (missing close paren) keeps accumulating
			// instead of reporting an error immediately.
			pending = line + "\n"
			l.SetPrompt(contPrompt)
			continue
		}
		pending = ""
		l.SetPrompt(newPrompt)

		result, err := scm.SafeEval(env, form)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Print(resultPrompt)
		fmt.Println(scm.Show(result))
	}
}

// metaCommand handles the REPL-only `:help` and `:size` introspection
// commands (spec §6); anything else returns false so the caller treats
// the line as ordinary Scheme source.
func metaCommand(env *scm.Env, line string) bool {
	switch {
	case line == ":help":
		fmt.Print(scm.Help(""))
		return true
	case strings.HasPrefix(line, ":help "):
		// Help panics a *SchemeError for an unknown name; report it like
		// any other REPL error instead of ending the process.
		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Println("error:", r)
				}
			}()
			fmt.Print(scm.Help(strings.TrimSpace(strings.TrimPrefix(line, ":help"))))
		}()
		return true
	case strings.HasPrefix(line, ":size "):
		expr := strings.TrimSpace(strings.TrimPrefix(line, ":size"))
		form, err := scm.Parse("repl", expr)
		if err != nil {
			fmt.Println("error:", err)
			return true
		}
		v, err := scm.SafeEval(env, form)
		if err != nil {
			fmt.Println("error:", err)
			return true
		}
		fmt.Println(scm.HumanSize(v))
		return true
	case line == ":symbols":
		names := env.Symbols()
		sort.Strings(names)
		fmt.Println(strings.Join(names, " "))
		return true
	}
	return false
}

// runFile implements spec §6's file mode: `(load "path")` the first
// argument, binding the rest as a global `args` list of strings, then
// optionally watch the file for changes and reload it (-watch, via
// fsnotify), matching a classic dev-loop workflow.
func runFile(env *scm.Env, fileArgs []string, watch bool) {
	path := fileArgs[0]
	rest := make([]scm.Value, len(fileArgs)-1)
	for i, a := range fileArgs[1:] {
		rest[i] = scm.NewString(a)
	}
	env.Define("args", scm.NewList(rest))

	load := func() {
		form := scm.NewList([]scm.Value{scm.NewSymbol("load"), scm.NewString(path)})
		result, err := scm.SafeEval(env, form)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			return
		}
		fmt.Fprintln(os.Stderr, scm.Show(result))
	}
	load()

	if !watch {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Fatal(err)
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		log.Fatal(err)
	}

	fmt.Println("watching", path, "for changes, press Ctrl+C to stop")
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) {
				fmt.Println("reloading", path)
				load()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintln(os.Stderr, "watch error:", err)
		}
	}
}
