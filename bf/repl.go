/*
Copyright (C) 2026  Carl-Philip Hänsch

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
package bf

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
)

const newprompt = "\033[32mbf>\033[0m "
const contprompt = "\033[32m..>\033[0m "

var ReplInstance *readline.Instance

// Repl runs programs interactively: every submitted program is compiled,
// JIT-compiled and executed against a fresh tape. A line whose brackets
// are still open continues on the next prompt.
func Repl() {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       Settings.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	ReplInstance = l
	defer l.Close()
	l.CaptureExitSignal()

	log.Infof("repl session %s", uuid.New())

	oldline := ""
	for {
		line, err := l.Readline()
		line = oldline + line
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			oldline = ""
			l.SetPrompt(newprompt)
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if line == "" {
			continue
		}

		vm, err := NewFromSource(line, os.Stdin, os.Stdout, Settings.Optimize)
		if err != nil {
			var ce *CompileError
			if errors.As(err, &ce) && ce.Kind == UnclosedLeftBracket {
				// program not finished yet, keep collecting
				oldline = line + "\n"
				l.SetPrompt(contprompt)
				continue
			}
			fmt.Println(err)
			oldline = ""
			l.SetPrompt(newprompt)
			continue
		}
		if err := vm.Run(); err != nil {
			fmt.Println(err)
		}
		vm.Close()
		oldline = ""
		l.SetPrompt(newprompt)
	}
}
