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
/*
	bfjit — a just-in-time compiler for the brainfuck language

	programs are compiled to IR, optionally peephole-optimized, then
	translated to amd64 machine code and executed directly
*/
package main

import "os"
import "fmt"
import "flag"
import "time"
import "errors"
import "syscall"
import "os/signal"
import "runtime/pprof"
import "github.com/fsnotify/fsnotify"
import "github.com/tliron/commonlog"
import _ "github.com/tliron/commonlog/simple"
import "github.com/launix-de/bfjit/bf"

func main() {
	optimize := flag.Bool("o", false, "enable the peephole optimizer")
	tape := flag.String("tape", "", "tape size, e.g. 4MiB (default from settings)")
	config := flag.String("config", "", "TOML settings file")
	profile := flag.String("profile", "", "write CPU profile to this file")
	watch := flag.Bool("watch", false, "re-run the program whenever its file changes")
	emitIR := flag.String("emit-ir", "", "write a compiled .bfir image instead of running")
	repl := flag.Bool("repl", false, "interactive shell")
	verbose := flag.Int("v", 0, "log verbosity")
	flag.Parse()
	args := flag.Args()

	if *config != "" {
		if err := bf.LoadSettings(*config); err != nil {
			fatal(err)
		}
	}
	if *tape != "" {
		bf.Settings.TapeSize = *tape
	}
	if *optimize {
		bf.Settings.Optimize = true
	}
	if *verbose != 0 {
		bf.Settings.Verbose = *verbose
	}
	commonlog.Configure(bf.Settings.Verbose, nil)
	if err := bf.InitSettings(); err != nil {
		fatal(err)
	}

	// init profiling
	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			fatal(err)
		}
		defer f.Close()
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *emitIR != "" {
		if len(args) != 1 {
			fatal(errors.New("-emit-ir expects exactly one source file"))
		}
		ir, err := bf.LoadIR(args[0], bf.Settings.Optimize)
		if err != nil {
			fatal(err)
		}
		if err := bf.WriteImage(*emitIR, ir); err != nil {
			fatal(err)
		}
		return
	}

	if *watch {
		if len(args) != 1 {
			fatal(errors.New("-watch expects exactly one program file"))
		}
		watchAndRun(args[0])
		return
	}

	if *repl || len(args) == 0 {
		fmt.Print(`bfjit Copyright (C) 2026   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;

`)
		bf.Repl()
		return
	}

	for _, path := range args {
		if err := runFile(path); err != nil {
			fatal(err)
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func runFile(path string) error {
	vm, err := bf.New(path, os.Stdin, os.Stdout, bf.Settings.Optimize)
	if err != nil {
		return err
	}
	defer vm.Close()
	return vm.Run()
}

// watchAndRun runs the program once and re-runs it on every change to
// its file until interrupted.
func watchAndRun(path string) {
	run := func() {
		if err := runFile(path); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	run()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fatal(err)
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		fatal(err)
	}

	cancelChan := make(chan os.Signal, 1)
	signal.Notify(cancelChan, syscall.SIGTERM, syscall.SIGINT)

	for {
		select {
		case <-watcher.Events:
			// flush all other events
			for {
				time.Sleep(10 * time.Millisecond) // delay a bit, so we don't read half-written files
				select {
				case <-watcher.Events:
					// ignore
				default:
					goto to_rerun
				}
			}
		to_rerun:
			run()
			watcher.Add(path) // text editors rename, so we have to rewatch
		case err := <-watcher.Errors:
			fmt.Fprintln(os.Stderr, err)
		case <-cancelChan:
			return
		}
	}
}
