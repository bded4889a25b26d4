package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/comalice/turingx"
	"github.com/comalice/turingx/internal/production"
)

var (
	app = kingpin.New("turing", "Run binary single-tape Turing machine programs.")

	flagLogLevel = app.Flag("log-level", "Log level (debug, info, warn, error).").Default("warn").String()
	flagLogFile  = app.Flag("log-file", "Also write JSON logs to this file.").String()

	cmdRun       = app.Command("run", "Run a program until it terminates, halts or faults.")
	argRunFile   = cmdRun.Arg("program", "Program file (.json, .yaml, .yml or .cue).").Required().ExistingFile()
	flagWords    = cmdRun.Flag("tape-words", "Tape size in machine words.").Default("2").Int()
	flagMaxSteps = cmdRun.Flag("max-steps", "Stop after this many steps (0 for no limit).").Default("0").Uint64()
	flagTick     = cmdRun.Flag("tick", "Pace execution to one step per tick, e.g. 100ms.").Default("0s").Duration()
	flagTraceCSV = cmdRun.Flag("trace-csv", "Write the step trace as CSV to this file.").String()
	flagEvents   = cmdRun.Flag("events", "Write every step as a JSON line to this file.").String()
	flagRender   = cmdRun.Flag("render", "Print the tape after every step.").Bool()
	flagColor    = cmdRun.Flag("color", "Highlight the head cell with ANSI colors.").Default("true").Bool()

	cmdCheck     = app.Command("check", "Validate and compile a program.")
	argCheckFile = cmdCheck.Arg("program", "Program file.").Required().ExistingFile()

	cmdImport     = app.Command("import", "Validate a program file and save it into a program store.")
	argImportFile = cmdImport.Arg("program", "Program file.").Required().ExistingFile()
	argImportDir  = cmdImport.Arg("store", "Store directory.").Required().String()
	flagImportFmt = cmdImport.Flag("format", "Store format.").Default("yaml").Enum("json", "yaml")

	cmdList    = app.Command("list", "List the program IDs in a store directory.")
	argListDir = cmdList.Arg("store", "Store directory.").Required().ExistingDir()

	cmdDot     = app.Command("dot", "Print the transition graph in Graphviz DOT format.")
	argDotFile = cmdDot.Arg("program", "Program file.").Required().ExistingFile()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, closeLog, err := newLogger(os.Stderr, *flagLogLevel, *flagLogFile)
	app.FatalIfError(err, "logging")
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var code int
	switch command {
	case cmdRun.FullCommand():
		code, err = run(ctx, os.Stdout, runOptions{
			path:      *argRunFile,
			tapeWords: *flagWords,
			maxSteps:  *flagMaxSteps,
			tick:      *flagTick,
			traceCSV:  *flagTraceCSV,
			events:    *flagEvents,
			render:    *flagRender,
			color:     *flagColor,
			logger:    logger,
		})
	case cmdCheck.FullCommand():
		err = check(os.Stdout, *argCheckFile)
	case cmdImport.FullCommand():
		err = importProgram(ctx, os.Stdout, *argImportFile, *argImportDir, production.Format(*flagImportFmt))
	case cmdList.FullCommand():
		err = list(ctx, os.Stdout, *argListDir)
	case cmdDot.FullCommand():
		err = dot(os.Stdout, *argDotFile)
	}
	if err != nil {
		logger.Error(command+" failed", "error", err)
		fmt.Fprintf(os.Stderr, "turing: %v\n", err)
		if code == 0 {
			code = 1
		}
	}
	if code != 0 {
		stop()
		closeLog()
		os.Exit(code)
	}
}

func check(w io.Writer, path string) error {
	cfg, err := production.LoadProgram(path)
	if err != nil {
		return err
	}
	m, _, err := turingx.Compile(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: ok (%d states, %d rules, capacity %d)\n", cfg.ID, len(m.States()), len(m.Rules()), m.Capacity())
	return nil
}

func dot(w io.Writer, path string) error {
	cfg, err := production.LoadProgram(path)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, production.ExportDOT(cfg, ""))
	return err
}

// exitCode maps a terminal status to the process exit code.
func exitCode(s turingx.State) int {
	switch s.Kind {
	case turingx.KindTermination, turingx.KindHalt:
		return 0
	case turingx.KindInvalid:
		return 2
	}
	return 1
}
