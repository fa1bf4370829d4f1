package main

import (
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("simdnum")

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// Global options apply to every command.
type Global struct {
	LogLevel string `short:"l" long:"loglevel" env:"SIMDNUM_LOGLEVEL" default:"warning" description:"set the logging level [debug, info, notice, warning, error, critical]"`
	LogFile  string `long:"logfile" env:"SIMDNUM_LOGFILE" description:"also write logs to this file, rotated by size"`
}

var (
	global      Global
	scanCommand Scan
	cpuCommand  CPUInfo
)

func newParser() *flags.Parser {
	parser := flags.NewParser(&global, flags.Default)
	parser.AddCommand("scan",
		"scan numeric literals",
		"The scan command scans each literal given as an argument, or read from stdin when there are none, and prints one JSON object per literal",
		&scanCommand)
	parser.AddCommand("cpuinfo",
		"show host byte order and vector features",
		"The cpuinfo command prints the host properties the digit batch path depends on",
		&cpuCommand)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if err := setupLogging(global.LogLevel, global.LogFile); err != nil {
			return err
		}
		return cmd.Execute(args)
	}
	return parser
}

func main() {
	if _, err := newParser().Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
