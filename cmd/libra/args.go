package main

import (
	"fmt"
	"os"
	"strings"

	"libra/report"
)

const usage = `Usage: libra [flags|options] <path to .ll file>

Flags:
------
-h, --help      Displays usage information (ie. this text).

Options:
--------
-o,  --output     Sets the path for the output JSON document. Defaults to
                  stdout if unspecified.
-ll, --loglevel   Sets the encoder's log-level. Valid values are:
                    - "debug" for outputting all messages
                    - "info" for outputting progress and warnings (default)
                    - "warn" for outputting warnings only
                    - "silent" for no diagnostic output
-c,  --config     Path to a libra.toml config file overriding defaults.
`

// Prints the usage message and exits the encoder with the given exit code.
func printUsage(exitCode int) {
	fmt.Print(usage)
	os.Exit(exitCode)
}

// argParser is a command-line argument parser, styled after the teacher's
// hand-rolled flag/option/positional scanner rather than a flag-package one.
type argParser struct {
	args []string
	ndx  int
}

var options = map[string]struct{}{
	"o":         {},
	"ll":        {},
	"c":         {},
	"-output":   {},
	"-loglevel": {},
	"-config":   {},
}

func argumentError(message string, args ...interface{}) {
	fmt.Print("argument error: ", fmt.Sprintf(message, args...), "\n\n")
	printUsage(1)
}

// nextArg parses the next command-line argument if one exists. The first
// return value is the argument's name (empty for a positional argument);
// the second is its value (empty for a bare flag); the third indicates
// whether there was an argument left to parse.
func (ap *argParser) nextArg() (string, string, bool) {
	if ap.ndx < len(ap.args) {
		arg := ap.args[ap.ndx]
		ap.ndx++

		if strings.HasPrefix(arg, "-") {
			name := arg[1:]
			if _, ok := options[name]; ok {
				if ap.ndx < len(ap.args) && !strings.HasPrefix(ap.args[ap.ndx], "-") {
					value := ap.args[ap.ndx]
					ap.ndx++
					return name, value, true
				}
				argumentError("option %s requires an argument", strings.TrimLeft(name, "-"))
			} else {
				return name, "", true
			}
		} else {
			return "", arg, true
		}
	}
	return "", "", false
}

// cliConfig is the fully-resolved set of choices newConfigFromArgs derives
// from the command line (and, indirectly, from a loaded libra.toml).
type cliConfig struct {
	inputPath   string
	outputPath  string
	configPath  string
	logLevel    report.Level
	outputSet   bool
	logLevelSet bool
}

func useArg(c *cliConfig, name, value string) {
	switch name {
	case "h", "-help":
		printUsage(0)
	case "o", "-output":
		c.outputPath = value
		c.outputSet = true
	case "c", "-config":
		c.configPath = value
	case "ll", "-loglevel":
		c.logLevelSet = true
		switch value {
		case "silent":
			c.logLevel = report.LevelSilent
		case "warn":
			c.logLevel = report.LevelWarn
		case "info":
			c.logLevel = report.LevelInfo
		case "debug":
			c.logLevel = report.LevelDebug
		default:
			argumentError("invalid log level: %s", value)
		}
	case "":
		if c.inputPath == "" {
			c.inputPath = value
		} else {
			argumentError("input path specified multiple times")
		}
	default:
		argumentError("unknown flag: %s", name)
	}
}

// newConfigFromArgs builds a cliConfig from os.Args, applying the teacher's
// loop-until-exhausted parsing pattern.
func newConfigFromArgs() *cliConfig {
	c := &cliConfig{logLevel: report.LevelInfo}
	ap := argParser{args: os.Args[1:]}

	for {
		if name, value, ok := ap.nextArg(); ok {
			useArg(c, name, value)
		} else {
			break
		}
	}

	if c.inputPath == "" {
		argumentError("no input file specified")
	}
	return c
}
