package main

import (
	"encoding/json"
	"os"

	"github.com/llir/llvm/asm"
	"github.com/pelletier/go-toml"
	"github.com/pterm/pterm"

	"libra/encode"
	"libra/report"
)

// fileConfig is the shape of an optional libra.toml override file
// (SPEC_FULL.md §2.2), read with go-toml the way the teacher's older
// src/ tree reads its own project config. Flags passed on the command
// line always take precedence over the corresponding file default.
type fileConfig struct {
	Output       string `toml:"output"`
	Verbose      bool   `toml:"verbose"`
	IntBitsLimit uint64 `toml:"int_bits_limit"`
}

func loadFileConfig(path string) fileConfig {
	var fc fileConfig
	if path == "" {
		return fc
	}
	data, err := os.ReadFile(path)
	if err != nil {
		argumentError("unable to read config file %s: %v", path, err)
		return fc
	}
	if err := toml.Unmarshal(data, &fc); err != nil {
		argumentError("malformed config file %s: %v", path, err)
	}
	return fc
}

func main() {
	cli := newConfigFromArgs()
	fc := loadFileConfig(cli.configPath)

	if !cli.outputSet && fc.Output != "" {
		cli.outputPath = fc.Output
	}
	if !cli.logLevelSet && fc.Verbose {
		cli.logLevel = report.LevelDebug
	}

	m, err := asm.ParseFile(cli.inputPath)
	if err != nil {
		pterm.Error.Println("failed to parse module:", err)
		os.Exit(1)
	}

	doc, err := encode.Module(m, encode.Options{
		LogLevel:     cli.logLevel,
		IntBitsLimit: fc.IntBitsLimit,
	})
	if err != nil {
		if fe, ok := err.(*report.FatalError); ok {
			pterm.Error.Println(fe.Error())
		} else {
			pterm.Error.Println(err.Error())
		}
		os.Exit(1)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		pterm.Error.Println("failed to marshal output document:", err)
		os.Exit(1)
	}

	if cli.outputPath == "" {
		os.Stdout.Write(out)
		os.Stdout.Write([]byte("\n"))
		return
	}
	f, err := os.OpenFile(cli.outputPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		pterm.Error.Println("failed to write output file:", err)
		os.Exit(1)
	}
	defer f.Close()
	if _, err := f.Write(out); err != nil {
		pterm.Error.Println("failed to write output file:", err)
		os.Exit(1)
	}
}
