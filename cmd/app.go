// Package cmd implements the lfmt command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/etnz/ledgerfmt"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Commands lists the lfmt subcommands.
var Commands = []subcommands.Command{
	&fmtCmd{},
	&checkCmd{},
	&toggleCmd{},
	&unclearedCmd{},
	&serveCmd{},
	&topicCmd{},
}

// IsCommand reports whether name is a builtin subcommand.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "main.ledger", "Path to the ledger file, or to a directory of ledger files")
var column = flag.Int("column", ledgerfmt.DefaultColumn, "Column of the decimal point of amounts")
var sortTxs = flag.Bool("sort", false, "Sort transactions by date")
var configFile = flag.String("config", ".lfmt.yaml", "Path to an optional YAML configuration file")
var Verbose = flag.Bool("v", false, "Enable verbose logging")

// logger is the application logger. Commands report their progress on stderr
// and keep stdout for their output.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "lfmt"})

// Environment variables overriding the flag defaults. They are also passed to
// extensions.
const (
	EnvLedgerFile = "LFMT_LEDGER_FILE"
	EnvColumn     = "LFMT_COLUMN"
	EnvSort       = "LFMT_SORT"
	EnvVerbose    = "LFMT_VERBOSE"
	EnvConfig     = "LFMT_CONFIG"
)

// Config is the content of the YAML configuration file.
type Config struct {
	LedgerFile string `yaml:"ledger-file"`
	Column     int    `yaml:"column"`
	Sort       *bool  `yaml:"sort"`
	Verbose    *bool  `yaml:"verbose"`
}

// LoadConfig reads a configuration file. A missing file is an empty configuration.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	return &c, nil
}

// Configure resolves the global flags once parsed.
//
// A flag set on the command line always wins, then comes the environment
// (a .env file in the working directory is loaded first), then the
// configuration file, and finally the flag default.
func Configure(flags *flag.FlagSet) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not load .env file: %w", err)
	}

	explicit := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	set := func(name, env, conf string) error {
		if explicit[name] {
			return nil
		}
		v := os.Getenv(env)
		if v == "" {
			v = conf
		}
		if v == "" {
			return nil
		}
		if err := flags.Set(name, v); err != nil {
			return fmt.Errorf("invalid value %q for -%s: %w", v, name, err)
		}
		return nil
	}

	if err := set("config", EnvConfig, ""); err != nil {
		return err
	}
	conf, err := LoadConfig(flags.Lookup("config").Value.String())
	if err != nil {
		return err
	}

	var confColumn string
	if conf.Column != 0 {
		confColumn = strconv.Itoa(conf.Column)
	}
	if err := set("ledger-file", EnvLedgerFile, conf.LedgerFile); err != nil {
		return err
	}
	if err := set("column", EnvColumn, confColumn); err != nil {
		return err
	}
	if err := set("sort", EnvSort, formatBool(conf.Sort)); err != nil {
		return err
	}
	if err := set("v", EnvVerbose, formatBool(conf.Verbose)); err != nil {
		return err
	}

	if flags.Lookup("v").Value.String() == "true" {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	logger.Debug("configured", "ledger-file", flags.Lookup("ledger-file").Value, "column", flags.Lookup("column").Value, "sort", flags.Lookup("sort").Value)
	return nil
}

func formatBool(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}

// options returns the formatting options from the global flags.
func options() ledgerfmt.Options {
	return ledgerfmt.Options{Sort: *sortTxs, Column: *column}
}

// ledgerPaths returns the ledger files designated by args, or by the
// -ledger-file flag when there are none.
func ledgerPaths(args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{*ledgerFile}
	}
	var paths []string
	for _, arg := range args {
		found, err := ledgerfmt.FindLedgers(arg)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}
	return paths, nil
}
