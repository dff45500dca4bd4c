package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

// globalFlags mirrors the global flags on a fresh flag set.
type globalFlags struct {
	set        *flag.FlagSet
	ledgerFile *string
	column     *int
	sort       *bool
	config     *string
	verbose    *bool
}

func newGlobalFlags(t *testing.T, args ...string) *globalFlags {
	t.Helper()
	fs := flag.NewFlagSet("lfmt", flag.ContinueOnError)
	g := &globalFlags{
		set:        fs,
		ledgerFile: fs.String("ledger-file", "main.ledger", ""),
		column:     fs.Int("column", 62, ""),
		sort:       fs.Bool("sort", false, ""),
		config:     fs.String("config", ".lfmt.yaml", ""),
		verbose:    fs.Bool("v", false, ""),
	}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%q) unexpected error: %v", args, err)
	}
	return g
}

// clearEnv makes sure no LFMT_* variable leaks into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{EnvLedgerFile, EnvColumn, EnvSort, EnvVerbose, EnvConfig} {
		t.Setenv(env, "")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %q: %v", path, err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	c, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() of a missing file unexpected error: %v", err)
	}
	if c.LedgerFile != "" || c.Column != 0 || c.Sort != nil {
		t.Errorf("LoadConfig() of a missing file = %+v, want empty", c)
	}

	path := filepath.Join(dir, "lfmt.yaml")
	writeFile(t, path, "ledger-file: books/main.ledger\ncolumn: 50\nsort: true\n")
	c, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if c.LedgerFile != "books/main.ledger" || c.Column != 50 || c.Sort == nil || !*c.Sort {
		t.Errorf("LoadConfig() = %+v", c)
	}

	writeFile(t, path, "column: [\n")
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() of an invalid file expected an error")
	}
}

func TestConfigurePrecedence(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "lfmt.yaml")
	writeFile(t, path, "ledger-file: config.ledger\ncolumn: 40\nsort: true\n")
	t.Setenv(EnvColumn, "50")

	g := newGlobalFlags(t, "-config", path, "-ledger-file", "cli.ledger")
	if err := Configure(g.set); err != nil {
		t.Fatalf("Configure() unexpected error: %v", err)
	}

	if *g.ledgerFile != "cli.ledger" {
		t.Errorf("ledger-file = %q, want the command line value", *g.ledgerFile)
	}
	if *g.column != 50 {
		t.Errorf("column = %d, want the environment value 50", *g.column)
	}
	if !*g.sort {
		t.Errorf("sort = %v, want the config value true", *g.sort)
	}
	if *g.verbose {
		t.Errorf("v = %v, want the default false", *g.verbose)
	}
}

func TestConfigureDotEnv(t *testing.T) {
	clearEnv(t)
	// the variable must be absent for .env to define it.
	os.Unsetenv(EnvSort)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".env"), EnvSort+"=true\n")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() unexpected error: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q) unexpected error: %v", dir, err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	g := newGlobalFlags(t)
	if err := Configure(g.set); err != nil {
		t.Fatalf("Configure() unexpected error: %v", err)
	}
	if !*g.sort {
		t.Errorf("sort = %v, want true from .env", *g.sort)
	}
}

func TestConfigureInvalidValue(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvColumn, "wide")
	g := newGlobalFlags(t, "-config", filepath.Join(t.TempDir(), "none.yaml"))
	if err := Configure(g.set); err == nil {
		t.Error("Configure() with an invalid column expected an error")
	}
}
