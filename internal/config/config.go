// Package config handles configuration loading and merging for luabench.
//
// Configuration values are resolved in the following order (highest to
// lowest priority):
//
//  1. YAML config file (.luabench.yaml in the working directory)
//  2. Hardcoded defaults (the fixed project/interpreter/benchmark lists)
//
// A YAML key that is present replaces the corresponding default wholesale;
// absent keys keep the defaults. The lists are ordered: interpreter order
// fixes the column order of every generated table row, and project order
// fixes build order.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional override file looked up in the working
// directory.
const ConfigFileName = ".luabench.yaml"

// DefaultOutputFile is where the assembled LaTeX table is written.
const DefaultOutputFile = "benchmark_table.tex"

// Project describes one source tree to clone and build during setup.
type Project struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	// Steps are ordered argv vectors, each executed in the project's
	// source directory. The first non-zero exit aborts the remainder.
	Steps [][]string `yaml:"steps"`
}

// Interpreter describes one Lua virtual machine under measurement.
type Interpreter struct {
	Name       string `yaml:"name"`
	Executable string `yaml:"executable"`
	// Display is the column header used in the generated table.
	Display string `yaml:"display"`
}

// Benchmark describes one micro-benchmark row of the generated table.
type Benchmark struct {
	// Label is the LaTeX row label, escaped for typesetting.
	Label  string `yaml:"label"`
	Script string `yaml:"script"`
	// Skip lists interpreter names the benchmark must not be run on.
	Skip []string `yaml:"skip,omitempty"`
}

// Config is the full harness configuration.
type Config struct {
	// Multitime is the path to the multitime timing utility.
	Multitime string `yaml:"multitime"`
	// Output is the path the LaTeX table document is written to.
	Output       string        `yaml:"output"`
	Projects     []Project     `yaml:"projects"`
	Interpreters []Interpreter `yaml:"interpreters"`
	Benchmarks   []Benchmark   `yaml:"benchmarks"`
}

// Default returns the built-in configuration: the five projects the
// harness knows how to build, the four interpreters it measures, and the
// four benchmarks of the generated table.
func Default() *Config {
	return &Config{
		Multitime: filepath.Join("multitime", "multitime"),
		Output:    DefaultOutputFile,
		Projects: []Project{
			{
				Name: "multitime",
				URL:  "https://github.com/ltratt/multitime",
				Steps: [][]string{
					{"make", "-f", "Makefile.bootstrap"},
					{"sh", "-c", "./configure"},
					{"make"},
				},
			},
			{
				Name:  "lua",
				URL:   "https://github.com/lua/lua",
				Steps: [][]string{{"make"}},
			},
			{
				Name:  "luajit",
				URL:   "http://luajit.org/git/luajit-2.0.git",
				Steps: [][]string{{"make"}},
			},
			{
				Name:  "luavm",
				URL:   "https://github.com/rbartlensky/Lua-interpreter",
				Steps: [][]string{{"cargo", "build", "--release"}},
			},
			{
				Name:  "luster",
				URL:   "https://github.com/kyren/luster",
				Steps: [][]string{{"cargo", "build", "--release"}},
			},
		},
		Interpreters: []Interpreter{
			{
				Name:       "luavm",
				Executable: filepath.Join("target", "release", "luavm"),
				Display:    "luavm",
			},
			{
				Name:       "lua",
				Executable: filepath.Join("lua", "lua"),
				Display:    "PUC-Rio Lua",
			},
			{
				Name:       "luajit",
				Executable: filepath.Join("luajit", "src", "luajit"),
				Display:    "LuaJIT",
			},
			{
				Name:       "luster",
				Executable: filepath.Join("luster", "target", "release", "luster"),
				Display:    "Luster",
			},
		},
		Benchmarks: []Benchmark{
			{Label: `fib(30)`, Script: "./benchmarks/fib.lua"},
			{Label: `fib\_iter(60)`, Script: "./benchmarks/fib_iter.lua"},
			{Label: `bin-trees`, Script: "./benchmarks/binary-trees.lua"},
			// luavm runs nsieve slowly enough to distort the table;
			// its cell is left unavailable.
			{Label: `nsieve`, Script: "./benchmarks/nsieve.lua", Skip: []string{"luavm"}},
		},
	}
}

// Load returns the default configuration, overridden by ConfigFileName in
// dir when that file exists. A missing file is not an error; an unreadable
// or malformed file is.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.Multitime == "" {
		cfg.Multitime = Default().Multitime
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutputFile
	}
	return cfg, nil
}

// Interpreter returns the interpreter descriptor for name.
func (c *Config) Interpreter(name string) (Interpreter, bool) {
	for _, in := range c.Interpreters {
		if in.Name == name {
			return in, true
		}
	}
	return Interpreter{}, false
}

// InterpreterNames returns the configured interpreter names in column
// order.
func (c *Config) InterpreterNames() []string {
	names := make([]string, len(c.Interpreters))
	for i, in := range c.Interpreters {
		names[i] = in.Name
	}
	return names
}
