package types

import (
	"sort"
)

// Invocation is a fully resolved, tool-ready command
type Invocation struct {
	// Program is the path of the executable to run
	Program string `yaml:"program" toml:"program"`

	// Args are passed to Program in order
	Args []string `yaml:"args" toml:"args"`

	// Env holds overrides applied on top of the inherited environment
	Env map[string]string `yaml:"env,omitempty" toml:"env,omitempty"`

	// Dir is the working directory; empty means the process default
	Dir string `yaml:"dir,omitempty" toml:"dir,omitempty"`
}

// Argv returns the program followed by its arguments
func (i Invocation) Argv() []string {
	argv := make([]string, 0, len(i.Args)+1)
	argv = append(argv, i.Program)
	return append(argv, i.Args...)
}

// EnvKeys returns the override keys in sorted order
func (i Invocation) EnvKeys() []string {
	keys := make([]string, 0, len(i.Env))
	for k := range i.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Flag returns the value following the first occurrence of name in Args
func (i Invocation) Flag(name string) (string, bool) {
	for idx := 0; idx < len(i.Args)-1; idx++ {
		if i.Args[idx] == name {
			return i.Args[idx+1], true
		}
	}
	return "", false
}

// HasArg reports whether arg appears anywhere in Args
func (i Invocation) HasArg(arg string) bool {
	for _, a := range i.Args {
		if a == arg {
			return true
		}
	}
	return false
}
