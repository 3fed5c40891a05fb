package invocation

import (
	"os"

	"github.com/arthur-debert/stagecheck/pkg/errors"
)

// SearchPathVar is the variable the staged compiler is found through
const SearchPathVar = "PATH"

// EnvSource reads the environment the child process will inherit
type EnvSource func(key string) (string, bool)

// OSEnv reads the calling process environment
func OSEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// PathListSeparator returns the search-path separator for goos
func PathListSeparator(goos string) string {
	if goos == "windows" {
		return ";"
	}
	return ":"
}

// ComposeSearchPath prepends binDir to the inherited PATH and returns it
// as the only override. The existing value is kept intact after the
// separator. An unset PATH is a fatal precondition failure.
//
// The calling process environment is not modified.
func ComposeSearchPath(env EnvSource, goos, binDir string) (map[string]string, error) {
	if env == nil {
		env = OSEnv
	}
	old, ok := env(SearchPathVar)
	if !ok {
		return nil, errors.Newf(errors.ErrEnvUnset, "%s is not set", SearchPathVar).
			WithDetail("variable", SearchPathVar)
	}
	return map[string]string{
		SearchPathVar: binDir + PathListSeparator(goos) + old,
	}, nil
}
