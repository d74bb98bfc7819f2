// Package interpolation expands ${VAR} and ${VAR:default} references in host
// configuration strings.
package interpolation

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// LookupFunc resolves an environment variable.
type LookupFunc func(name string) (string, bool)

// Pattern for ${VAR_NAME} and ${VAR_NAME:default} syntax - captures colon explicitly
var envVarWithDefaultPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:)?([^}]*)\}`)

var ErrUndefinedVar = errors.New("environment variable not defined")

// ExpandEnvVars expands references against the process environment.
func ExpandEnvVars(input string) (string, error) {
	return Expand(input, os.LookupEnv)
}

// Expand replaces every ${VAR_NAME} and ${VAR_NAME:default} in input. A
// variable that is unset and has no default is reported as an error and left
// in place.
func Expand(input string, lookup LookupFunc) (string, error) {
	if input == "" {
		return "", nil
	}

	var missingVars []error
	result := envVarWithDefaultPattern.ReplaceAllStringFunc(input, func(match string) string {
		// [full_match, varName, colon, defaultValue]
		submatches := envVarWithDefaultPattern.FindStringSubmatch(match)
		varName := submatches[1]

		if value, exists := lookup(varName); exists {
			return value
		}
		// ${VAR:} defaults to the empty string
		if submatches[2] == ":" {
			return submatches[3]
		}

		missingVars = append(missingVars, fmt.Errorf("%w: %s", ErrUndefinedVar, varName))
		return match
	})

	return result, errors.Join(missingVars...)
}
