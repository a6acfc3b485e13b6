// Package parameters handles generic configuration Params, a map[string]string that the
// user can set with a string like "capacity=64,max_stack=5".
package parameters

import (
	"github.com/janpfeifer/hexhive/internal/generics"
	"github.com/pkg/errors"
	"strconv"
	"strings"
)

// Params represent generic configuration parameters.
type Params map[string]string

// NewFromConfigString create params from user's configuration string.
// Empty entries (e.g. trailing commas) are ignored.
// See GetIntOr and PopIntOr to parse values from this map.
func NewFromConfigString(config string) Params {
	params := make(Params)
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		subParts := strings.SplitN(part, "=", 2) // Split into up to 2 parts to handle '=' in values
		if len(subParts) == 1 {
			params[subParts[0]] = ""
		} else {
			params[strings.TrimSpace(subParts[0])] = strings.TrimSpace(subParts[1])
		}
	}
	return params
}

// CheckAllUsed returns an error listing the keys still in params. Use it after
// popping all known keys with PopIntOr.
func (params Params) CheckAllUsed(owner string) error {
	if len(params) == 0 {
		return nil
	}
	return errors.Errorf("unknown %s parameters \"%s\" passed",
		owner, strings.Join(generics.SortedKeys(params), "\", \""))
}

// PopIntOr is like GetIntOr, but it also deletes the parameter from the params map.
// On error the parameter is kept.
func PopIntOr(params Params, key string, defaultValue int) (int, error) {
	value, err := GetIntOr(params, key, defaultValue)
	if err != nil {
		return value, err
	}
	delete(params, key)
	return value, nil
}

// GetIntOr parses the parameter as an int if the key is present with a value, or returns
// defaultValue if not.
func GetIntOr(params Params, key string, defaultValue int) (int, error) {
	value, exists := params[key]
	if !exists || value == "" {
		return defaultValue, nil
	}
	parsedValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue, errors.Wrapf(err, "failed to parse configuration %s=%q to int", key, value)
	}
	return parsedValue, nil
}
