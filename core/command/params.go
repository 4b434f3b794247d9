package command

import (
	"fmt"
	"strings"

	"github.com/goto/gitsim/internal/errors"
)

func param(entity string, params []any, index int, name string) (any, error) {
	if index >= len(params) {
		return nil, errors.InvalidArgument(entity, "missing parameter: "+name)
	}
	return params[index], nil
}

// stringList accepts []string as well as []any holding only strings, which
// is what decoded yaml and json lists look like.
func stringList(entity string, raw any, name string) ([]string, error) {
	switch list := raw.(type) {
	case []string:
		return list, nil
	case []any:
		values := make([]string, 0, len(list))
		for i, item := range list {
			value, ok := item.(string)
			if !ok {
				return nil, errors.InvalidArgument(entity, fmt.Sprintf("%s[%d] must be a string, got %T", name, i, item))
			}
			values = append(values, value)
		}
		return values, nil
	default:
		return nil, errors.InvalidArgument(entity, fmt.Sprintf("%s must be a list of strings, got %T", name, raw))
	}
}

func stringValue(entity string, raw any, name string) (string, error) {
	value, ok := raw.(string)
	if !ok {
		return "", errors.InvalidArgument(entity, fmt.Sprintf("%s must be a string, got %T", name, raw))
	}
	return value, nil
}

func joinPaths(paths []string) string {
	return strings.Join(paths, ", ")
}
