// Package domain defines the core domain models for redisgate.
package domain

import "encoding/json"

// StringifyArg renders one decoded JSON value as a store argument.
// Strings pass through, numbers keep their literal form, booleans become
// "true"/"false", null becomes the empty string, and composite values
// render as compact JSON.
func StringifyArg(v any) string {
	switch a := v.(type) {
	case string:
		return a
	case json.Number:
		return a.String()
	case bool:
		if a {
			return "true"
		}
		return "false"
	case nil:
		return ""
	default:
		b, err := json.Marshal(a)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// ParseCommandArray turns one decoded JSON array into a Command. The
// array must be non-empty and its first element must be a string naming
// the command; remaining elements are stringified positionally.
func ParseCommandArray(elems []any) (Command, error) {
	if len(elems) == 0 {
		return Command{}, ErrEmptyCommand
	}
	name, ok := elems[0].(string)
	if !ok || name == "" {
		return Command{}, ErrCommandName
	}
	args := make([]string, 0, len(elems)-1)
	for _, e := range elems[1:] {
		args = append(args, StringifyArg(e))
	}
	return Command{Name: name, Args: args}, nil
}
