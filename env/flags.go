package env

import (
	"strings"

	"github.com/mazzegi/seqbox/convert"
)

// ParseFlags parses (commandline) flags and returns them as key/value pairs.
// The following forms are permitted:
// -flag     => just a boolean flag
// --flag    => double dashes are also permitted
// -flag=x   => single dash
// -flag x   => single dash, no equal
// -flag -3  => negative numbers are values, not flags
func ParseFlags(args []string) map[string]any {
	fs := map[string]any{}

	flag := func(s string) (string, bool) {
		if isNegativeNumber(s) {
			return "", false
		}
		switch {
		case strings.HasPrefix(s, "--"):
			return strings.TrimPrefix(s, "--"), true
		case strings.HasPrefix(s, "-"):
			return strings.TrimPrefix(s, "-"), true
		default:
			return "", false
		}
	}

	var currName string
	for _, arg := range args {
		name, ok := flag(arg)
		if !ok {
			// a value; plain args without a pending flag are ignored
			if currName != "" {
				fs[currName] = arg
				currName = ""
			}
			continue
		}
		if currName != "" {
			// prev is a bool flag
			fs[currName] = true
			currName = ""
		}
		if k, v, ok := strings.Cut(name, "="); ok {
			fs[k] = v
		} else {
			currName = name
		}
	}
	if currName != "" {
		fs[currName] = true
	}
	return fs
}

// isNegativeNumber returns true for arguments like "-3" or "-.5", but not for "-inf"
func isNegativeNumber(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	if c := s[1]; c != '.' && (c < '0' || c > '9') {
		return false
	}
	_, ok := convert.ToFloat(s)
	return ok
}
