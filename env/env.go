// Package env collects configuration from the OS environment, .env files and command line flags,
// so commands don't have to care about where a setting came from.
// Precedence (first wins): explicit vars, flags, OS environment, .env files.
package env

import (
	"fmt"
	"os"
	"strings"

	"github.com/mazzegi/seqbox/convert"
)

func unquote(s string) string {
	if (strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)) ||
		(strings.HasPrefix(s, `'`) && strings.HasSuffix(s, `'`)) {
		return s[1 : len(s)-1]
	}
	return s
}

type Var struct {
	Key   string
	Value any
}

func MkVar(k string, v any) Var {
	return Var{Key: k, Value: v}
}

type Env map[string]any

func (env Env) set(k string, v any) {
	k = strings.TrimSpace(k)
	if k == "" {
		return
	}
	env[k] = v
}

// Load loads the environment from all available sources using the process' args and working dir.
func Load(vars ...Var) Env {
	return Compose(os.Environ(), LoadDotenv(), os.Args, vars...)
}

// Compose builds an Env from the given sources. environ entries have the form "key=value".
func Compose(environ []string, dotenv map[string]any, args []string, vars ...Var) Env {
	env := Env{}
	for k, v := range dotenv {
		env.set(k, v)
	}
	for _, kv := range environ {
		k, v, _ := strings.Cut(kv, "=")
		v = unquote(strings.TrimSpace(v))
		if v == "" {
			env.set(k, true)
		} else {
			env.set(k, v)
		}
	}
	for k, v := range ParseFlags(args) {
		env.set(k, v)
	}
	for _, v := range vars {
		env.set(v.Key, v.Value)
	}
	return env
}

// String returns the string-value for the passed key if exists, otherwise, false
func (env Env) String(key string) (string, bool) {
	v, ok := env[key]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%v", v), true
}

// Int returns the int-value for the passed key if exists and is an integer, otherwise, false
func (env Env) Int(key string) (int, bool) {
	v, ok := env[key]
	if !ok {
		return 0, false
	}
	return convert.ToInt(v)
}

// Float returns the float-value for the passed key if exists and is numeric, otherwise, false
func (env Env) Float(key string) (float64, bool) {
	v, ok := env[key]
	if !ok {
		return 0, false
	}
	return convert.ToFloat(v)
}

// Strings splits the value for the passed key at sep. Empty parts are skipped.
func (env Env) Strings(key string, sep string) ([]string, bool) {
	s, ok := env.String(key)
	if !ok {
		return nil, false
	}
	var sl []string
	for _, p := range strings.Split(s, sep) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		sl = append(sl, p)
	}
	return sl, true
}

// StringOrDefault first tries to lookup the passed key, otherwise return def
func (env Env) StringOrDefault(key string, def string) string {
	if v, ok := env.String(key); ok {
		return v
	}
	return def
}

// IntOrDefault first tries to lookup the passed key, otherwise return def
func (env Env) IntOrDefault(key string, def int) int {
	if v, ok := env.Int(key); ok {
		return v
	}
	return def
}
