package main

import (
	"fmt"
	"strings"

	"github.com/mazzegi/seqbox/convert"
	"github.com/mazzegi/seqbox/dynlist"
	"github.com/mazzegi/seqbox/env"
	"github.com/mazzegi/seqbox/makex"
	"golang.org/x/text/language"
)

type config struct {
	values     []string
	types      dynlist.Types
	places     int
	lang       language.Tag
	percentile *float64
	json       bool
}

var typesByName = map[string]dynlist.Types{
	"int":     dynlist.IntType,
	"float":   dynlist.FloatType,
	"numeric": dynlist.Numeric,
}

func configFrom(e env.Env) (config, error) {
	cfg := config{
		places: e.IntOrDefault("places", dynlist.DefaultPlaces),
		json:   e.StringOrDefault("json", "false") == "true",
	}
	values, ok := e.Strings("values", ",")
	if !ok || len(values) == 0 {
		return config{}, fmt.Errorf("no values configured")
	}
	cfg.values = values

	typeName := strings.ToLower(e.StringOrDefault("type", "numeric"))
	types, ok := typesByName[typeName]
	if !ok {
		return config{}, fmt.Errorf("unknown type %q", typeName)
	}
	cfg.types = types

	lang, err := language.Parse(e.StringOrDefault("lang", "en"))
	if err != nil {
		return config{}, fmt.Errorf("parse lang: %w", err)
	}
	cfg.lang = lang

	if _, ok := e["percentile"]; ok {
		p, ok := e.Float("percentile")
		if !ok {
			return config{}, fmt.Errorf("percentile is not a number")
		}
		cfg.percentile = makex.PtrOf(p)
	}
	return cfg, nil
}

// parseValue parses s as int, if the list accepts ints and s is integral, otherwise as float
func parseValue(types dynlist.Types, s string) (any, error) {
	if n, ok := convert.ToInt(s); ok && types.Allows(n) {
		return n, nil
	}
	if f, ok := convert.ToFloat(s); ok {
		return f, nil
	}
	return nil, fmt.Errorf("%q is not a number", s)
}

func buildList(cfg config) (*dynlist.List, error) {
	vs := make([]any, len(cfg.values))
	for i, s := range cfg.values {
		v, err := parseValue(cfg.types, s)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return dynlist.FromSlice(cfg.types, vs)
}
