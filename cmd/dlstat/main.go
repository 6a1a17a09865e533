// dlstat builds a list from configured values and prints its descriptive statistics.
//
// Settings are taken from flags, the environment or .env files:
//
//	values      comma separated numbers, e.g. -values=10,2,38,23
//	type        int, float or numeric (default numeric)
//	places      decimal places of the summary (default 3)
//	lang        language of the number formatting (default en)
//	percentile  optional, additionally print this percentile
//	json        print the rounded summary as JSON instead
package main

import (
	"fmt"
	"os"

	"github.com/mazzegi/log"
	"github.com/mazzegi/seqbox/env"
	"github.com/mazzegi/seqbox/errorx"
	"github.com/mazzegi/seqbox/jsonx"
)

func main() {
	cfg, err := configFrom(env.Load())
	errorx.ExitWhen(err, "config")

	l, err := buildList(cfg)
	errorx.ExitWhen(err, "build list")
	log.Infof("dlstat: %d values of type %s: %s", l.Len(), l.Types(), l)

	s, err := l.Describe()
	errorx.ExitWhen(err, "describe")
	if cfg.json {
		errorx.ExitWhen(jsonx.Encode(os.Stdout, s.Rounded(cfg.places), true), "encode summary")
		return
	}
	fmt.Print(s.Render(cfg.lang, cfg.places))

	if cfg.percentile != nil {
		pv, err := l.Percentile(*cfg.percentile)
		errorx.ExitWhen(err, "percentile")
		fmt.Printf("%7s : %v\n", fmt.Sprintf("p%v", *cfg.percentile), pv)
	}
}
