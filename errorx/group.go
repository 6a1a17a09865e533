package errorx

import (
	"errors"
)

// Group collects errors. Nil errors are skipped.
type Group struct {
	errs []error
}

func NewGroup(errs ...error) *Group {
	g := &Group{}
	g.Append(errs...)
	return g
}

func (g *Group) Append(errs ...error) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		g.errs = append(g.errs, err)
	}
}

// Err joins all collected errors; it returns nil, if there are none.
// The result matches each collected error with errors.Is.
func (g *Group) Err() error {
	if len(g.errs) == 0 {
		return nil
	}
	return errors.Join(g.errs...)
}

func (g *Group) IsEmpty() bool {
	return len(g.errs) == 0
}

func (g *Group) Len() int {
	return len(g.errs)
}
