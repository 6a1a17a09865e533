package set

func New[T comparable](ts ...T) Set[T] {
	s := Set[T]{}
	for _, t := range ts {
		s[t] = struct{}{}
	}
	return s
}

type Set[T comparable] map[T]struct{}

func (s Set[T]) Insert(t T) {
	s[t] = struct{}{}
}

func (s Set[T]) Contains(t T) bool {
	_, ok := s[t]
	return ok
}

// ContainsAll returns true, if every element of o is also in s
func (s Set[T]) ContainsAll(o Set[T]) bool {
	for t := range o {
		if !s.Contains(t) {
			return false
		}
	}
	return true
}

// Equal returns true, if both sets hold exactly the same elements
func (s Set[T]) Equal(o Set[T]) bool {
	return len(s) == len(o) && s.ContainsAll(o)
}

func (s Set[T]) Len() int {
	return len(s)
}
