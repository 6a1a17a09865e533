package makex

// PtrOf returns a pointer to a copy of t
func PtrOf[T any](t T) *T {
	return &t
}
