package ptr

// Ptr returns a pointer to v. Saves a temporary variable at call sites.
func Ptr[T any](v T) *T {
	return &v
}
