package errors

// MaybePanic panics if the given error is not nil. It is intended for wrapping calls known by
// construction to return nil errors, where handling the impossible case would just be noise.
func MaybePanic(err error) {
	if err != nil {
		panic(err)
	}
}
