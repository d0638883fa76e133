package guard

// Must returns v, or panics with err when a check failed.
//
//	var defaultTimeout = guard.Must(guard.Positive(cfgTimeout, "cfgTimeout"))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
