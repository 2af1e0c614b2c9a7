package util

// Check panics on errors that leave nothing sensible to continue with.
func Check(err error) {
	if err != nil {
		panic(err)
	}
}
