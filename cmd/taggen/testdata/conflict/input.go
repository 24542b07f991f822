package testdata

// ConflictTag combines permissive with an explicit list.
type ConflictTag struct {
	_ struct{} `permissive:"true" implement:"clone"`
}
