package testdata

// BadTag asks for a behavior outside the catalogue.
type BadTag struct {
	_ struct{} `implement:"cloneable,equal"`
}
