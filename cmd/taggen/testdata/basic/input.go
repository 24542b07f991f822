package testdata

// HostTag brands a hostname string.
type HostTag struct {
	_ struct{} `implement:"clone,equal,hash" transparent:"format,parse" capability:"inner,from"`
}
