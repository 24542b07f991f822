package testdata

// PortTag brands a TCP port number.
type PortTag struct {
	_ struct{} `permissive:"true"`
}
