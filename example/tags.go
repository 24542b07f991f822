package example

import (
	"net/netip"

	"github.com/ecordell/tagged"
)

//go:generate go run github.com/ecordell/tagged/cmd/taggen -output=tags_gen.go .

// HostTag brands the server hostname.
type HostTag struct {
	_ struct{} `implement:"clone,equal,hash" transparent:"format" capability:"inner,from"`
}

// PortTag brands a TCP port.
type PortTag struct {
	_ struct{} `implement:"default,equal,order,add" transparent:"format" capability:"inner,from"`
}

// GatewayTag brands the default gateway address.
type GatewayTag struct {
	_ struct{} `permissive:"true"`
}

// Branded configuration values. Host and Port share nothing despite both
// being cheap scalar wrappers; mixing them up is a compile error.
type (
	Host    = tagged.Tagged[string, HostTag]
	Port    = tagged.Tagged[uint16, PortTag]
	Gateway = tagged.Tagged[netip.Addr, GatewayTag]
)
