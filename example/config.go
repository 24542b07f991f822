package example

import (
	"net/netip"

	"github.com/creasty/defaults"

	"github.com/ecordell/tagged"
)

// rawConfig is the plain, unbranded shape filled by creasty/defaults.
type rawConfig struct {
	Host    string `default:"localhost"`
	Port    uint16 `default:"8080"`
	Gateway string `default:"192.168.0.1"`
}

// Config carries the branded configuration values.
type Config struct {
	Host    Host
	Port    Port
	Gateway Gateway
}

// NewConfig builds a Config from struct-tag defaults, branding each value
// on the way in. The gateway is parsed with the address type's own parser;
// a bad default surfaces as that parser's error.
func NewConfig() (Config, error) {
	var raw rawConfig
	if err := defaults.Set(&raw); err != nil {
		return Config{}, err
	}

	gw, err := tagged.Parse[netip.Addr, GatewayTag](raw.Gateway)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Host:    tagged.From[string, HostTag](raw.Host),
		Port:    tagged.From[uint16, PortTag](raw.Port),
		Gateway: gw,
	}, nil
}
