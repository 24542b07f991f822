package example

import (
	"fmt"

	"github.com/ecordell/tagged"
)

// ExampleUsage demonstrates the gated operations on branded config values.
func ExampleUsage() {
	cfg, err := NewConfig()
	if err != nil {
		panic(err)
	}

	// Transparent formatting matches the bare values byte for byte.
	fmt.Printf("host: %s\n", tagged.Format(cfg.Host))
	fmt.Printf("port: %s\n", tagged.Format(cfg.Port))

	// Arithmetic keeps the brand; the result is still a Port.
	alt := tagged.Add(cfg.Port, 1)
	fmt.Printf("alternate port: %d\n", tagged.Inner(alt))

	// GatewayTag is permissive, so serialization is available and encodes
	// exactly like the bare address.
	data, err := tagged.Marshal(cfg.Gateway)
	if err != nil {
		panic(err)
	}
	fmt.Printf("gateway JSON: %s\n", data)
}
