package example

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecordell/tagged"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	require.Equal(t, "localhost", tagged.Inner(cfg.Host))
	require.Equal(t, uint16(8080), tagged.Inner(cfg.Port))
	require.Equal(t, "192.168.0.1", tagged.Format(cfg.Gateway))

	data, err := tagged.Marshal(cfg.Gateway)
	require.NoError(t, err)
	require.Equal(t, `"192.168.0.1"`, string(data))
}

func TestGeneratedGrantsMatchDeclarations(t *testing.T) {
	// The checked-in tags_gen.go must carry the grants the declarations in
	// tags.go ask for.
	var _ tagged.CanClone = HostTag{}
	var _ tagged.CanHash = HostTag{}
	var _ tagged.CanDefault = PortTag{}
	var _ tagged.CanAdd = PortTag{}
	var _ tagged.CanMarshal = GatewayTag{}
	var _ tagged.CanParse = GatewayTag{}

	p := tagged.Default[uint16, PortTag]()
	require.True(t, tagged.Equal(p, tagged.From[uint16, PortTag](0)))
}
