package keys

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyRoundTrip(t *testing.T) {
	cases := []Key{
		Alphabetic('A'), Alphabetic('Z'),
		Numeric(0), Numeric(9),
		Function(1), Function(12),
		Arrow(ArrowUp), Arrow(ArrowRight),
		Modifier(ModifierCtrl), Modifier(ModifierSuper),
		System(SystemEnter), System(SystemSpace),
		Mouse(MouseLeft), Mouse(MouseExtra),
	}
	for _, k := range cases {
		s := k.String()
		parsed, err := ParseKey(s)
		require.NoErrorf(t, err, "parsing %q", s)
		require.Equal(t, k, parsed)
	}
}

func TestParseKeyUnsupported(t *testing.T) {
	_, err := ParseKey("not_a_real_key")
	require.Error(t, err)
	var uk *UnsupportedKeyError
	require.ErrorAs(t, err, &uk)
}

func TestModifierNormalisation(t *testing.T) {
	leftCtrl, ok := FromEvdevCode(evKeyLeftCtrl)
	require.True(t, ok)
	rightCtrl, ok := FromEvdevCode(evKeyRightCtrl)
	require.True(t, ok)
	require.Equal(t, leftCtrl, rightCtrl, "sided ctrl variants must normalise to the same Key")
}

func TestFromEvdevCodeUnknown(t *testing.T) {
	_, ok := FromEvdevCode(999999)
	require.False(t, ok)
}
