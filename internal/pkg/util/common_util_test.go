package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	require.Equal(t, "medieval-castle", Slugify("  Medieval Castle  "))
	require.Equal(t, "redstone-2-0", Slugify("Redstone 2.0!"))
	require.Equal(t, "", Slugify("!!!"))
}

func TestUniqueStrings(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, UniqueStrings([]string{"a", "b", "a", "c", "b"}))
	require.Empty(t, UniqueStrings(nil))
}
