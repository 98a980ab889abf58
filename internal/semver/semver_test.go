package semver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("accepts release tags", func(t *testing.T) {
		v, ok := Parse("v1.2.3")
		require.True(t, ok)
		assert.Equal(t, uint64(1), v.Major())
		assert.Equal(t, uint64(2), v.Minor())
		assert.Equal(t, uint64(3), v.Patch())
		assert.Empty(t, v.Prerelease())
		assert.Equal(t, "v1.2.3", v.Raw())
	})

	t.Run("accepts pre-release suffixes", func(t *testing.T) {
		v, ok := Parse("v2.0.0-rc.1")
		require.True(t, ok)
		assert.Equal(t, "rc.1", v.Prerelease())

		v, ok = Parse("v1.0.0-alpha-2.beta")
		require.True(t, ok)
		assert.Equal(t, "alpha-2.beta", v.Prerelease())
	})

	t.Run("accepts leading zeros in numeric components", func(t *testing.T) {
		v, ok := Parse("v01.02.003")
		require.True(t, ok)
		assert.Equal(t, uint64(1), v.Major())
		assert.Equal(t, uint64(2), v.Minor())
		assert.Equal(t, uint64(3), v.Patch())
		assert.True(t, v.Equal(MustParse("v1.2.3")))
	})

	t.Run("rejects non-semantic tags", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"1.2.3",        // missing marker
			"v1.2",         // too few components
			"v1.2.3.4",     // too many components
			"v1.2.x",       // non-numeric component
			"v1.2.3-",      // empty pre-release
			"v1.2.3-rc..1", // empty pre-release identifier
			"v1.2.3-rc_1",  // invalid character
			"v1.2.3+build", // build metadata is not a release tag
			"release-1.2.3",
			"nightly",
		} {
			_, ok := Parse(raw)
			assert.False(t, ok, "expected %q to be rejected", raw)
		}
	})
}

func TestVersionUnprefixed(t *testing.T) {
	t.Run("strips the marker", func(t *testing.T) {
		v := MustParse("v1.2.3")
		assert.Equal(t, "1.2.3", v.Unprefixed())
	})

	t.Run("keeps the tagged spelling", func(t *testing.T) {
		v := MustParse("v01.2.3")
		assert.Equal(t, "01.2.3", v.Unprefixed())
	})
}

func TestUnprefix(t *testing.T) {
	assert.Equal(t, "1.2.3", Unprefix("v1.2.3"))
	assert.Equal(t, "1.2.3", Unprefix("1.2.3"))
	assert.Equal(t, "nightly", Unprefix("nightly"))
	assert.Equal(t, "", Unprefix("v"))
}

func TestVersionCanonical(t *testing.T) {
	assert.Equal(t, "v1.2.3", MustParse("v01.02.03").Canonical())
	assert.Equal(t, "v1.0.0-rc.1", MustParse("v1.0.0-rc.1").Canonical())
}

func TestVersionCompare(t *testing.T) {
	// Total order per standard semantic-version precedence.
	ordered := []string{
		"v0.1.0",
		"v1.0.0-alpha",
		"v1.0.0-alpha.1",
		"v1.0.0-beta",
		"v1.0.0",
		"v1.0.1",
		"v1.1.0",
		"v2.0.0",
	}

	for i := 0; i < len(ordered)-1; i++ {
		lo := MustParse(ordered[i])
		hi := MustParse(ordered[i+1])
		assert.Negative(t, lo.Compare(hi), "%s should sort below %s", ordered[i], ordered[i+1])
		assert.Positive(t, hi.Compare(lo), "%s should sort above %s", ordered[i+1], ordered[i])
	}

	t.Run("equal versions compare as zero", func(t *testing.T) {
		assert.Zero(t, MustParse("v1.2.3").Compare(MustParse("v01.2.3")))
	})

	t.Run("pre-release sorts below the final release", func(t *testing.T) {
		assert.Negative(t, MustParse("v1.0.0-rc.1").Compare(MustParse("v1.0.0")))
	})
}

func TestMustParse(t *testing.T) {
	assert.Panics(t, func() { MustParse("not-a-tag") })
	assert.NotPanics(t, func() { MustParse("v0.0.1") })
}
