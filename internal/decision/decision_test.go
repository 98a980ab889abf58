package decision

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/relaykit/cli/internal/semver"
)

func TestEmit(t *testing.T) {
	t.Run("semantic highest", func(t *testing.T) {
		v := semver.MustParse("v1.2.3")
		d := Emit("v1.2.3", v, true, true)

		assert.Equal(t, "v1.2.3", d.RawTag)
		assert.Equal(t, "v1.2.3", d.Version)
		assert.Equal(t, "1.2.3", d.Unprefixed)
		assert.True(t, d.IsSemantic)
		assert.True(t, d.IsHighest)
	})

	t.Run("semantic but not highest", func(t *testing.T) {
		v := semver.MustParse("v1.0.1")
		d := Emit("v1.0.1", v, true, false)

		assert.True(t, d.IsSemantic)
		assert.False(t, d.IsHighest)
	})

	t.Run("non-semantic tag", func(t *testing.T) {
		d := Emit("nightly-2024-06-01", semver.Version{}, false, true)

		assert.Equal(t, "nightly-2024-06-01", d.RawTag)
		assert.Empty(t, d.Version)
		assert.Equal(t, "nightly-2024-06-01", d.Unprefixed)
		assert.False(t, d.IsSemantic)
		// A non-semantic tag can never advance latest pointers, even if the
		// caller passed highest=true by mistake.
		assert.False(t, d.IsHighest)
	})

	t.Run("unprefixed falls back to raw without marker", func(t *testing.T) {
		d := Emit("build-42", semver.Version{}, false, false)
		assert.Equal(t, "build-42", d.Unprefixed)
	})
}

func TestDecisionRender(t *testing.T) {
	d := Emit("v2.0.0", semver.MustParse("v2.0.0"), true, true)

	t.Run("yaml", func(t *testing.T) {
		out, err := d.Render("yaml")
		require.NoError(t, err)

		var back Decision
		require.NoError(t, yaml.Unmarshal(out, &back))
		assert.Equal(t, d, back)
	})

	t.Run("json", func(t *testing.T) {
		out, err := d.Render("json")
		require.NoError(t, err)

		var back Decision
		require.NoError(t, json.Unmarshal(out, &back))
		assert.Equal(t, d, back)
	})
}
