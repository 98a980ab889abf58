package tags

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticSetListTags(t *testing.T) {
	set := StaticSet{"v1.0.0", "v2.0.0"}

	got, err := set.ListTags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"v1.0.0", "v2.0.0"}, got)

	// The returned slice is a copy; mutating it must not affect the snapshot.
	got[0] = "mutated"
	again, err := set.ListTags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"v1.0.0", "v2.0.0"}, again)
}

func TestFilterMajor(t *testing.T) {
	all := []string{"v1.5.0", "v2.3.0", "v1.6.0-rc.1", "nightly", "v0.9.9"}

	assert.Equal(t, []string{"v1.5.0", "v1.6.0-rc.1"}, FilterMajor(all, 1))
	assert.Equal(t, []string{"v2.3.0"}, FilterMajor(all, 2))
	assert.Empty(t, FilterMajor(all, 7))
}

func TestSortedVersions(t *testing.T) {
	all := []string{"v1.0.0", "v2.0.0", "v1.1.5", "not-a-version", "v2.0.0-rc.1"}

	vs := SortedVersions(all)
	require.Len(t, vs, 4)

	var raws []string
	for _, v := range vs {
		raws = append(raws, v.Raw())
	}
	assert.Equal(t, []string{"v2.0.0", "v2.0.0-rc.1", "v1.1.5", "v1.0.0"}, raws)
}
