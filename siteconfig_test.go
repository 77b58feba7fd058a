package readflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"readflow"
)

func TestMerge_EmptyIsIdentity(t *testing.T) {
	t.Parallel()

	c := &readflow.SiteConfig{
		Title:         []string{"//h1"},
		Body:          []string{"//article"},
		FindString:    []string{"foo"},
		ReplaceString: []string{"bar"},
		Tidy:          readflow.BoolTrue(),
	}

	merged := readflow.Merge(c, &readflow.SiteConfig{})

	assert.Equal(t, c.Title, merged.Title)
	assert.Equal(t, c.Body, merged.Body)
	assert.Equal(t, c.FindString, merged.FindString)
	assert.Equal(t, c.ReplaceString, merged.ReplaceString)
	assert.Equal(t, true, merged.Tidy.Value(false))
}

func TestMerge_UnionPreservesOrderAndDedups(t *testing.T) {
	t.Parallel()

	current := &readflow.SiteConfig{Strip: []string{"//nav", "//footer"}}
	new := &readflow.SiteConfig{Strip: []string{"//footer", "//aside"}}

	merged := readflow.Merge(current, new)

	assert.Equal(t, []string{"//nav", "//footer", "//aside"}, merged.Strip)
}

func TestMerge_TriStateOnlySetsWhenUndeclared(t *testing.T) {
	t.Parallel()

	current := &readflow.SiteConfig{Tidy: readflow.BoolFalse()}
	new := &readflow.SiteConfig{Tidy: readflow.BoolTrue()}

	merged := readflow.Merge(current, new)
	assert.False(t, merged.Tidy.Value(true), "declared-false must not be overridden by new")

	current2 := &readflow.SiteConfig{}
	merged2 := readflow.Merge(current2, new)
	assert.True(t, merged2.Tidy.Value(false), "undeclared current takes new's declared value")
}

func TestMerge_FindReplaceConcatenatesWithoutDedup(t *testing.T) {
	t.Parallel()

	c1 := &readflow.SiteConfig{FindString: []string{"a", "b"}, ReplaceString: []string{"1", "2"}}
	c2 := &readflow.SiteConfig{FindString: []string{"a"}, ReplaceString: []string{"9"}}

	merged := readflow.Merge(c1, c2)

	assert.Len(t, merged.FindString, len(c1.FindString)+len(c2.FindString))
	assert.Equal(t, []string{"a", "b", "a"}, merged.FindString)
	assert.Equal(t, []string{"1", "2", "9"}, merged.ReplaceString)

	pairs := merged.FindReplacePairs()
	assert.Len(t, pairs, len(merged.FindString))
	for i, p := range pairs {
		assert.Equal(t, merged.FindString[i], p.Find)
		assert.Equal(t, merged.ReplaceString[i], p.Replace)
	}
}

func TestSiteConfig_ParserOrDefault(t *testing.T) {
	t.Parallel()

	var c readflow.SiteConfig
	assert.Equal(t, readflow.ParserLibxml, c.ParserOrDefault())

	html5 := string(readflow.ParserHTML5Lib)
	c.ParserName = &html5
	assert.Equal(t, readflow.ParserHTML5Lib, c.ParserOrDefault())
}

func TestOptBool_ValueDefault(t *testing.T) {
	t.Parallel()

	var unset readflow.OptBool
	assert.True(t, unset.Value(true))
	assert.False(t, unset.IsSet())

	v, set := readflow.BoolTrue().Raw()
	assert.True(t, v)
	assert.True(t, set)
}
