package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"readflow/config"
)

func TestParseSiteConfig_BasicDirectives(t *testing.T) {
	t.Parallel()

	cfg, ok := config.ParseSiteConfig("title: //h1\nbody: //article\n")
	require.True(t, ok)
	assert.Equal(t, []string{"//h1"}, cfg.Title)
	assert.Equal(t, []string{"//article"}, cfg.Body)
}

func TestParseSiteConfig_CommentsAndBlankLinesIgnored(t *testing.T) {
	t.Parallel()

	cfg, ok := config.ParseSiteConfig("# a comment\n\n  \ntitle: //h1\n")
	require.True(t, ok)
	assert.Equal(t, []string{"//h1"}, cfg.Title)
}

func TestParseSiteConfig_EmptyOrCommentOnlyIsNoConfig(t *testing.T) {
	t.Parallel()

	_, ok := config.ParseSiteConfig("")
	assert.False(t, ok)

	_, ok = config.ParseSiteConfig("# just a comment\n# another\n")
	assert.False(t, ok)
}

func TestParseSiteConfig_SkipsLinesWithoutColon(t *testing.T) {
	t.Parallel()

	cfg, ok := config.ParseSiteConfig("not a directive\ntitle: //h1\n")
	require.True(t, ok)
	assert.Equal(t, []string{"//h1"}, cfg.Title)
}

func TestParseSiteConfig_SkipsEmptyKeyOrValue(t *testing.T) {
	t.Parallel()

	_, ok := config.ParseSiteConfig(": value\nkey: \n")
	assert.False(t, ok)
}

func TestParseSiteConfig_BooleanKeys(t *testing.T) {
	t.Parallel()

	cfg, ok := config.ParseSiteConfig("tidy: yes\nprune: true\nautodetect_on_failure: no\n")
	require.True(t, ok)
	assert.True(t, cfg.Tidy.Value(false))
	assert.True(t, cfg.Prune.Value(false))
	assert.False(t, cfg.AutodetectOnFailure.Value(true))
}

func TestParseSiteConfig_ParserKey(t *testing.T) {
	t.Parallel()

	cfg, ok := config.ParseSiteConfig("parser: html5lib\n")
	require.True(t, ok)
	require.NotNil(t, cfg.ParserName)
	assert.Equal(t, "html5lib", *cfg.ParserName)
}

func TestParseSiteConfig_ReplaceStringSugar(t *testing.T) {
	t.Parallel()

	cfg, ok := config.ParseSiteConfig("replace_string(foo): bar\n")
	require.True(t, ok)
	assert.Equal(t, []string{"foo"}, cfg.FindString)
	assert.Equal(t, []string{"bar"}, cfg.ReplaceString)
}

func TestParseSiteConfig_ReplaceStringSugarPatternContainingColon(t *testing.T) {
	t.Parallel()

	cfg, ok := config.ParseSiteConfig("replace_string(http://old.example.com): http://new.example.com\n")
	require.True(t, ok)
	assert.Equal(t, []string{"http://old.example.com"}, cfg.FindString)
	assert.Equal(t, []string{"http://new.example.com"}, cfg.ReplaceString)
}

func TestParseSiteConfig_FindReplacePairsStayAligned(t *testing.T) {
	t.Parallel()

	cfg, ok := config.ParseSiteConfig("find_string: a\nreplace_string: 1\nreplace_string(b): 2\n")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, cfg.FindString)
	assert.Equal(t, []string{"1", "2"}, cfg.ReplaceString)
}

func TestParseSiteConfig_MultiValueAppends(t *testing.T) {
	t.Parallel()

	cfg, ok := config.ParseSiteConfig("strip: //nav\nstrip: //footer\ntest_url: http://a\ntest_url: http://b\n")
	require.True(t, ok)
	assert.Equal(t, []string{"//nav", "//footer"}, cfg.Strip)
	assert.Equal(t, []string{"http://a", "http://b"}, cfg.TestURL)
}
