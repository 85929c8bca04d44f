package etree_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docslice"
	"github.com/fwojciec/docslice/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("decodes a urlset with full entry fields", func(t *testing.T) {
		t.Parallel()

		xml := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url>
    <loc>https://example.com/docs/intro</loc>
    <lastmod>2024-01-15</lastmod>
    <changefreq>weekly</changefreq>
    <priority>0.8</priority>
  </url>
  <url><loc>https://example.com/docs/guide</loc></url>
</urlset>`

		sm, err := etree.Decode(strings.NewReader(xml))

		require.NoError(t, err)
		assert.Equal(t, docslice.SitemapURLSet, sm.Kind)
		require.Len(t, sm.Entries, 2)

		assert.Equal(t, "https://example.com/docs/intro", sm.Entries[0].Loc)
		assert.Equal(t, "2024-01-15", sm.Entries[0].LastMod)
		assert.Equal(t, "weekly", sm.Entries[0].ChangeFreq)
		require.NotNil(t, sm.Entries[0].Priority)
		assert.InDelta(t, 0.8, *sm.Entries[0].Priority, 1e-9)

		assert.Equal(t, "https://example.com/docs/guide", sm.Entries[1].Loc)
		assert.Nil(t, sm.Entries[1].Priority)
	})

	t.Run("decodes a sitemap index", func(t *testing.T) {
		t.Parallel()

		xml := `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>https://example.com/sitemap-docs.xml</loc></sitemap>
  <sitemap><loc>https://example.com/sitemap-api.xml</loc></sitemap>
</sitemapindex>`

		sm, err := etree.Decode(strings.NewReader(xml))

		require.NoError(t, err)
		assert.Equal(t, docslice.SitemapIndex, sm.Kind)
		assert.Equal(t, []string{
			"https://example.com/sitemap-docs.xml",
			"https://example.com/sitemap-api.xml",
		}, sm.Children)
	})

	t.Run("unrecognized root decodes as empty, not an error", func(t *testing.T) {
		t.Parallel()

		sm, err := etree.Decode(strings.NewReader(`<rss version="2.0"></rss>`))

		require.NoError(t, err)
		assert.Equal(t, docslice.SitemapEmpty, sm.Kind)
		assert.Empty(t, sm.Children)
		assert.Empty(t, sm.Entries)
	})

	t.Run("document without a root decodes as empty", func(t *testing.T) {
		t.Parallel()

		sm, err := etree.Decode(strings.NewReader(`<?xml version="1.0"?>`))

		require.NoError(t, err)
		assert.Equal(t, docslice.SitemapEmpty, sm.Kind)
	})

	t.Run("malformed XML is an invalid error", func(t *testing.T) {
		t.Parallel()

		_, err := etree.Decode(strings.NewReader(`<urlset><url><loc>`))

		require.Error(t, err)
		assert.Equal(t, docslice.EINVALID, docslice.ErrorCode(err))
	})

	t.Run("entries without a loc are skipped", func(t *testing.T) {
		t.Parallel()

		xml := `<urlset>
  <url><lastmod>2024-01-01</lastmod></url>
  <url><loc>  </loc></url>
  <url><loc>https://example.com/kept</loc></url>
</urlset>`

		sm, err := etree.Decode(strings.NewReader(xml))

		require.NoError(t, err)
		require.Len(t, sm.Entries, 1)
		assert.Equal(t, "https://example.com/kept", sm.Entries[0].Loc)
	})

	t.Run("non-numeric priority is left absent", func(t *testing.T) {
		t.Parallel()

		xml := `<urlset>
  <url><loc>https://example.com/a</loc><priority>high</priority></url>
</urlset>`

		sm, err := etree.Decode(strings.NewReader(xml))

		require.NoError(t, err)
		require.Len(t, sm.Entries, 1)
		assert.Nil(t, sm.Entries[0].Priority)
	})
}
