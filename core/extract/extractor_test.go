package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/jitadeck/core"
)

const articleHTML = `<!DOCTYPE html>
<html lang="ja">
<head><title>絵でわかる日本語</title></head>
<body>
<h2 class="article-title"><a href="https://www.edewakaru.com/archives/12345.html">開く・開ける｜自動詞・他動詞</a></h2>
<div class="article-body">
<p>今日は「開く（あく）・開ける（あける）」の勉強です。</p>
<p>自動詞：ドアが開く。</p>
<p>他動詞：ドアを開ける。</p>
<p>①ドアが【開きます・開けます】</p>
<p>②窓を【開きます・開けます】</p>
<p>【答え】①開きます②開けます</p>
<img src="https://livedoor.blogimg.jp/edewakaru/imgs/a/b/abc.jpg" alt="ドアの絵">
<img src="https://resize.blogsys.jp/xyz/crop/def.png" alt="窓の絵">
<img src="https://tracker.example.com/pixel.gif" alt="">
</div>
</body>
</html>`

func testExtractor(t *testing.T) *Extractor {
	t.Helper()
	return New(zap.NewNop())
}

func TestExtractArticle(t *testing.T) {
	e := testExtractor(t)

	rec, candidates, err := e.Extract(articleHTML, core.LevelBeginner, "https://www.edewakaru.com/archives/12345.html")
	require.NoError(t, err)

	assert.Equal(t, "開く開ける", rec.ID)
	assert.Equal(t, "開く・開ける｜自動詞・他動詞", rec.Title)
	assert.Equal(t, core.LevelBeginner, rec.Level)
	assert.Equal(t, "https://www.edewakaru.com/archives/12345.html", rec.SourceURL)
	assert.Equal(t, core.Attribution, rec.Attribution)

	assert.Equal(t, "開く", rec.Intransitive.Kanji)
	require.NotNil(t, rec.Intransitive.Reading)
	assert.Equal(t, "あく", *rec.Intransitive.Reading)
	require.Len(t, rec.Intransitive.Examples, 1)
	assert.Contains(t, rec.Intransitive.Examples[0], "ドアが開く")

	assert.Equal(t, "開ける", rec.Transitive.Kanji)
	require.NotNil(t, rec.Transitive.Reading)
	assert.Equal(t, "あける", *rec.Transitive.Reading)
	require.Len(t, rec.Transitive.Examples, 1)
	assert.Contains(t, rec.Transitive.Examples[0], "ドアを開ける")

	require.Len(t, rec.PracticeQuestions, 2)
	assert.Equal(t, "①ドアが【開きます・開けます】", rec.PracticeQuestions[0])
	assert.Equal(t, "②窓を【開きます・開けます】", rec.PracticeQuestions[1])

	assert.Equal(t, []string{"開きます", "開けます"}, rec.Answers)

	// Images are returned as candidates, not downloaded; the untrusted
	// tracker host is filtered out.
	require.Len(t, candidates, 2)
	assert.Equal(t, "https://livedoor.blogimg.jp/edewakaru/imgs/a/b/abc.jpg", candidates[0].URL)
	assert.Equal(t, "ドアの絵", candidates[0].Alt)
	assert.Equal(t, "https://resize.blogsys.jp/xyz/crop/def.png", candidates[1].URL)

	// The record never ships with nil collections.
	assert.NotNil(t, rec.Images)
	assert.Empty(t, rec.Images)
}

func TestExtractNotExtractable(t *testing.T) {
	e := testExtractor(t)

	tests := []struct {
		name string
		html string
	}{
		{
			name: "no title element",
			html: `<html><body><div class="article-body"><p>本文だけ</p></div></body></html>`,
		},
		{
			name: "title without pair separator",
			html: `<html><body><h1>動詞のまとめ</h1></body></html>`,
		},
		{
			name: "title with three parts",
			html: `<html><body><h1>開く・開ける・開かれる</h1></body></html>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := e.Extract(tt.html, core.LevelBeginner, "https://example.com/a.html")
			require.ErrorIs(t, err, ErrNotExtractable)
		})
	}
}

func TestExtractTitleFallbackSelectors(t *testing.T) {
	e := testExtractor(t)
	html := `<html><body><h1>止まる・止める</h1><p>本文</p></body></html>`

	rec, _, err := e.Extract(html, core.LevelAdvanced, "https://example.com/b.html")
	require.NoError(t, err)
	assert.Equal(t, "止まる止める", rec.ID)
}

func TestDiscoverImagesFirstFiveOnly(t *testing.T) {
	var b strings.Builder
	b.WriteString(`<html><body><h1>落ちる・落とす</h1><div class="article-body">`)
	// Five untrusted images first, then a trusted one: it sits past the
	// scan window and must be ignored.
	for i := 0; i < 5; i++ {
		fmt.Fprintf(&b, `<img src="https://other.example.com/%d.png">`, i)
	}
	b.WriteString(`<img src="https://livedoor.blogimg.jp/edewakaru/late.jpg" alt="遅い">`)
	b.WriteString(`</div></body></html>`)

	e := testExtractor(t)
	_, candidates, err := e.Extract(b.String(), core.LevelBeginner, "https://example.com/c.html")
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestTrustedImageURL(t *testing.T) {
	assert.True(t, trustedImageURL("https://livedoor.blogimg.jp/x/y.jpg"))
	assert.True(t, trustedImageURL("https://resize.blogsys.jp/x/y.png"))
	assert.True(t, trustedImageURL("https://img.livedoor.blogimg.jp/z.gif"))
	assert.False(t, trustedImageURL("https://evil.example.com/livedoor.blogimg.jp.jpg"))
	assert.False(t, trustedImageURL("://not a url"))
}
