package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"wikiquiz/internal/config"
	"wikiquiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func articlePage(title, content string) string {
	return `<!DOCTYPE html>
<html>
<head><title>` + title + ` - Wikipedia</title></head>
<body>
<h1 class="firstHeading">` + title + `</h1>
<div id="mw-content-text">
<div class="mw-parser-output">
` + content + `
</div>
</div>
</body>
</html>`
}

// testScraper returns a scraper pointed at a local server plus a request
// counter.
func testScraper(t *testing.T, page string, status int) (domain.ArticleExtractor, string, *int64) {
	t.Helper()

	var requests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(page))
	}))
	t.Cleanup(srv.Close)

	cfg := config.ScraperConfig{
		ArticleBaseURL: srv.URL + "/wiki/",
		Timeout:        5 * time.Second,
	}
	return NewWikipediaScraper(cfg, zap.NewNop()), srv.URL + "/wiki/Test_Article", &requests
}

func assertCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func paragraphs(n int, text string) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString("<p>" + text + "</p>\n")
	}
	return sb.String()
}

func TestExtractRejectsForeignURLsWithoutNetworkAccess(t *testing.T) {
	s, _, requests := testScraper(t, "", http.StatusOK)

	urls := []string{
		"https://example.com/wiki/Go",
		"https://de.wikipedia.org/wiki/Go",
		"http://en.wikipedia.org/wiki/Go",
		"ftp://en.wikipedia.org/wiki/Go",
		"not a url",
		"",
	}
	for _, url := range urls {
		_, err := s.Extract(context.Background(), url)
		assertCode(t, err, domain.CodeInvalidInput)
	}
	assert.Zero(t, atomic.LoadInt64(requests), "invalid URLs must not trigger network calls")
}

func TestExtractRejectsBareArticleBase(t *testing.T) {
	cfg := config.ScraperConfig{
		ArticleBaseURL: "https://en.wikipedia.org/wiki/",
		Timeout:        time.Second,
	}
	s := NewWikipediaScraper(cfg, zap.NewNop())

	// The base URL with no article path is not an article.
	_, err := s.Extract(context.Background(), "https://en.wikipedia.org/wiki/")
	assertCode(t, err, domain.CodeInvalidInput)
}

func TestExtractReturnsTitleAndJoinedParagraphs(t *testing.T) {
	page := articlePage("Test Article", `
<p>First paragraph with enough words to matter for the extraction flow.</p>
<p>Second paragraph carrying additional narrative text for the article.</p>
<p>Third paragraph closing out the body of this small test article.</p>`)
	s, url, _ := testScraper(t, page, http.StatusOK)

	content, err := s.Extract(context.Background(), url)
	require.NoError(t, err)

	assert.Equal(t, "Test Article", content.Title)
	parts := strings.Split(content.BodyText, "\n\n")
	require.Len(t, parts, 3)
	assert.Equal(t, "First paragraph with enough words to matter for the extraction flow.", parts[0])
	assert.Contains(t, content.RawHTML, "mw-parser-output")
}

func TestExtractDropsTablesAndKeepsParagraphs(t *testing.T) {
	page := articlePage("Test Article", `
<p>Hello</p>
<table><tr><td>TABLE_CELL_TEXT</td></tr></table>
`+paragraphs(3, "Padding paragraph so the minimum content floor is met here."))
	s, url, _ := testScraper(t, page, http.StatusOK)

	content, err := s.Extract(context.Background(), url)
	require.NoError(t, err)
	assert.Contains(t, content.BodyText, "Hello")
	assert.NotContains(t, content.BodyText, "TABLE_CELL_TEXT")
}

func TestExtractStripsNoiseElements(t *testing.T) {
	page := articlePage("Test Article", `
<p>Real text<sup>CITATION_1</sup> continues here with enough length to pass the floor.</p>
<div class="navbox"><p>NAVBOX_TEXT</p></div>
<div class="reflist"><p>REFLIST_TEXT</p></div>
<p>Another paragraph<span class="mw-editsection">EDIT_LINK</span> of real article prose.</p>
<style>BODY_CSS</style>
<script>EVIL_JS</script>
`+paragraphs(2, "Extra narrative text to clear the hundred character minimum floor."))
	s, url, _ := testScraper(t, page, http.StatusOK)

	content, err := s.Extract(context.Background(), url)
	require.NoError(t, err)

	for _, noise := range []string{"CITATION_1", "NAVBOX_TEXT", "REFLIST_TEXT", "EDIT_LINK", "BODY_CSS", "EVIL_JS"} {
		assert.NotContains(t, content.BodyText, noise)
	}
	assert.Contains(t, content.BodyText, "Real text continues here")
}

func TestExtractTruncatesLongBodies(t *testing.T) {
	long := strings.Repeat("a", 12000)
	page := articlePage("Test Article", "<p>"+long+"</p>")
	s, url, _ := testScraper(t, page, http.StatusOK)

	content, err := s.Extract(context.Background(), url)
	require.NoError(t, err)

	assert.Len(t, content.BodyText, maxBodyChars+len(truncationMarker))
	assert.True(t, strings.HasSuffix(content.BodyText, truncationMarker))
}

func TestExtractKeepsShortBodiesUntruncated(t *testing.T) {
	text := strings.Repeat("b", 500)
	page := articlePage("Test Article", "<p>"+text+"</p>")
	s, url, _ := testScraper(t, page, http.StatusOK)

	content, err := s.Extract(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, text, content.BodyText)
}

func TestExtractFailsOnInsubstantialContent(t *testing.T) {
	page := articlePage("Stub", "<p>Too short.</p>")
	s, url, _ := testScraper(t, page, http.StatusOK)

	_, err := s.Extract(context.Background(), url)
	assertCode(t, err, domain.CodeExtractionFailed)
	assert.Contains(t, err.Error(), "no substantial content")
}

func TestExtractFailsWithoutContentContainer(t *testing.T) {
	page := `<html><body><h1 class="firstHeading">Orphan</h1><p>` +
		strings.Repeat("text ", 100) + `</p></body></html>`
	s, url, _ := testScraper(t, page, http.StatusOK)

	_, err := s.Extract(context.Background(), url)
	assertCode(t, err, domain.CodeExtractionFailed)
	assert.Contains(t, err.Error(), "could not find article content")
}

func TestExtractDefaultsMissingTitle(t *testing.T) {
	page := `<html><body>
<div id="mw-content-text"><div class="mw-parser-output">
<p>` + strings.Repeat("Article text without any heading element present. ", 5) + `</p>
</div></div>
</body></html>`
	s, url, _ := testScraper(t, page, http.StatusOK)

	content, err := s.Extract(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Title", content.Title)
}

func TestExtractFailsOnErrorStatus(t *testing.T) {
	s, url, _ := testScraper(t, "gone", http.StatusNotFound)

	_, err := s.Extract(context.Background(), url)
	assertCode(t, err, domain.CodeFetchFailed)
}

func TestExtractFailsOnConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL + "/wiki/"
	srv.Close() // nothing listening anymore

	cfg := config.ScraperConfig{ArticleBaseURL: base, Timeout: 2 * time.Second}
	s := NewWikipediaScraper(cfg, zap.NewNop())

	_, err := s.Extract(context.Background(), base+"Test")
	assertCode(t, err, domain.CodeFetchFailed)
}

func TestExtractFindsTitleByID(t *testing.T) {
	page := `<html><body>
<h1 id="firstHeading">ID Title</h1>
<div id="mw-content-text"><div class="mw-parser-output">
<p>` + strings.Repeat("Body text for the identifier-based heading variant. ", 5) + `</p>
</div></div>
</body></html>`
	s, url, _ := testScraper(t, page, http.StatusOK)

	content, err := s.Extract(context.Background(), url)
	require.NoError(t, err)
	assert.Equal(t, "ID Title", content.Title)
}
