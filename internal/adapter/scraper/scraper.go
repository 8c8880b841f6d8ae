package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"wikiquiz/internal/config"
	"wikiquiz/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// maxBodyChars bounds the article text to keep the downstream prompt
	// within token limits; minBodyChars rejects stubs and redirect pages.
	maxBodyChars     = 10000
	minBodyChars     = 100
	truncationMarker = "..."
)

// WikipediaScraper implements domain.ArticleExtractor against English
// Wikipedia article pages.
type WikipediaScraper struct {
	client  *http.Client
	baseURL string
	logger  *zap.Logger
}

func NewWikipediaScraper(cfg config.ScraperConfig, logger *zap.Logger) domain.ArticleExtractor {
	return &WikipediaScraper{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.ArticleBaseURL,
		logger:  logger,
	}
}

// Extract fetches the article page and returns its title plus the cleaned
// narrative text. The URL shape is checked before any network access.
func (s *WikipediaScraper) Extract(ctx context.Context, url string) (*domain.ArticleContent, error) {
	if !strings.HasPrefix(url, s.baseURL) || len(url) == len(s.baseURL) {
		return nil, domain.NewInvalidInputError("please provide a valid English Wikipedia article URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domain.NewInvalidInputError("malformed article URL: " + url)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, domain.NewFetchFailedError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domain.NewFetchFailedError(fmt.Errorf("unexpected status %s", resp.Status))
	}

	rawHTML, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewFetchFailedError(err)
	}

	doc, err := html.Parse(bytes.NewReader(rawHTML))
	if err != nil {
		return nil, domain.NewExtractionFailedError("could not parse article HTML")
	}

	title := findFirstHeading(doc)
	if title == "" {
		title = "Unknown Title"
	}

	content := findContentRoot(doc)
	if content == nil {
		return nil, domain.NewExtractionFailedError("could not find article content")
	}

	paragraphs := collectParagraphs(content)
	bodyText := strings.Join(paragraphs, "\n\n")

	if runes := []rune(bodyText); len(runes) > maxBodyChars {
		bodyText = string(runes[:maxBodyChars]) + truncationMarker
	}

	if len(bodyText) < minBodyChars {
		return nil, domain.NewExtractionFailedError("no substantial content extracted from article")
	}

	s.logger.Debug("extracted article",
		zap.String("title", title),
		zap.Int("body_chars", len(bodyText)))

	return &domain.ArticleContent{
		Title:    title,
		BodyText: bodyText,
		RawHTML:  string(rawHTML),
	}, nil
}
