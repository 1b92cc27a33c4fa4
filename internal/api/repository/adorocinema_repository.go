package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"cinepulse/internal/api/config"
	"cinepulse/internal/api/dto"
	"cinepulse/pkg/logger"
	"cinepulse/pkg/sentiment"

	"github.com/PuerkitoBio/goquery"
)

const (
	adoroCinemaDefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	adoroCinemaAcceptLanguage   = "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7"
)

type adoroCinemaRepository struct {
	cfg    config.AdoroCinema
	client *http.Client
	logger *logger.Logger
}

// NewAdoroCinemaRepository creates a review source that scrapes Portuguese
// audience reviews from AdoroCinema.
func NewAdoroCinemaRepository(cfg config.AdoroCinema, log *logger.Logger) ReviewSource {
	if cfg.UserAgent == "" {
		cfg.UserAgent = adoroCinemaDefaultUserAgent
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &adoroCinemaRepository{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.HTTPTimeout},
		logger: log,
	}
}

func (r *adoroCinemaRepository) Name() string {
	return "adorocinema"
}

func (r *adoroCinemaRepository) Fetch(ctx context.Context, title string) (*dto.SourceResult, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrMovieNotFound
	}

	movieURL, movieTitle, err := r.findMovie(ctx, title)
	if err != nil {
		return nil, err
	}

	criticsURL := movieURL
	if !strings.Contains(criticsURL, "/criticas/") {
		criticsURL = strings.TrimRight(criticsURL, "/") + "/criticas/"
	}

	reviews, err := r.scrapeReviews(ctx, criticsURL)
	if err != nil {
		r.logger.Warn("AdoroCinema reviews unavailable",
			logger.StringField("url", criticsURL),
			logger.ErrorField(err))
		reviews = []dto.ReviewRecord{}
	}

	return &dto.SourceResult{
		Reviews:  map[dto.Language][]dto.ReviewRecord{sentiment.Portuguese: reviews},
		Metadata: &dto.MovieMetadata{LocalTitle: movieTitle},
	}, nil
}

func (r *adoroCinemaRepository) findMovie(ctx context.Context, title string) (string, string, error) {
	searchURL := r.cfg.BaseURL + "/pesquisar/?q=" + url.QueryEscape(title)
	doc, err := r.document(ctx, searchURL)
	if err != nil {
		return "", "", fmt.Errorf("adorocinema search: %w", err)
	}

	link := doc.Find("a.meta-title-link").First()
	href, ok := link.Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return "", "", ErrMovieNotFound
	}
	if !strings.HasPrefix(href, "http") {
		href = r.cfg.BaseURL + href
	}
	return href, strings.TrimSpace(link.Text()), nil
}

func (r *adoroCinemaRepository) scrapeReviews(ctx context.Context, criticsURL string) ([]dto.ReviewRecord, error) {
	doc, err := r.document(ctx, criticsURL)
	if err != nil {
		return nil, err
	}

	var reviews []dto.ReviewRecord
	doc.Find("div.content-txt.review-card-content").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		if utf8.RuneCountInString(text) > r.cfg.MinReviewLength {
			reviews = append(reviews, dto.ReviewRecord{Text: text, Language: sentiment.Portuguese})
		}
		return len(reviews) < r.cfg.MaxReviews
	})
	return reviews, nil
}

func (r *adoroCinemaRepository) document(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", r.cfg.UserAgent)
	req.Header.Set("Accept-Language", adoroCinemaAcceptLanguage)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s returned %d", pageURL, resp.StatusCode)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}
