package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"scentshop/models"
)

// Loader performs the one-shot catalog fetch at startup
type Loader struct {
	client *http.Client
	logger *zap.Logger
}

// NewLoader returns a Loader with a bounded request timeout
func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

// Load fetches the brand list from url and sorts it for display. A failed
// fetch is logged and yields an empty catalog; there is no retry.
func (l *Loader) Load(ctx context.Context, url string) *Catalog {
	if url == "" {
		l.logger.Warn("no catalog URL configured, starting with an empty catalog")
		return New(nil)
	}

	brands, err := l.fetch(ctx, url)
	if err != nil {
		l.logger.Error("failed to load catalog",
			zap.String("url", url),
			zap.Error(err))
		return New(nil)
	}

	SortBrands(brands)
	l.logger.Info("catalog loaded", zap.Int("brands", len(brands)))
	return New(brands)
}

func (l *Loader) fetch(ctx context.Context, url string) ([]models.Brand, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog endpoint returned %s", resp.Status)
	}

	var brands []models.Brand
	if err := json.NewDecoder(resp.Body).Decode(&brands); err != nil {
		return nil, err
	}

	return brands, nil
}
