package imports

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// FeedClient fetches the staging dataset from a remote listing feed. The
// feed returns a JSON array of SeedListing rows.
type FeedClient struct {
	http    *resty.Client
	limiter *rate.Limiter
}

// NewFeedClient builds a client for the given feed URL. Requests are
// limited to one per second with a burst of two, which keeps reseeds well
// under typical feed quotas.
func NewFeedClient(feedURL string) *FeedClient {
	client := resty.New().
		SetBaseURL(feedURL).
		SetTimeout(20 * time.Second).
		SetHeader("Accept", "application/json")
	return &FeedClient{
		http:    client,
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
	}
}

// Fetch pulls the full dataset from the feed.
func (f *FeedClient) Fetch(ctx context.Context) ([]SeedListing, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var listings []SeedListing
	resp, err := f.http.R().
		SetContext(ctx).
		SetResult(&listings).
		Get("")
	if err != nil {
		return nil, fmt.Errorf("feed request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode())
	}
	return listings, nil
}
