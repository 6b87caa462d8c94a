package schedule

import (
	"context"

	"openmat-server/api"
	"openmat-server/models"
)

// ScheduleApiClient embeds the common HTTPClient
type ScheduleApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	urls            map[models.Region]string
}

// NewScheduleApiClient creates a client reading each region from its fixed URL.
func NewScheduleApiClient(httpClient *api.HTTPClient, urls map[models.Region]string) *ScheduleApiClient {
	copied := make(map[models.Region]string, len(urls))
	for r, u := range urls {
		copied[r] = u
	}
	return &ScheduleApiClient{
		HTTPClient: httpClient,
		urls:       copied,
	}
}

// FetchRaw downloads the region's sheet as CSV text.
func (c *ScheduleApiClient) FetchRaw(ctx context.Context, region models.Region) (string, error) {
	url, ok := c.urls[region]
	if !ok {
		return "", &api.NetworkError{URL: string(region), Err: models.ErrUnknownRegion}
	}
	return c.GetRaw(ctx, url)
}
