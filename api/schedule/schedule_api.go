package schedule

import (
	"context"

	"openmat-server/models"
)

// ScheduleAPI fetches the raw schedule sheet for a region.
type ScheduleAPI interface {
	FetchRaw(ctx context.Context, region models.Region) (string, error)
}
