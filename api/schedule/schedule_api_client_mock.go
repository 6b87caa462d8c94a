package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"openmat-server/api"
	"openmat-server/config"
	"openmat-server/models"
	"openmat-server/util"
)

// ScheduleApiClientMock serves schedule sheets from the resources directory
type ScheduleApiClientMock struct {
	resourceDir string
}

// NewScheduleApiClientMock creates a mock reading resources/<region>.csv.
func NewScheduleApiClientMock() *ScheduleApiClientMock {
	return &ScheduleApiClientMock{}
}

// NewScheduleApiClientMockAt creates a mock reading <dir>/<region>.csv.
func NewScheduleApiClientMockAt(dir string) *ScheduleApiClientMock {
	return &ScheduleApiClientMock{resourceDir: dir}
}

// FetchRaw returns the fixture for region. A missing fixture is reported as
// a NetworkError, the same way an unreachable sheet would be.
func (c *ScheduleApiClientMock) FetchRaw(ctx context.Context, region models.Region) (string, error) {
	if _, err := region.Schema(); err != nil {
		return "", &api.NetworkError{URL: string(region), Err: err}
	}

	name := fmt.Sprintf(config.SCHEDULE_RESOURCE_FORMAT, region)
	path := config.GetResourcePath(name)
	if c.resourceDir != "" {
		path = util.JoinPath(c.resourceDir, name)
	}

	raw, err := util.ReadScheduleFile(path)
	if err != nil {
		slog.Warn("Could not read schedule fixture", "component", "ScheduleApiClientMock", "path", path, "err", err)
		return "", &api.NetworkError{URL: path, Err: err}
	}
	return raw, nil
}
