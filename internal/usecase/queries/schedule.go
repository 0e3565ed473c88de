package queries

import (
	"context"

	"expo-gateway/internal/domain/schedule"
	"expo-gateway/internal/pkg/errs"
	"expo-gateway/internal/usecase/readmodel"
	"expo-gateway/internal/usecase/shared"
)

type ScheduleQueries interface {
	GetSchedule(ctx context.Context) (*readmodel.ScheduleRM, error)
}

type scheduleQueriesImpl struct {
	gateway shared.ExpoGateway
}

func NewScheduleQueries(gateway shared.ExpoGateway) ScheduleQueries {
	return &scheduleQueriesImpl{gateway: gateway}
}

// GetSchedule fetches the event snapshot and derives the grid projection.
// The projection is cheap and recomputed on every call; there is nothing to
// cache because the snapshot itself is the source of truth.
func (q *scheduleQueriesImpl) GetSchedule(ctx context.Context) (*readmodel.ScheduleRM, error) {
	info, err := q.gateway.FetchEventInfo(ctx)
	if err != nil {
		return nil, err
	}

	grid := schedule.BuildGrid(info.Days)
	rm, err := readmodel.NewScheduleRM(info, grid)
	if err != nil {
		return nil, errs.Wrap(err, "building schedule read model")
	}
	return rm, nil
}
