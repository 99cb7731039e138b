package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	insightmocks "outlet-analytics/internal/insights/mocks"
	"outlet-analytics/internal/models"
	"outlet-analytics/internal/shared/loggers"
	storemocks "outlet-analytics/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type schedulerFixture struct {
	scheduler *Scheduler
	engine    *insightmocks.MockInsightsEngine
	outlets   *storemocks.MockEventStore
}

func newSchedulerFixture(t *testing.T, batchSize int, batchDelay time.Duration) *schedulerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	engine := insightmocks.NewMockInsightsEngine(ctrl)
	outlets := storemocks.NewMockEventStore(ctrl)

	logger, err := loggers.New("error")
	require.NoError(t, err)

	return &schedulerFixture{
		scheduler: NewScheduler(engine, outlets, batchSize, batchDelay, logger),
		engine:    engine,
		outlets:   outlets,
	}
}

func TestRunFleet_ComputesEveryActiveOutlet(t *testing.T) {
	t.Parallel()

	f := newSchedulerFixture(t, 2, 0)
	ctx := context.Background()

	f.outlets.EXPECT().
		ActiveOutletIDs(ctx, gomock.Any()).
		Return([]string{"o1", "o2", "o3"}, nil)

	var mu sync.Mutex
	computed := make(map[string]int)
	f.engine.EXPECT().
		ComputeForOutlet(ctx, gomock.Any(), models.Range7d).
		DoAndReturn(func(_ context.Context, outletID string, _ models.TimeRange) (*models.InsightsSummary, error) {
			mu.Lock()
			defer mu.Unlock()
			computed[outletID]++
			return &models.InsightsSummary{OutletID: outletID}, nil
		}).
		Times(3)

	f.scheduler.RunFleet(ctx, models.Range7d)

	assert.Equal(t, map[string]int{"o1": 1, "o2": 1, "o3": 1}, computed)
}

func TestRunFleet_OneOutletFailureDoesNotAbortOthers(t *testing.T) {
	t.Parallel()

	f := newSchedulerFixture(t, 1, 0)
	ctx := context.Background()

	f.outlets.EXPECT().
		ActiveOutletIDs(ctx, gomock.Any()).
		Return([]string{"o_bad", "o_good"}, nil)

	var mu sync.Mutex
	var seen []string
	f.engine.EXPECT().
		ComputeForOutlet(ctx, gomock.Any(), models.Range30d).
		DoAndReturn(func(_ context.Context, outletID string, _ models.TimeRange) (*models.InsightsSummary, error) {
			mu.Lock()
			seen = append(seen, outletID)
			mu.Unlock()
			if outletID == "o_bad" {
				return nil, errors.New("summary store down")
			}
			return &models.InsightsSummary{OutletID: outletID}, nil
		}).
		Times(2)

	f.scheduler.RunFleet(ctx, models.Range30d)

	assert.ElementsMatch(t, []string{"o_bad", "o_good"}, seen)
}

func TestRunFleet_SkipsWhenAlreadyRunning(t *testing.T) {
	t.Parallel()

	f := newSchedulerFixture(t, 10, 0)
	ctx := context.Background()

	release := make(chan struct{})
	started := make(chan struct{})

	f.outlets.EXPECT().ActiveOutletIDs(ctx, gomock.Any()).Return([]string{"o1"}, nil)
	f.engine.EXPECT().
		ComputeForOutlet(ctx, "o1", models.Range7d).
		DoAndReturn(func(context.Context, string, models.TimeRange) (*models.InsightsSummary, error) {
			close(started)
			<-release
			return &models.InsightsSummary{}, nil
		})

	done := make(chan struct{})
	go func() {
		f.scheduler.RunFleet(ctx, models.Range7d)
		close(done)
	}()

	<-started
	// second run overlaps the first and must be skipped without touching
	// the outlet lister
	f.scheduler.RunFleet(ctx, models.Range30d)

	close(release)
	<-done
}

func TestRunFleet_DiscoveryFailureAbortsRun(t *testing.T) {
	t.Parallel()

	f := newSchedulerFixture(t, 10, 0)
	ctx := context.Background()

	f.outlets.EXPECT().
		ActiveOutletIDs(ctx, gomock.Any()).
		Return(nil, errors.New("distinct query failed"))

	// no engine calls expected
	f.scheduler.RunFleet(ctx, models.Range90d)

	// the guard is released, so a later run proceeds
	f.outlets.EXPECT().ActiveOutletIDs(ctx, gomock.Any()).Return(nil, nil)
	f.scheduler.RunFleet(ctx, models.Range90d)
}

func TestRunFleet_LookbackCoversNinetyDays(t *testing.T) {
	t.Parallel()

	f := newSchedulerFixture(t, 10, 0)
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	f.scheduler.clock = func() time.Time { return now }

	f.outlets.EXPECT().
		ActiveOutletIDs(gomock.Any(), now.Add(-90*24*time.Hour)).
		Return(nil, nil)

	f.scheduler.RunFleet(context.Background(), models.Range7d)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	f := newSchedulerFixture(t, 10, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// cadences are hours apart, so no tick fires during the test
	f.scheduler.Start(ctx)
	f.scheduler.Stop()
	f.scheduler.Stop()
}
