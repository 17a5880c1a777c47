package usecase

import (
	"context"
	"testing"
	"time"

	"exocatalog-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleOnceFires(t *testing.T) {
	sf := newServiceFixture(t, 0)
	sf.fx.source.rows = []map[string]interface{}{rawRow("Alpha b")}
	scheduler := NewRefreshScheduler(sf.service, time.Hour, logger.NopLogger{})
	defer scheduler.Stop()

	scheduler.ScheduleOnce(context.Background(), 10*time.Millisecond)

	require.Eventually(t, func() bool {
		return sf.fx.source.callCount() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestScheduleOnceCancel(t *testing.T) {
	sf := newServiceFixture(t, 0)
	scheduler := NewRefreshScheduler(sf.service, time.Hour, logger.NopLogger{})
	defer scheduler.Stop()

	cancel := scheduler.ScheduleOnce(context.Background(), 50*time.Millisecond)
	cancel()

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 0, sf.fx.source.callCount())
}

func TestSchedulerStartAndStop(t *testing.T) {
	sf := newServiceFixture(t, 0)
	scheduler := NewRefreshScheduler(sf.service, time.Hour, logger.NopLogger{})

	require.NoError(t, scheduler.Start(context.Background()))
	scheduler.Stop()
}
