package task

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch_admin/internal/api/dto"
	"dispatch_admin/internal/repository"
	"dispatch_admin/internal/service"
	"dispatch_admin/internal/testutil"
)

type fakeFinder struct {
	report  *dto.OrphanReportResp
	err     error
	started chan struct{}
	release chan struct{}
	calls   int
}

func (f *fakeFinder) FindDispatchesWithDeletedShops(ctx context.Context) (*dto.OrphanReportResp, error) {
	f.calls++
	if f.started != nil {
		close(f.started)
		<-f.release
	}
	return f.report, f.err
}

func TestOrphanDispatchTask_RunOnce(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.Seed(t, db)
	svc := service.NewDispatchService(db, repository.NewDispatchRepository(db), zerolog.Nop())

	var buf bytes.Buffer
	task := NewOrphanDispatchTask(svc, "0 0 3 * * *", zerolog.New(&buf))
	assert.Nil(t, task.LastReport())

	report, err := task.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Count)
	assert.Same(t, report, task.LastReport())

	out := buf.String()
	assert.Contains(t, out, `"dispatch_id":3`)
	assert.Contains(t, out, `"multi_shop_id":99`)
	assert.Contains(t, out, `"count":2`)
}

func TestOrphanDispatchTask_Clean(t *testing.T) {
	finder := &fakeFinder{report: &dto.OrphanReportResp{Items: []dto.OrphanDispatchItem{}}}

	var buf bytes.Buffer
	task := NewOrphanDispatchTask(finder, "0 0 3 * * *", zerolog.New(&buf))

	report, err := task.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.Count)
	assert.Contains(t, buf.String(), "未发现问题")
}

func TestOrphanDispatchTask_Error(t *testing.T) {
	finder := &fakeFinder{err: errors.New("db down")}
	task := NewOrphanDispatchTask(finder, "0 0 3 * * *", zerolog.Nop())

	_, err := task.RunOnce(context.Background())
	assert.EqualError(t, err, "db down")
	assert.Nil(t, task.LastReport())
}

func TestOrphanDispatchTask_NoOverlap(t *testing.T) {
	finder := &fakeFinder{
		report:  &dto.OrphanReportResp{},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	task := NewOrphanDispatchTask(finder, "0 0 3 * * *", zerolog.Nop())

	done := make(chan error, 1)
	go func() {
		_, err := task.RunOnce(context.Background())
		done <- err
	}()

	<-finder.started
	_, err := task.RunOnce(context.Background())
	assert.ErrorIs(t, err, ErrTaskRunning)

	close(finder.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, finder.calls)
}

func TestOrphanDispatchTask_StartStop(t *testing.T) {
	task := NewOrphanDispatchTask(&fakeFinder{report: &dto.OrphanReportResp{}}, "0 0 3 * * *", zerolog.Nop())
	require.NoError(t, task.Start())

	select {
	case <-task.Stop().Done():
	case <-time.After(time.Second):
		t.Fatal("任务未能停止")
	}
}

func TestOrphanDispatchTask_InvalidSpec(t *testing.T) {
	task := NewOrphanDispatchTask(&fakeFinder{}, "every day", zerolog.Nop())
	assert.Error(t, task.Start())
}
