package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/bookscan/model"
	"github.com/viant/bookscan/service/dao"
)

func TestService(t *testing.T) {
	ctx := context.Background()
	srv := New()
	now := time.Date(2020, 2, 20, 17, 30, 0, 0, time.UTC)

	assert.ErrorIs(t, srv.Save(ctx, nil), dao.ErrNilEntity)
	assert.ErrorIs(t, srv.Save(ctx, &model.Report{}), dao.ErrInvalidID)

	require.NoError(t, srv.Save(ctx, &model.Report{ID: "2", RunID: "r1", Instance: "b_read_on", StartedAt: now.Add(time.Second), Error: "boom"}))
	require.NoError(t, srv.Save(ctx, &model.Report{ID: "1", RunID: "r1", Instance: "a_example", StartedAt: now, Score: 21}))

	report, err := srv.Load(ctx, "1")
	require.NoError(t, err)
	assert.EqualValues(t, 21, report.Score)

	_, err = srv.Load(ctx, "3")
	assert.ErrorIs(t, err, dao.ErrNotFound)

	all, err := srv.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a_example", all[0].Instance)

	failed, err := srv.List(ctx, &dao.Parameter{Name: dao.ParamFailed, Value: true})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "b_read_on", failed[0].Instance)

	require.NoError(t, srv.Delete(ctx, "2"))
	assert.ErrorIs(t, srv.Delete(ctx, "2"), dao.ErrNotFound)
}
