package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"dispatch_admin/internal/model"
	"dispatch_admin/internal/repository"
	"dispatch_admin/internal/repository/query"
	"dispatch_admin/internal/testutil"
)

func setupDispatchService(t *testing.T) (*DispatchService, *gorm.DB, testutil.Fixtures) {
	db := testutil.NewDB(t)
	fx := testutil.Seed(t, db)
	return NewDispatchService(db, repository.NewDispatchRepository(db), zerolog.Nop()), db, fx
}

func TestListDispatches_TotalIgnoresPagination(t *testing.T) {
	svc, _, _ := setupDispatchService(t)

	resp, err := svc.ListDispatches(context.Background(), repository.DispatchListParams{
		Order: []query.OrderParam{{Property: "position"}},
		Page:  query.NewPage(0, 2),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(4), resp.Total)
}

func TestListDispatches_Unpaginated(t *testing.T) {
	svc, _, _ := setupDispatchService(t)

	resp, err := svc.ListDispatches(context.Background(), repository.DispatchListParams{Search: "nothing"})
	require.NoError(t, err)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
	assert.Zero(t, resp.Total)
}

func TestListDispatchSummaries(t *testing.T) {
	svc, _, _ := setupDispatchService(t)

	resp, err := svc.ListDispatchSummaries(context.Background(), repository.DispatchListParams{
		Page: query.Page{Limit: intPtr(1)},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, int64(4), resp.Total)
}

func TestListShippingCosts(t *testing.T) {
	svc, _, _ := setupDispatchService(t)

	resp, err := svc.ListShippingCosts(context.Background(), repository.ShippingCostsParams{Search: "standard"})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Len(t, resp.Data[0].Payments, 2)
}

func TestGetShippingCosts(t *testing.T) {
	svc, _, fx := setupDispatchService(t)
	ctx := context.Background()

	d, err := svc.GetShippingCosts(ctx, fx.Standard)
	require.NoError(t, err)
	assert.Equal(t, "Standard Versand", d.Name)
	assert.Len(t, d.Countries, 2)

	_, err = svc.GetShippingCosts(ctx, 404)
	assert.True(t, errors.Is(err, ErrDispatchNotFound))
}

func TestGetCostsMatrix(t *testing.T) {
	svc, _, fx := setupDispatchService(t)
	ctx := context.Background()

	rows, err := svc.GetCostsMatrix(ctx, repository.MatrixParams{DispatchID: &fx.Standard})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 0.0, rows[0].From)

	rows, err = svc.GetCostsMatrix(ctx, repository.MatrixParams{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestPurgeCostsMatrix(t *testing.T) {
	svc, db, fx := setupDispatchService(t)
	ctx := context.Background()

	resp, err := svc.PurgeCostsMatrix(ctx, fx.Standard)
	require.NoError(t, err)
	assert.Equal(t, fx.Standard, resp.DispatchID)
	assert.Equal(t, int64(3), resp.Deleted)

	var count int64
	require.NoError(t, db.Model(&model.ShippingCost{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	for _, id := range []int64{0, -1} {
		_, err = svc.PurgeCostsMatrix(ctx, id)
		assert.True(t, errors.Is(err, ErrInvalidDispatchID))
	}
}

func TestListPayments(t *testing.T) {
	svc, _, _ := setupDispatchService(t)

	resp, err := svc.ListPayments(context.Background(),
		[]query.FilterParam{{Property: repository.FilterUsedIDs, Value: []any{2.0}}},
		[]query.OrderParam{{Property: "name"}},
		query.Page{},
	)
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "paypal", resp.Data[0].Name)
	assert.Equal(t, "prepayment", resp.Data[1].Name)
	assert.Equal(t, int64(2), resp.Total)
}

func TestListCountries(t *testing.T) {
	svc, _, _ := setupDispatchService(t)

	resp, err := svc.ListCountries(context.Background(),
		[]query.FilterParam{{Property: repository.FilterOnlyIDs, Value: []any{1.0, 3.0}}},
		nil,
		query.NewPage(0, 1),
	)
	require.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, int64(2), resp.Total)
}

func TestListHolidays(t *testing.T) {
	svc, _, _ := setupDispatchService(t)

	resp, err := svc.ListHolidays(context.Background(),
		[]query.FilterParam{{Property: repository.FilterUsedIDs, Value: []any{1.0}}},
		nil,
		query.Page{},
	)
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
}

func TestFindDispatchesWithDeletedShops(t *testing.T) {
	svc, db, fx := setupDispatchService(t)
	ctx := context.Background()

	resp, err := svc.FindDispatchesWithDeletedShops(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.False(t, resp.CheckedAt.IsZero())

	shops := map[int64]int64{}
	for _, item := range resp.Items {
		shops[item.ID] = item.MultiShopID
	}
	assert.Equal(t, map[int64]int64{fx.Outlet: fx.OutletShop, fx.Pickup: 99}, shops)

	// 恢复店铺后不再是孤儿
	require.NoError(t, db.Unscoped().Model(&model.Shop{}).Where("id = ?", fx.OutletShop).Update("deleted_at", nil).Error)
	resp, err = svc.FindDispatchesWithDeletedShops(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, fx.Pickup, resp.Items[0].ID)
}

func intPtr(v int) *int { return &v }
