package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"dispatch_admin/internal/api/dto"
	"dispatch_admin/internal/model"
	"dispatch_admin/internal/repository"
	"dispatch_admin/internal/repository/query"
)

var (
	ErrDispatchNotFound  = errors.New("dispatch not found")
	ErrInvalidDispatchID = errors.New("invalid dispatch id")
)

// DispatchService 配送规则管理服务
// 查询由仓储构造描述符，这里负责执行
type DispatchService struct {
	DB           *gorm.DB
	DispatchRepo repository.DispatchRepository
	log          zerolog.Logger
}

func NewDispatchService(db *gorm.DB, dispatchRepo repository.DispatchRepository, log zerolog.Logger) *DispatchService {
	return &DispatchService{
		DB:           db,
		DispatchRepo: dispatchRepo,
		log:          log.With().Str("component", "dispatch_service").Logger(),
	}
}

// ==================== 配送规则 ====================

// ListDispatches 配送规则列表
func (s *DispatchService) ListDispatches(ctx context.Context, params repository.DispatchListParams) (*dto.ListResp[model.Dispatch], error) {
	return findWithTotal[model.Dispatch](ctx, s.DB, s.DispatchRepo.DispatchesQuery(params))
}

// ListDispatchSummaries 配送规则基础信息列表
func (s *DispatchService) ListDispatchSummaries(ctx context.Context, params repository.DispatchListParams) (*dto.ListResp[model.Dispatch], error) {
	return findWithTotal[model.Dispatch](ctx, s.DB, s.DispatchRepo.ListQuery(params))
}

// ListShippingCosts 带国家/分类/节假日/支付方式/扩展属性的配送规则列表
func (s *DispatchService) ListShippingCosts(ctx context.Context, params repository.ShippingCostsParams) (*dto.ListResp[model.Dispatch], error) {
	return findWithTotal[model.Dispatch](ctx, s.DB, s.DispatchRepo.ShippingCostsQuery(params))
}

// GetShippingCosts 单个配送规则详情（含全部关联）
func (s *DispatchService) GetShippingCosts(ctx context.Context, dispatchID int64) (*model.Dispatch, error) {
	d := s.DispatchRepo.ShippingCostsQuery(repository.ShippingCostsParams{DispatchID: &dispatchID})
	dispatch, err := query.First[model.Dispatch](ctx, s.DB, d)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDispatchNotFound
	}
	if err != nil {
		return nil, err
	}
	return dispatch, nil
}

// FindDispatchesWithDeletedShops 限定店铺已被删除的配送规则
func (s *DispatchService) FindDispatchesWithDeletedShops(ctx context.Context) (*dto.OrphanReportResp, error) {
	list, err := query.Find[model.Dispatch](ctx, s.DB, s.DispatchRepo.DispatchWithDeletedShopsQuery())
	if err != nil {
		return nil, err
	}

	resp := &dto.OrphanReportResp{
		Count:     len(list),
		Items:     make([]dto.OrphanDispatchItem, 0, len(list)),
		CheckedAt: time.Now(),
	}
	for _, d := range list {
		item := dto.OrphanDispatchItem{ID: d.ID, Name: d.Name}
		if d.MultiShopID != nil {
			item.MultiShopID = *d.MultiShopID
		}
		resp.Items = append(resp.Items, item)
	}
	return resp, nil
}

// ==================== 运费矩阵 ====================

// GetCostsMatrix 运费矩阵，按 from 升序；未指定规则时返回空列表
func (s *DispatchService) GetCostsMatrix(ctx context.Context, params repository.MatrixParams) ([]model.ShippingCost, error) {
	return query.Find[model.ShippingCost](ctx, s.DB, s.DispatchRepo.ShippingCostsMatrixQuery(params))
}

// PurgeCostsMatrix 清空运费矩阵，返回删除行数
func (s *DispatchService) PurgeCostsMatrix(ctx context.Context, dispatchID int64) (*dto.PurgeResp, error) {
	if dispatchID <= 0 {
		return nil, ErrInvalidDispatchID
	}

	deleted, err := s.DispatchRepo.PurgeShippingCostsMatrix(ctx, dispatchID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("dispatch_id", dispatchID).Int64("deleted", deleted).Msg("[Matrix] 运费矩阵已清空")
	return &dto.PurgeResp{DispatchID: dispatchID, Deleted: deleted}, nil
}

// ==================== 基础数据 ====================

// ListPayments 支付方式列表（包含未启用）
func (s *DispatchService) ListPayments(ctx context.Context, filters []query.FilterParam, order []query.OrderParam, page query.Page) (*dto.ListResp[model.Payment], error) {
	d := s.DispatchRepo.PaymentQuery(repository.NewPaymentFilter(filters), order, page)
	return findWithTotal[model.Payment](ctx, s.DB, d)
}

// ListCountries 国家列表（包含未启用）
func (s *DispatchService) ListCountries(ctx context.Context, filters []query.FilterParam, order []query.OrderParam, page query.Page) (*dto.ListResp[model.Country], error) {
	d := s.DispatchRepo.CountryQuery(repository.NewCountryFilter(filters), order, page)
	return findWithTotal[model.Country](ctx, s.DB, d)
}

// ListHolidays 节假日列表
func (s *DispatchService) ListHolidays(ctx context.Context, filters []query.FilterParam, order []query.OrderParam, page query.Page) (*dto.ListResp[model.Holiday], error) {
	filter := repository.NewHolidayFilter(filters)
	if len(filter.ExcludeIDs) > 0 {
		s.log.Debug().Ints64("used_ids", filter.ExcludeIDs).Msg("[Holiday] usedIds 过滤当前不生效")
	}
	d := s.DispatchRepo.HolidayQuery(filter, order, page)
	return findWithTotal[model.Holiday](ctx, s.DB, d)
}

// ==================== 工具函数 ====================

// findWithTotal 查询数据；带分页时额外统计总数，否则总数即结果条数
func findWithTotal[T any](ctx context.Context, db *gorm.DB, d query.Descriptor) (*dto.ListResp[T], error) {
	list, err := query.Find[T](ctx, db, d)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", d.Entity, err)
	}

	total := int64(len(list))
	if d.Paginated() {
		total, err = query.Count(ctx, db, d)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", d.Entity, err)
		}
	}

	if list == nil {
		list = []T{}
	}
	return &dto.ListResp[T]{Data: list, Total: total}, nil
}
