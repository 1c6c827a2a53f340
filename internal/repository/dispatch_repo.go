package repository

import (
	"context"

	"gorm.io/gorm"

	"dispatch_admin/internal/model"
	"dispatch_admin/internal/repository/query"
)

// SentinelDispatchID 不存在的配送规则 ID，用于让运费矩阵查询稳定返回空结果
const SentinelDispatchID int64 = -1

// ==================== 参数定义 ====================

// DispatchListParams 配送规则列表参数
type DispatchListParams struct {
	Search string // 匹配 name / description
	Order  []query.OrderParam
	Page   query.Page
}

// ShippingCostsParams 带关联的配送规则查询参数
// DispatchID 非空时只返回该规则（详情模式）
type ShippingCostsParams struct {
	DispatchID *int64
	Search     string
	Order      []query.OrderParam
	Page       query.Page
}

// MatrixParams 运费矩阵查询参数
// Filter 和 Page 保留在签名中，但不参与查询：矩阵总是整张返回并按 from 升序
type MatrixParams struct {
	DispatchID *int64
	Filter     string
	Page       query.Page
}

// ==================== 实体配置 ====================

var dispatchSortable = query.Sortable(
	"id", "name", "type", "description", "comment", "active", "position",
	"calculation", "multi_shop_id", "created_at",
)

var (
	dispatchEntity = query.Entity{
		Table:      "dispatches",
		Model:      &model.Dispatch{},
		Searchable: []string{"name", "description"},
		Sortable:   dispatchSortable,
		Pagination: query.PaginateBoth,
	}

	dispatchListEntity = query.Entity{
		Table:      "dispatches",
		Model:      &model.Dispatch{},
		Searchable: []string{"name", "description"},
		Sortable:   dispatchSortable,
		Pagination: query.PaginateEach,
	}

	shippingCostsEntity = query.Entity{
		Table:      "dispatches",
		Model:      &model.Dispatch{},
		Searchable: []string{"name", "description"},
		Sortable:   dispatchSortable,
		Joins: []query.Join{
			{Kind: query.JoinPreload, Relation: "Countries"},
			{Kind: query.JoinPreload, Relation: "Categories"},
			{Kind: query.JoinPreload, Relation: "Holidays"},
			{Kind: query.JoinInline, Relation: "Attribute"},
			{Kind: query.JoinPreload, Relation: "Payments"},
		},
		Pagination: query.PaginateEach,
	}

	matrixEntity = query.Entity{
		Table:      "shipping_costs",
		Model:      &model.ShippingCost{},
		FixedOrder: []query.OrderClause{{Column: "from"}},
		Pagination: query.PaginateNone,
	}

	paymentEntity = query.Entity{
		Table: "payments",
		Model: &model.Payment{},
		Sortable: query.Sortable(
			"id", "name", "description", "position", "active", "debit_percent", "surcharge",
		),
		Pagination: query.PaginateBoth,
	}

	countryEntity = query.Entity{
		Table: "countries",
		Model: &model.Country{},
		Sortable: query.Sortable("id", "name", "iso", "iso3", "area_id", "position", "active"),
		Pagination: query.PaginateBoth,
	}

	holidayEntity = query.Entity{
		Table: "holidays",
		Model: &model.Holiday{},
		Sortable: query.Sortable("id", "name", "calculation", "date"),
		Pagination: query.PaginateBoth,
	}

	orphanedDispatchEntity = query.Entity{
		Table: "dispatches",
		Model: &model.Dispatch{},
		Joins: []query.Join{{
			Kind: query.JoinRaw,
			SQL:  "LEFT JOIN shops AS shop ON dispatches.multi_shop_id = shop.id AND shop.deleted_at IS NULL",
		}},
		Fixed: []query.Predicate{
			{SQL: "dispatches.multi_shop_id IS NOT NULL"},
			{SQL: "shop.id IS NULL"},
		},
		Pagination: query.PaginateNone,
	}
)

// ==================== 接口定义 ====================

// DispatchRepository 配送规则仓储接口
// 除 PurgeShippingCostsMatrix 外，所有方法只构造查询描述符，不访问数据库
type DispatchRepository interface {
	// 配送规则
	DispatchesQuery(params DispatchListParams) query.Descriptor
	ListQuery(params DispatchListParams) query.Descriptor
	ShippingCostsQuery(params ShippingCostsParams) query.Descriptor
	DispatchWithDeletedShopsQuery() query.Descriptor

	// 运费矩阵
	ShippingCostsMatrixQuery(params MatrixParams) query.Descriptor
	PurgeShippingCostsMatrix(ctx context.Context, dispatchID int64) (int64, error)

	// 基础数据（包含未启用的记录）
	PaymentQuery(filter PaymentFilter, order []query.OrderParam, page query.Page) query.Descriptor
	CountryQuery(filter CountryFilter, order []query.OrderParam, page query.Page) query.Descriptor
	HolidayQuery(filter HolidayFilter, order []query.OrderParam, page query.Page) query.Descriptor
}

// ==================== 实现 ====================

type dispatchRepo struct {
	db *gorm.DB
}

// NewDispatchRepository 创建配送规则仓储
func NewDispatchRepository(db *gorm.DB) DispatchRepository {
	return &dispatchRepo{db: db}
}

func (r *dispatchRepo) DispatchesQuery(params DispatchListParams) query.Descriptor {
	return query.Build(dispatchEntity, query.Options{
		Search: params.Search,
		Order:  params.Order,
		Page:   params.Page,
	})
}

func (r *dispatchRepo) ListQuery(params DispatchListParams) query.Descriptor {
	return query.Build(dispatchListEntity, query.Options{
		Search: params.Search,
		Order:  params.Order,
		Page:   params.Page,
	})
}

func (r *dispatchRepo) ShippingCostsQuery(params ShippingCostsParams) query.Descriptor {
	var preds []query.Predicate
	if params.DispatchID != nil {
		preds = append(preds, query.Predicate{SQL: "dispatches.id = ?", Args: []any{*params.DispatchID}})
	}
	return query.Build(shippingCostsEntity, query.Options{
		Search:     params.Search,
		Predicates: preds,
		Order:      params.Order,
		Page:       params.Page,
	})
}

func (r *dispatchRepo) ShippingCostsMatrixQuery(params MatrixParams) query.Descriptor {
	dispatchID := SentinelDispatchID
	if params.DispatchID != nil && *params.DispatchID != 0 {
		dispatchID = *params.DispatchID
	}
	return query.Build(matrixEntity, query.Options{
		Predicates: []query.Predicate{{SQL: "shipping_costs.dispatch_id = ?", Args: []any{dispatchID}}},
	})
}

// PurgeShippingCostsMatrix 物理删除某配送规则的全部运费阶梯，立即执行
func (r *dispatchRepo) PurgeShippingCostsMatrix(ctx context.Context, dispatchID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("dispatch_id = ?", dispatchID).
		Delete(&model.ShippingCost{})
	return result.RowsAffected, result.Error
}

func (r *dispatchRepo) PaymentQuery(filter PaymentFilter, order []query.OrderParam, page query.Page) query.Descriptor {
	return query.Build(paymentEntity, query.Options{
		Predicates: notInIDs(paymentEntity.Table, filter.ExcludeIDs),
		Order:      order,
		Page:       page,
	})
}

func (r *dispatchRepo) CountryQuery(filter CountryFilter, order []query.OrderParam, page query.Page) query.Descriptor {
	preds := notInIDs(countryEntity.Table, filter.ExcludeIDs)
	preds = append(preds, inIDs(countryEntity.Table, filter.IncludeIDs)...)
	return query.Build(countryEntity, query.Options{
		Predicates: preds,
		Order:      order,
		Page:       page,
	})
}

// HolidayQuery 节假日查询
// TODO: filter.ExcludeIDs 待确认是否应生效为 NOT IN，确认前保持不过滤
func (r *dispatchRepo) HolidayQuery(filter HolidayFilter, order []query.OrderParam, page query.Page) query.Descriptor {
	return query.Build(holidayEntity, query.Options{
		Order: order,
		Page:  page,
	})
}

// DispatchWithDeletedShopsQuery 限定了子店铺、但该店铺已不存在的配送规则
func (r *dispatchRepo) DispatchWithDeletedShopsQuery() query.Descriptor {
	return query.Build(orphanedDispatchEntity, query.Options{})
}
