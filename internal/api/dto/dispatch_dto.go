package dto

import (
	"strings"
	"time"

	"dispatch_admin/internal/repository/query"
)

// ================== 通用列表请求 ==================

// ListQueryReq 管理后台列表请求
// filter: 模糊搜索文本，或 JSON 形式的 [{"property":"usedIds","value":[1,2]}]
// sort:   JSON 形式的 [{"property":"name","direction":"DESC"}]
// start/limit: 分页，未提供时不分页
type ListQueryReq struct {
	Filter string `form:"filter"`
	Sort   string `form:"sort"`
	Start  *int   `form:"start" binding:"omitempty,min=0"`
	Limit  *int   `form:"limit" binding:"omitempty,min=0"`
}

// OrderParams 解析排序参数
func (r ListQueryReq) OrderParams() ([]query.OrderParam, error) {
	return query.ParseOrderParams(r.Sort)
}

// FilterParams 解析结构化过滤参数
func (r ListQueryReq) FilterParams() ([]query.FilterParam, error) {
	return query.ParseFilterParams(r.Filter)
}

// SearchText 模糊搜索文本
// filter 为 JSON 列表时取 property=search 的值，否则整体作为搜索文本
func (r ListQueryReq) SearchText() string {
	if !strings.HasPrefix(strings.TrimSpace(r.Filter), "[") {
		return strings.TrimSpace(r.Filter)
	}
	params, err := r.FilterParams()
	if err != nil {
		return strings.TrimSpace(r.Filter)
	}
	search, _ := query.ReduceFilters(params)["search"].(string)
	return strings.TrimSpace(search)
}

// Page 分页参数
func (r ListQueryReq) Page() query.Page {
	return query.Page{Offset: r.Start, Limit: r.Limit}
}

// MatrixReq 运费矩阵请求
// filter/start/limit 可以传，但矩阵总是整张返回
type MatrixReq struct {
	Filter string `form:"filter"`
	Start  *int   `form:"start"`
	Limit  *int   `form:"limit"`
}

// ================== 响应 ==================

// ListResp 列表响应
type ListResp[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
}

// PurgeResp 清空运费矩阵响应
type PurgeResp struct {
	DispatchID int64 `json:"dispatch_id"`
	Deleted    int64 `json:"deleted"`
}

// OrphanDispatchItem 店铺已被删除的配送规则
type OrphanDispatchItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	MultiShopID int64  `json:"multi_shop_id"`
}

// OrphanReportResp 数据完整性报告
type OrphanReportResp struct {
	Count     int                  `json:"count"`
	Items     []OrphanDispatchItem `json:"items"`
	CheckedAt time.Time            `json:"checked_at"`
}
