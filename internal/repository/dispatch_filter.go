package repository

import (
	"dispatch_admin/internal/repository/query"
)

// 过滤列表中可识别的 property
const (
	FilterUsedIDs = "usedIds" // 排除的 id
	FilterOnlyIDs = "onlyIds" // 限定的 id
)

// PaymentFilter 支付方式过滤条件
type PaymentFilter struct {
	ExcludeIDs []int64
}

// CountryFilter 国家过滤条件，两个条件同时存在时取交集
type CountryFilter struct {
	ExcludeIDs []int64
	IncludeIDs []int64
}

// HolidayFilter 节假日过滤条件
// ExcludeIDs 会被解析，但目前不参与查询
type HolidayFilter struct {
	ExcludeIDs []int64
}

// NewPaymentFilter 从 {property, value} 列表构造，未知 property 忽略
func NewPaymentFilter(params []query.FilterParam) PaymentFilter {
	filters := query.ReduceFilters(params)
	return PaymentFilter{
		ExcludeIDs: query.Int64s(filters[FilterUsedIDs]),
	}
}

// NewCountryFilter 从 {property, value} 列表构造，未知 property 忽略
func NewCountryFilter(params []query.FilterParam) CountryFilter {
	filters := query.ReduceFilters(params)
	return CountryFilter{
		ExcludeIDs: query.Int64s(filters[FilterUsedIDs]),
		IncludeIDs: query.Int64s(filters[FilterOnlyIDs]),
	}
}

// NewHolidayFilter 从 {property, value} 列表构造，未知 property 忽略
func NewHolidayFilter(params []query.FilterParam) HolidayFilter {
	filters := query.ReduceFilters(params)
	return HolidayFilter{
		ExcludeIDs: query.Int64s(filters[FilterUsedIDs]),
	}
}

func notInIDs(table string, ids []int64) []query.Predicate {
	if len(ids) == 0 {
		return nil
	}
	return []query.Predicate{{SQL: table + ".id NOT IN ?", Args: []any{ids}}}
}

func inIDs(table string, ids []int64) []query.Predicate {
	if len(ids) == 0 {
		return nil
	}
	return []query.Predicate{{SQL: table + ".id IN ?", Args: []any{ids}}}
}
