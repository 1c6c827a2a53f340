package query

import (
	"database/sql"
	"strings"
)

// Pagination 分页策略
type Pagination int

const (
	// PaginateBoth offset 和 limit 同时提供才分页
	PaginateBoth Pagination = iota
	// PaginateEach offset、limit 各自独立生效，0 视为未提供
	PaginateEach
	// PaginateNone 忽略调用方分页
	PaginateNone
)

// searchParam 全文过滤使用的命名参数
const searchParam = "search"

// Entity 单个实体的查询配置
type Entity struct {
	Table      string
	Model      any
	Searchable []string          // 参与模糊搜索的列
	Sortable   map[string]string // 排序属性 -> 列名
	Joins      []Join
	Fixed      []Predicate   // 固定条件
	FixedOrder []OrderClause // 非空时忽略调用方排序
	Pagination Pagination
}

// Options 一次查询的可选参数，空值一律视为未设置
type Options struct {
	Search     string
	Predicates []Predicate
	Order      []OrderParam
	Page       Page
}

// Build 按实体配置构造查询描述符
func Build(e Entity, opts Options) Descriptor {
	d := Descriptor{
		Entity: e.Table,
		Model:  e.Model,
		Joins:  append([]Join(nil), e.Joins...),
	}

	d.Predicates = append(d.Predicates, e.Fixed...)
	if p, ok := searchPredicate(e.Table, e.Searchable, opts.Search); ok {
		d.Predicates = append(d.Predicates, p)
	}
	d.Predicates = append(d.Predicates, opts.Predicates...)

	if len(e.FixedOrder) > 0 {
		d.Order = append([]OrderClause(nil), e.FixedOrder...)
	} else {
		d.Order = orderClauses(e.Sortable, opts.Order)
	}

	d.Offset, d.Limit = paginate(e.Pagination, opts.Page)
	return d
}

// searchPredicate 多列 OR 的大小写不敏感包含匹配，所有列共用一个绑定参数
func searchPredicate(table string, columns []string, search string) (Predicate, bool) {
	if search == "" || len(columns) == 0 {
		return Predicate{}, false
	}

	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, "LOWER("+table+"."+col+") LIKE @"+searchParam+` ESCAPE '\'`)
	}

	return Predicate{
		SQL:  "(" + strings.Join(parts, " OR ") + ")",
		Args: []any{sql.Named(searchParam, "%"+escapeLike(strings.ToLower(search))+"%")},
	}, true
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Sortable 由列名生成排序白名单
// 同时接受列名和驼峰属性名，如 multi_shop_id 与 multiShopId
func Sortable(columns ...string) map[string]string {
	m := make(map[string]string, len(columns)*2)
	for _, col := range columns {
		m[col] = col
		m[camelCase(col)] = col
	}
	return m
}

func camelCase(col string) string {
	parts := strings.Split(col, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]) + p[1:])
	}
	return b.String()
}

// orderClauses 按列表顺序生成排序，未知或缺失 property 直接跳过
func orderClauses(sortable map[string]string, params []OrderParam) []OrderClause {
	if len(params) == 0 {
		return nil
	}

	clauses := make([]OrderClause, 0, len(params))
	for _, p := range params {
		if p.Property == "" {
			continue
		}
		col, ok := sortable[p.Property]
		if !ok {
			continue
		}
		clauses = append(clauses, OrderClause{
			Column: col,
			Desc:   strings.EqualFold(strings.TrimSpace(p.Direction), "DESC"),
		})
	}
	return clauses
}

func paginate(policy Pagination, page Page) (offset, limit *int) {
	switch policy {
	case PaginateBoth:
		if page.Offset != nil && page.Limit != nil {
			o, l := *page.Offset, *page.Limit
			return &o, &l
		}
	case PaginateEach:
		if page.Offset != nil && *page.Offset != 0 {
			o := *page.Offset
			offset = &o
		}
		if page.Limit != nil && *page.Limit != 0 {
			l := *page.Limit
			limit = &l
		}
	}
	return offset, limit
}
