package query

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JoinKind 关联加载方式
type JoinKind int

const (
	// JoinPreload 一对多/多对多关联，随主记录一起加载
	JoinPreload JoinKind = iota
	// JoinInline 一对一关联，LEFT JOIN 到主查询
	JoinInline
	// JoinRaw 显式 LEFT JOIN 子句
	JoinRaw
)

// Join 关联描述
type Join struct {
	Kind     JoinKind
	Relation string // gorm 关联名，如 "Countries"
	SQL      string // 仅 JoinRaw 使用
	Args     []any
}

// Predicate 一个 AND 条件
type Predicate struct {
	SQL  string
	Args []any
}

// OrderClause 一个 ORDER BY 字段
type OrderClause struct {
	Column string
	Desc   bool
}

// Descriptor 查询描述符
// 构造过程不做任何 I/O，由 Apply/Find/Count 交给 gorm 执行，可重复执行
type Descriptor struct {
	Entity     string // 表名
	Model      any    // 模型原型，如 &model.Dispatch{}
	Joins      []Join
	Predicates []Predicate
	Order      []OrderClause
	Offset     *int
	Limit      *int
}

// Apply 将描述符翻译为 gorm 查询链
func (d Descriptor) Apply(db *gorm.DB) *gorm.DB {
	tx := db.Model(d.Model)

	for _, j := range d.Joins {
		switch j.Kind {
		case JoinPreload:
			tx = tx.Preload(j.Relation)
		case JoinInline:
			tx = tx.Joins(j.Relation)
		case JoinRaw:
			tx = tx.Joins(j.SQL, j.Args...)
		}
	}

	for _, p := range d.Predicates {
		tx = tx.Where(p.SQL, p.Args...)
	}

	for _, o := range d.Order {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Table: d.Entity, Name: o.Column},
			Desc:   o.Desc,
		})
	}

	if d.Offset != nil {
		tx = tx.Offset(*d.Offset)
	}
	if d.Limit != nil {
		tx = tx.Limit(*d.Limit)
	}
	return tx
}

// ForCount 返回用于统计总数的描述符
// 去掉预加载、一对一 JOIN、排序和分页，这些都不改变行数
func (d Descriptor) ForCount() Descriptor {
	c := Descriptor{
		Entity:     d.Entity,
		Model:      d.Model,
		Predicates: append([]Predicate(nil), d.Predicates...),
	}
	for _, j := range d.Joins {
		if j.Kind == JoinRaw {
			c.Joins = append(c.Joins, j)
		}
	}
	return c
}

// Paginated 是否带分页
func (d Descriptor) Paginated() bool {
	return d.Offset != nil || d.Limit != nil
}
