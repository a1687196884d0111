package persistence

import (
	"context"
	"reflect"

	"github.com/stonetrade/backend/internal/domain/costing"
	"gorm.io/gorm"
)

// RecalculationObserver is told how many records of a table were recalculated by one statement.
type RecalculationObserver func(ctx context.Context, table string, count int)

// RecalculationPlugin recomputes derived fields of every costing.Recalculable
// value right before GORM writes it, on create and on update alike.
type RecalculationPlugin struct {
	calc     *costing.Calculator
	observer RecalculationObserver
}

// NewRecalculationPlugin creates the plugin. A nil calculator uses costing.Default().
func NewRecalculationPlugin(calc *costing.Calculator, observer RecalculationObserver) *RecalculationPlugin {
	if calc == nil {
		calc = costing.Default()
	}
	return &RecalculationPlugin{calc: calc, observer: observer}
}

// Name implements gorm.Plugin
func (p *RecalculationPlugin) Name() string {
	return "stonetrade:recalculation"
}

// Initialize implements gorm.Plugin
func (p *RecalculationPlugin) Initialize(db *gorm.DB) error {
	if err := db.Callback().Create().Before("gorm:create").
		Register("stonetrade:recalculate_before_create", p.recalculate); err != nil {
		return err
	}
	return db.Callback().Update().Before("gorm:update").
		Register("stonetrade:recalculate_before_update", p.recalculate)
}

func (p *RecalculationPlugin) recalculate(db *gorm.DB) {
	if db.Error != nil || db.Statement == nil {
		return
	}

	count := 0
	rv := db.Statement.ReflectValue
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if p.apply(rv.Index(i)) {
				count++
			}
		}
	case reflect.Struct, reflect.Ptr, reflect.Interface:
		if p.apply(rv) {
			count++
		}
	}

	if count > 0 && p.observer != nil {
		table := db.Statement.Table
		if table == "" && db.Statement.Schema != nil {
			table = db.Statement.Schema.Table
		}
		p.observer(db.Statement.Context, table, count)
	}
}

func (p *RecalculationPlugin) apply(v reflect.Value) bool {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	if !v.CanAddr() {
		return false
	}
	r, ok := v.Addr().Interface().(costing.Recalculable)
	if !ok {
		return false
	}
	r.Recalculate(p.calc)
	return true
}
