package services

import (
	"fmt"
	"strings"
)

// patch collects the columns a caller actually supplied, so partial
// updates only touch those columns and inserts only list them.
type patch struct {
	columns []string
	args    []interface{}
}

func (p *patch) set(column string, value interface{}) {
	p.columns = append(p.columns, column)
	p.args = append(p.args, value)
}

func (p *patch) setString(column string, value *string) {
	if value != nil {
		p.set(column, *value)
	}
}

func (p *patch) setInt(column string, value *int) {
	if value != nil {
		p.set(column, *value)
	}
}

func (p *patch) setInt64(column string, value *int64) {
	if value != nil {
		p.set(column, *value)
	}
}

func (p *patch) empty() bool {
	return len(p.columns) == 0
}

// assignments renders "a = $1, b = $2".
func (p *patch) assignments() string {
	parts := make([]string, len(p.columns))
	for i, column := range p.columns {
		parts[i] = fmt.Sprintf("%s = $%d", column, i+1)
	}
	return strings.Join(parts, ", ")
}

// insertClause renders "(a, b) VALUES ($1, $2)".
func (p *patch) insertClause() string {
	placeholders := make([]string, len(p.columns))
	for i := range p.columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("(%s) VALUES (%s)", strings.Join(p.columns, ", "), strings.Join(placeholders, ", "))
}

func (p *patch) has(column string) bool {
	for _, c := range p.columns {
		if c == column {
			return true
		}
	}
	return false
}
