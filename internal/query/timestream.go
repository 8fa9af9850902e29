package query

import (
	"strings"
)

// Timestream renders s as Timestream SQL.
func (s Statement) Timestream() string {
	var b strings.Builder

	b.WriteString("SELECT ")
	if s.Columns == nil {
		b.WriteString("*")
	} else {
		for i, c := range s.Columns {
			if i > 0 {
				b.WriteString(", ")
			}
			if c.Expr != "" {
				b.WriteString(c.Expr)
				b.WriteString(" AS ")
			}
			b.WriteString(c.Name)
		}
	}

	b.WriteString("\nFROM ")
	b.WriteString(quoteIdent(s.Source.Database))
	b.WriteString(".")
	b.WriteString(quoteIdent(s.Source.Table))

	b.WriteString("\nWHERE ")
	switch s.Match {
	case MatchOne:
		b.WriteString("id = ")
		b.WriteString(quoteLiteral(string(s.Devices[0])))
		b.WriteString("\nAND ")
	case MatchAny:
		b.WriteString("id IN (")
		for i, id := range s.Devices {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(quoteLiteral(string(id)))
		}
		b.WriteString(")\nAND ")
	}
	b.WriteString("time >= ago(")
	b.WriteString(s.Window.String())
	b.WriteString(")")

	if s.NewestFirst {
		b.WriteString("\nORDER BY time DESC")
	}
	return b.String()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteLiteral(v string) string {
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}
