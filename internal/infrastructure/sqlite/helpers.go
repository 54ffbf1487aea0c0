package sqlite

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pyme-api/internal/domain/entity"
)

// Fechas en TEXT ISO-8601 (RFC 3339). La conversión se aplica a cada campo
// de fecha de cada entidad, incluidas las fechas de validez/entrega anidadas.

func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

func fmtTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return fmtTime(*t)
}

func parseTimePtr(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	t := parseTime(ns.String)
	return &t
}

// Montos decimales en TEXT. Un valor ilegible degrada a cero, no a error.

func fmtDec(d decimal.Decimal) string {
	return d.String()
}

func parseDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Líneas de documento como JSON en columna TEXT. JSON ilegible degrada a
// lista vacía, no a error.

func marshalItems(items []entity.LineItem) string {
	if items == nil {
		items = []entity.LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func unmarshalItems(s string) []entity.LineItem {
	var items []entity.LineItem
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return []entity.LineItem{}
	}
	if items == nil {
		items = []entity.LineItem{}
	}
	return items
}

func marshalPermissions(p entity.Permissions) string {
	data, err := json.Marshal(p)
	if err != nil {
		return "{}"
	}
	return string(data)
}

func unmarshalPermissions(s string) entity.Permissions {
	var p entity.Permissions
	_ = json.Unmarshal([]byte(s), &p)
	return p
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullableInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func intPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	n := int(ni.Int64)
	return &n
}
