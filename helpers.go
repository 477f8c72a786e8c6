package rsmapper

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// formatValue renders a decoded driver value the way the conversion layouts expect it.
// Times are rendered in UTC, the zone the layouts are parsed in. ok is false for NULL.
func formatValue(v any) (s string, ok bool, err error) {
	switch val := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return val, true, nil
	case []byte:
		return string(val), true, nil
	case time.Time:
		return val.UTC().Format(TimestampLayout), true, nil
	case bool:
		return strconv.FormatBool(val), true, nil
	case int:
		return strconv.Itoa(val), true, nil
	case int8:
		return strconv.FormatInt(int64(val), 10), true, nil
	case int16:
		return strconv.FormatInt(int64(val), 10), true, nil
	case int32:
		return strconv.FormatInt(int64(val), 10), true, nil
	case int64:
		return strconv.FormatInt(val, 10), true, nil
	case uint8:
		return strconv.FormatUint(uint64(val), 10), true, nil
	case uint16:
		return strconv.FormatUint(uint64(val), 10), true, nil
	case uint32:
		return strconv.FormatUint(uint64(val), 10), true, nil
	case uint64:
		return strconv.FormatUint(val, 10), true, nil
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true, nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true, nil
	case [16]byte:
		return formatValue(pgtype.UUID{Bytes: val, Valid: true})
	case map[string]any, []any:
		// pgx decodes json, jsonb and arrays into these.
		b, err := json.Marshal(val)
		if err != nil {
			return "", false, err
		}
		return string(b), true, nil
	case pgtype.Time:
		if !val.Valid {
			return "", false, nil
		}
		t := time.Unix(0, 0).UTC().Add(time.Duration(val.Microseconds) * time.Microsecond)
		return t.Format("15:04:05.999999"), true, nil
	case driver.Valuer:
		dv, err := val.Value()
		if err != nil {
			return "", false, err
		}
		if _, nested := dv.(driver.Valuer); nested {
			return fmt.Sprint(dv), true, nil
		}
		return formatValue(dv)
	}
	return fmt.Sprint(v), true, nil
}
