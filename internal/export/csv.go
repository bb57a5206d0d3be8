package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ak-pc/Dextro/internal/model"
)

// MarshalCSV serializes a row set as comma-separated text: one header line
// of column names, then one line per record. Nil values become empty
// fields.
func MarshalCSV(rs *model.RowSet) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(rs.Columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, rec := range rs.Records {
		row := make([]string, len(rs.Columns))
		for i, col := range rs.Columns {
			row[i] = formatValue(rec[col])
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// ParseCSV parses MarshalCSV output back into a row set. All values come
// back as strings; nulls are indistinguishable from empty strings, which
// is inherent to the format.
func ParseCSV(data []byte) (*model.RowSet, error) {
	r := csv.NewReader(bytes.NewReader(data))

	headers, err := r.Read()
	if err == io.EOF {
		return model.NewRowSet(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	rs := model.NewRowSet()
	rs.RegisterColumns(headers...)

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		rec := model.Record{}
		for i, h := range headers {
			if i < len(row) {
				rec[h] = row[i]
			}
		}
		rs.Append(rec, headers)
	}

	return rs, nil
}

// FormatValue renders a scalar for a CSV field or an HTML table cell.
func FormatValue(v any) string {
	return formatValue(v)
}

func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	case []byte:
		return string(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", t)
	}
}
