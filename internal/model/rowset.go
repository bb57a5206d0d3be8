package model

// Record is a single row: column name mapped to the scalar value the
// backend returned for it.
type Record map[string]any

// RowSet is the ordered result of one table fetch. Columns holds the
// distinct column names in first-seen order; Records holds the rows in the
// order the backend returned them.
type RowSet struct {
	Columns []string
	Records []Record

	colIndex map[string]int
}

func NewRowSet() *RowSet {
	return &RowSet{colIndex: map[string]int{}}
}

// RegisterColumns records column names that have not been seen yet,
// preserving the order of first appearance.
func (rs *RowSet) RegisterColumns(cols ...string) {
	if rs.colIndex == nil {
		rs.colIndex = map[string]int{}
	}
	for _, col := range cols {
		if _, ok := rs.colIndex[col]; ok {
			continue
		}
		rs.colIndex[col] = len(rs.Columns)
		rs.Columns = append(rs.Columns, col)
	}
}

// Append adds a record. order lists the record's columns as the backend
// emitted them; unseen names extend the column set.
func (rs *RowSet) Append(rec Record, order []string) {
	rs.RegisterColumns(order...)
	rs.Records = append(rs.Records, rec)
}

func (rs *RowSet) RowCount() int {
	return len(rs.Records)
}

func (rs *RowSet) ColumnCount() int {
	return len(rs.Columns)
}

// Rows projects the records onto the column order as positional rows.
// Columns a record lacks come out as nil.
func (rs *RowSet) Rows() [][]any {
	rows := make([][]any, 0, len(rs.Records))
	for _, rec := range rs.Records {
		row := make([]any, len(rs.Columns))
		for i, col := range rs.Columns {
			row[i] = rec[col]
		}
		rows = append(rows, row)
	}
	return rows
}
