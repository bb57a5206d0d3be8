package model

type TableResponse struct {
	Columns     []string `json:"columns"`
	Rows        [][]any  `json:"rows"`
	RowCount    int      `json:"row_count"`
	ColumnCount int      `json:"column_count"`
}
