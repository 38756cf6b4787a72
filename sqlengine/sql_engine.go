package sqlengine

import (
	"database/sql"
)

type SQLEngine interface {
	Open(address string, port int64, dbname string, username string, password string) error
	Close() error
	Execute(query string) ([][]interface{}, error)
	URI(address string, port int64, dbname string, username string, password string) string
	JDBCURI(address string, port int64, dbname string, username string, password string) string
}

func scanRows(rows *sql.Rows) ([][]interface{}, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := [][]interface{}{}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}
		result = append(result, values)
	}

	return result, rows.Err()
}
