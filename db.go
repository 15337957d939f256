package benchplot

import (
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// LoadTableFromDB reads benchmark rows from a MySQL table holding the
// same columns as the CSV. Rows come back ordered by size, the order the
// benchmark writes them in.
func LoadTableFromDB(dsn, tableName string) (BenchTable, error) {
	if _, err := mysql.ParseDSN(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := fmt.Sprintf("SELECT size, seq_time, par_time, speedup FROM %s ORDER BY size", tableName)
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res BenchTable
	for rows.Next() {
		var r BenchRow
		if err := rows.Scan(&r.Size, &r.SeqTime, &r.ParTime, &r.Speedup); err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, rows.Err()
}
