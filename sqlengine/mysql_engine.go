package sqlengine

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // MySQL Driver

	"code.cloudfoundry.org/lager/v3"
)

type MySQLEngine struct {
	logger lager.Logger
	db     *sql.DB
}

func NewMySQLEngine(logger lager.Logger) *MySQLEngine {
	return &MySQLEngine{
		logger: logger.Session("mysql-engine"),
	}
}

func (d *MySQLEngine) Open(address string, port int64, dbname string, username string, password string) error {
	connectionString := d.connectionString(address, port, dbname, username, password)
	d.logger.Debug("sql-open", lager.Data{"address": address, "port": port, "dbname": dbname})

	db, err := sql.Open("mysql", connectionString)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		d.logger.Error("sql-error", err)
		db.Close()
		return err
	}

	d.db = db

	return nil
}

func (d *MySQLEngine) Close() error {
	if d.db == nil {
		return nil
	}

	if err := d.db.Close(); err != nil {
		d.logger.Error("sql-error", err)
		return err
	}

	d.logger.Debug("sql-close")

	return nil
}

// Execute runs a single complete statement in its own transaction and
// returns every row of the result set. A statement producing no rows
// yields an empty set, not an error.
func (d *MySQLEngine) Execute(query string) ([][]interface{}, error) {
	d.logger.Debug("sql-execute", lager.Data{"query": query})

	tx, err := d.db.Begin()
	if err != nil {
		d.logger.Error("sql-error", err)
		return nil, err
	}

	rows, err := tx.Query(query)
	if err != nil {
		d.logger.Error("sql-error", err)
		tx.Rollback()
		return nil, err
	}

	result, err := scanRows(rows)
	rows.Close()
	if err != nil {
		d.logger.Error("sql-error", err)
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		d.logger.Error("sql-error", err)
		return nil, err
	}

	return result, nil
}

func (d *MySQLEngine) URI(address string, port int64, dbname string, username string, password string) string {
	return fmt.Sprintf("mysql://%s:%s@%s:%d/%s?reconnect=true", username, password, address, port, dbname)
}

func (d *MySQLEngine) JDBCURI(address string, port int64, dbname string, username string, password string) string {
	return fmt.Sprintf("jdbc:mysql://%s:%d/%s?user=%s&password=%s", address, port, dbname, username, password)
}

func (d *MySQLEngine) connectionString(address string, port int64, dbname string, username string, password string) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", username, password, address, port, dbname)
}
