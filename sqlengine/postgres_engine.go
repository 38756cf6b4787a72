package sqlengine

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL Driver

	"code.cloudfoundry.org/lager/v3"
)

type PostgresEngine struct {
	logger lager.Logger
	db     *sql.DB
}

func NewPostgresEngine(logger lager.Logger) *PostgresEngine {
	return &PostgresEngine{
		logger: logger.Session("postgres-engine"),
	}
}

func (d *PostgresEngine) Open(address string, port int64, dbname string, username string, password string) error {
	connectionString := d.connectionString(address, port, dbname, username, password)
	d.logger.Debug("sql-open", lager.Data{"address": address, "port": port, "dbname": dbname})

	db, err := sql.Open("postgres", connectionString)
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

func (d *PostgresEngine) Close() error {
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

func (d *PostgresEngine) Execute(query string) ([][]interface{}, error) {
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

func (d *PostgresEngine) URI(address string, port int64, dbname string, username string, password string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s", username, password, address, port, dbname)
}

func (d *PostgresEngine) JDBCURI(address string, port int64, dbname string, username string, password string) string {
	return fmt.Sprintf("jdbc:postgresql://%s:%d/%s?user=%s&password=%s", address, port, dbname, username, password)
}

func (d *PostgresEngine) connectionString(address string, port int64, dbname string, username string, password string) string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s", address, port, dbname, username, password)
}
