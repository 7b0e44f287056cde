package database

import (
	"database/sql"
	"log"
	"time"

	_ "modernc.org/sqlite" // pure Go driver, no cgo on the Pi

	"BinDay/internal/models"
)

// DBRepository wraps the run-journal database. The journal is written after
// each pipeline invocation and read by the API server and the `latest` task;
// the pipeline itself never consults it.
type DBRepository struct {
	DB *sql.DB
}

// InitDB opens (creating if needed) the run journal.
func InitDB(filepath string) *DBRepository {
	db, err := sql.Open("sqlite", filepath)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	if err = db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	createRunsTableSQL := `
	CREATE TABLE IF NOT EXISTS runs (
		"id" INTEGER NOT NULL PRIMARY KEY AUTOINCREMENT,
		"ran_at" DATETIME,
		"postcode" TEXT,
		"error_code" TEXT,
		"rubbish" TEXT,
		"recycling" TEXT,
		"food" TEXT
	);`

	_, err = db.Exec(createRunsTableSQL)
	if err != nil {
		log.Fatalf("Error creating runs table: %v", err)
	}

	return &DBRepository{DB: db}
}

// Close closes the database connection.
func (repo *DBRepository) Close() {
	repo.DB.Close()
}

// SaveRun appends one pipeline invocation to the journal.
func (repo *DBRepository) SaveRun(run models.Run) error {
	query := `
	INSERT INTO runs (ran_at, postcode, error_code, rubbish, recycling, food)
	VALUES (?, ?, ?, ?, ?, ?);`

	stmt, err := repo.DB.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(
		run.RanAt.Format(time.RFC3339), run.Postcode, run.ErrorCode,
		run.Rubbish, run.Recycling, run.Food,
	)
	if err != nil {
		log.Printf("Failed to save run: %v", err)
	}
	return err
}

// LatestRun returns the most recent journal entry, or sql.ErrNoRows if the
// pipeline has never run.
func (repo *DBRepository) LatestRun() (models.Run, error) {
	row := repo.DB.QueryRow(`
	SELECT id, ran_at, postcode, error_code, rubbish, recycling, food
	FROM runs ORDER BY id DESC LIMIT 1;`)
	return scanRun(row)
}

// RecentRuns returns up to limit journal entries, newest first.
func (repo *DBRepository) RecentRuns(limit int) ([]models.Run, error) {
	rows, err := repo.DB.Query(`
	SELECT id, ran_at, postcode, error_code, rubbish, recycling, food
	FROM runs ORDER BY id DESC LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (models.Run, error) {
	var run models.Run
	var ranAt string
	err := row.Scan(&run.ID, &ranAt, &run.Postcode, &run.ErrorCode,
		&run.Rubbish, &run.Recycling, &run.Food)
	if err != nil {
		return models.Run{}, err
	}
	if t, perr := time.Parse(time.RFC3339, ranAt); perr == nil {
		run.RanAt = t
	}
	return run, nil
}
