package testdb

import (
	"context"
	"errors"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/Pjt727/classwatch/data"
)

var ErrNoTestDb = errors.New("TEST_DB_CONN is not set")

// resets the test database and returns a connection to it
func SetupTestDb(ctx context.Context) (*sqlx.DB, error) {
	testDb := os.Getenv("TEST_DB_CONN")
	if testDb == "" {
		return nil, ErrNoTestDb
	}
	if err := data.ResetDb(testDb); err != nil {
		return nil, err
	}
	return data.NewPool(ctx, testDb)
}
