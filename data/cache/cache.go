package cache

import (
	"context"
	"errors"

	"github.com/Pjt727/classwatch/data"
)

var ErrCacheMiss = errors.New("cache miss")

// Record is the cached state of a single term: the validator the remote gave
// us along with the bytes it was given for.
type Record struct {
	Validator string
	// nil when the document has never been fetched
	Document []byte
}

func (r Record) HasDocument() bool {
	return r.Document != nil
}

// Store keeps at most one Record per term. Get returns ErrCacheMiss when there
// is nothing stored and Delete of a missing term is not an error.
type Store interface {
	Get(ctx context.Context, term data.Term) (Record, error)
	Put(ctx context.Context, term data.Term, record Record) error
	Delete(ctx context.Context, term data.Term) error
}

func IsMiss(err error) bool {
	return errors.Is(err, ErrCacheMiss)
}
