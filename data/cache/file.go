package cache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/Pjt727/classwatch/data"
)

// FileStore keeps the pair of files the original watcher used, one holding the
// etag and one holding the courses document, named after the term code.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create cache directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) ValidatorPath(term data.Term) string {
	return filepath.Join(f.dir, "etag-"+term.Code()+".txt")
}

func (f *FileStore) DocumentPath(term data.Term) string {
	return filepath.Join(f.dir, "courses-"+term.Code()+".json")
}

func (f *FileStore) Get(ctx context.Context, term data.Term) (Record, error) {
	var record Record
	validator, validatorErr := os.ReadFile(f.ValidatorPath(term))
	if validatorErr != nil && !errors.Is(validatorErr, fs.ErrNotExist) {
		return record, validatorErr
	}
	document, documentErr := os.ReadFile(f.DocumentPath(term))
	if documentErr != nil && !errors.Is(documentErr, fs.ErrNotExist) {
		return record, documentErr
	}
	if validatorErr != nil && documentErr != nil {
		return record, ErrCacheMiss
	}
	record.Validator = string(validator)
	if documentErr == nil {
		record.Document = document
	}
	return record, nil
}

// the document goes down before the validator, a validator on disk must never
// be newer than the document next to it
func (f *FileStore) Put(ctx context.Context, term data.Term, record Record) error {
	if record.Document != nil {
		if err := atomic.WriteFile(f.DocumentPath(term), bytes.NewReader(record.Document)); err != nil {
			return fmt.Errorf("could not write document for %s: %w", term, err)
		}
	} else if err := os.Remove(f.DocumentPath(term)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not clear document for %s: %w", term, err)
	}
	if err := atomic.WriteFile(f.ValidatorPath(term), bytes.NewBufferString(record.Validator)); err != nil {
		return fmt.Errorf("could not write validator for %s: %w", term, err)
	}
	return nil
}

func (f *FileStore) Delete(ctx context.Context, term data.Term) error {
	var errs error
	for _, path := range []string{f.ValidatorPath(term), f.DocumentPath(term)} {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}
