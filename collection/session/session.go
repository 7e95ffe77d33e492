package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Pjt727/classwatch/collection/catalog"
	"github.com/Pjt727/classwatch/collection/services/quacs"
	"github.com/Pjt727/classwatch/data"
	logginghelpers "github.com/Pjt727/classwatch/data/logging-helpers"
)

const endOfCourses = "-1"

var ErrEndOfInput = errors.New("input ended")

// Syncer is the part of the quacs synchronizer a session drives
type Syncer interface {
	Sync(ctx context.Context, term data.Term) (quacs.Availability, error)
	Document(ctx context.Context, term data.Term) ([]byte, error)
}

// Session is the line based prompt loop. It owns no state between runs, all of
// it lives in the cache behind the syncer.
type Session struct {
	logger *slog.Logger
	syncer Syncer
	in     *bufio.Scanner
	out    io.Writer
}

func New(logger *slog.Logger, syncer Syncer, in io.Reader, out io.Writer) *Session {
	return &Session{
		logger: logger,
		syncer: syncer,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

func (s *Session) Run(ctx context.Context) error {
	term, err := s.PromptTerm(ctx)
	if err != nil {
		return err
	}
	index, err := s.LoadIndex(ctx, term)
	if err != nil {
		s.logger.Log(ctx, logginghelpers.LevelBrokenProcess, "Could not index courses", "term", term.Code(), "error", err)
		return err
	}
	s.logger.Debug("Indexed courses", "term", term.Code(), "departments", index.Len())

	s.printf("This program will take input of courses. Type %s to finish the course selection process.\n", endOfCourses)
	selection, err := s.PromptCourses(index)
	if err != nil {
		return err
	}
	s.logger.Info("Checking availability", "term", term.Code(), "selection", FormatCount(selection))
	return Report(s.out, index, selection)
}

// PromptTerm asks until a term parses and has data. Only transport or cache
// failures and the end of input stop it.
func (s *Session) PromptTerm(ctx context.Context) (data.Term, error) {
	for {
		line, err := s.prompt("\nEnter the term to check e.i. \"fall 2022\":\n")
		if err != nil {
			return data.Term{}, fmt.Errorf("no term chosen: %w", err)
		}
		term, err := data.ParseTerm(line)
		if err != nil {
			s.logger.Debug("Rejected term", "input", line, "error", err)
			s.printf("Invalid term specified, use a season (spring, summer, fall, winter) and a year.\n")
			continue
		}

		availability, err := s.syncer.Sync(ctx, term)
		if err != nil {
			s.logger.Error("Could not sync term", "term", term.Code(), "error", err)
			return term, err
		}
		if availability == quacs.DataUnavailable {
			s.logger.Info("Rejected term", "term", term.Code(), "error", quacs.ErrTermNotFound)
			s.printf("No course data exists for %s, try another term.\n", term)
			continue
		}
		return term, nil
	}
}

func (s *Session) LoadIndex(ctx context.Context, term data.Term) (*catalog.Index, error) {
	raw, err := s.syncer.Document(ctx, term)
	if err != nil {
		return nil, err
	}
	return catalog.Build(raw)
}

// PromptCourses collects confirmed courses until -1 or the end of input
func (s *Session) PromptCourses(index *catalog.Index) (*Selection, error) {
	selection := NewSelection()
	for {
		line, err := s.prompt("\nEnter course in the following format: \"DEPT-XXXX\":\n")
		if errors.Is(err, ErrEndOfInput) {
			break
		}
		if err != nil {
			return selection, err
		}
		if strings.TrimSpace(line) == endOfCourses {
			break
		}

		id, err := catalog.ParseCourseID(line)
		if err != nil {
			s.printf("Invalid course format, try again.\n")
			continue
		}
		s.printf("Your specified course: %s\n", id)
		if err := index.Lookup(id); err != nil {
			if errors.Is(err, catalog.ErrUnknownDepartment) {
				s.printf("Invalid course department code specified, try again.\n")
			} else {
				s.printf("Invalid course specified, try again.\n")
			}
			continue
		}

		confirmation, err := s.confirm()
		if errors.Is(err, ErrEndOfInput) {
			break
		}
		if err != nil {
			return selection, err
		}
		if confirmation == Accepted {
			selection.Add(id)
			s.printf("Added entry.\n")
		} else {
			s.printf("Discarded entry.\n")
		}
	}
	s.printf("Finalizing desired courses...\n")
	return selection, nil
}

func (s *Session) confirm() (Confirmation, error) {
	for {
		line, err := s.prompt("Confirm course? Y/N: ")
		if err != nil {
			return InvalidInput, err
		}
		if confirmation := Confirm(line); confirmation != InvalidInput {
			return confirmation, nil
		}
	}
}

func (s *Session) prompt(text string) (string, error) {
	s.printf("%s", text)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", ErrEndOfInput
	}
	return s.in.Text(), nil
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
