package data

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidTermSyntax = errors.New("invalid term")

type SeasonEnum string

const (
	SeasonEnumSpring SeasonEnum = "Spring"
	SeasonEnumSummer SeasonEnum = "Summer"
	SeasonEnumFall   SeasonEnum = "Fall"
	SeasonEnumWinter SeasonEnum = "Winter"
)

// the month a quacs semester directory is keyed by
var seasonMonthCodes = map[SeasonEnum]string{
	SeasonEnumSpring: "01",
	SeasonEnumSummer: "05",
	SeasonEnumFall:   "09",
	SeasonEnumWinter: "12",
}

func (e *SeasonEnum) Scan(src interface{}) error {
	var raw string
	switch s := src.(type) {
	case []byte:
		raw = string(s)
	case string:
		raw = s
	default:
		return fmt.Errorf("%w unsupported scan type for SeasonEnum: %T", ErrInvalidTermSyntax, src)
	}
	for season := range seasonMonthCodes {
		if strings.EqualFold(raw, string(season)) {
			*e = season
			return nil
		}
	}
	return fmt.Errorf("%w unknown season `%s`", ErrInvalidTermSyntax, raw)
}

// Term is one academic semester. The zero value is not a valid term, use
// ParseTerm or NewTerm.
type Term struct {
	season SeasonEnum
	year   int
}

func NewTerm(season SeasonEnum, year int) (Term, error) {
	if _, ok := seasonMonthCodes[season]; !ok {
		return Term{}, fmt.Errorf("%w unknown season `%s`", ErrInvalidTermSyntax, season)
	}
	if year < 1000 || year > 9999 {
		return Term{}, fmt.Errorf("%w year `%d` must be four digits", ErrInvalidTermSyntax, year)
	}
	return Term{season: season, year: year}, nil
}

// ParseTerm reads user input of the form "fall 2022"
func ParseTerm(input string) (Term, error) {
	fields := strings.Fields(input)
	if len(fields) != 2 {
		return Term{}, fmt.Errorf("%w `%s` expected a season followed by a year", ErrInvalidTermSyntax, input)
	}
	var season SeasonEnum
	if err := season.Scan(fields[0]); err != nil {
		return Term{}, err
	}
	yearToken := fields[1]
	if len(yearToken) != 4 {
		return Term{}, fmt.Errorf("%w year `%s` must be four digits", ErrInvalidTermSyntax, yearToken)
	}
	year, err := strconv.Atoi(yearToken)
	if err != nil {
		return Term{}, fmt.Errorf("%w year `%s` is not a number", ErrInvalidTermSyntax, yearToken)
	}
	return NewTerm(season, year)
}

// the term whose semester directory is published around now
func CurrentTerm(now time.Time) Term {
	var season SeasonEnum
	switch now.Month() {
	case time.January, time.February, time.March, time.April:
		season = SeasonEnumSpring
	case time.May, time.June, time.July, time.August:
		season = SeasonEnumSummer
	case time.September, time.October, time.November:
		season = SeasonEnumFall
	case time.December:
		season = SeasonEnumWinter
	default:
		panic("Missing month")
	}
	return Term{season: season, year: now.Year()}
}

func (t Term) Season() SeasonEnum { return t.season }
func (t Term) Year() int          { return t.year }

func (t Term) MonthCode() string {
	return seasonMonthCodes[t.season]
}

// Code is the YYYYMM key used for both the remote directory and the cache
func (t Term) Code() string {
	return fmt.Sprintf("%04d%s", t.year, t.MonthCode())
}

func (t Term) String() string {
	return fmt.Sprintf("%s %d", t.season, t.year)
}
