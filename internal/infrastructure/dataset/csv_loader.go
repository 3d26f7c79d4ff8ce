package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"therapist-directory/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
)

var (
	ErrDatasetLoad       = errors.New("failed to load dataset")
	ErrMissingNameColumn = errors.New("dataset header has no name column")
)

// Column names of the dataset header row
const (
	ColumnName            = "name"
	ColumnCity            = "city"
	ColumnGender          = "gender"
	ColumnExperienceYears = "experience_years"
	ColumnFeeAmount       = "fee_amount"
	ColumnModes           = "modes"
	ColumnExpertise       = "expertise"
	ColumnEducation       = "education"
	ColumnProfileURL      = "profile_url"
)

const utf8BOM = "\ufeff"

// leadingNumber mirrors a lenient float parse: the longest numeric prefix wins.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// LoadResult carries the parsed therapists plus how many rows were dropped.
type LoadResult struct {
	Therapists []entity.Therapist
	Dropped    int
}

// LoadCSV reads and parses the dataset at path on fs.
func LoadCSV(fs afero.Fs, path string) (*LoadResult, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatasetLoad, err)
	}
	defer file.Close()

	return ParseCSV(file)
}

// ParseCSV parses a header-row CSV stream. Rows with a blank name or that
// cannot be parsed are dropped. Unknown columns are ignored and short rows are
// padded with empty fields. Stray quotes inside unquoted fields are kept.
func ParseCSV(r io.Reader) (*LoadResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrDatasetLoad)
		}
		return nil, fmt.Errorf("%w: read header: %w", ErrDatasetLoad, err)
	}

	columns := indexColumns(header)
	if _, ok := columns[ColumnName]; !ok {
		return nil, fmt.Errorf("%w: %w", ErrDatasetLoad, ErrMissingNameColumn)
	}

	result := &LoadResult{Therapists: make([]entity.Therapist, 0)}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			result.Dropped++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDatasetLoad, err)
		}

		get := func(column string) string {
			i, ok := columns[column]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		name := get(ColumnName)
		if name == "" {
			result.Dropped++
			continue
		}

		experience := get(ColumnExperienceYears)
		fee := get(ColumnFeeAmount)
		experienceYears, _ := ParseNumber(experience).Float64()

		result.Therapists = append(result.Therapists, entity.Therapist{
			Name:            name,
			City:            get(ColumnCity),
			Gender:          get(ColumnGender),
			ExperienceYears: experienceYears,
			ExperienceText:  experience,
			FeeAmount:       ParseNumber(fee),
			FeeText:         fee,
			Modes:           get(ColumnModes),
			Expertise:       get(ColumnExpertise),
			Education:       get(ColumnEducation),
			ProfileURL:      get(ColumnProfileURL),
		})
	}

	return result, nil
}

// ParseNumber takes the leading numeric part of s. Anything unparseable is zero.
func ParseNumber(s string) decimal.Decimal {
	match := leadingNumber.FindString(strings.TrimSpace(s))
	if match == "" {
		return decimal.Zero
	}
	match = strings.TrimSuffix(strings.TrimPrefix(match, "+"), ".")
	if i := strings.Index(match, "."); i == 0 || (i == 1 && match[0] == '-') {
		match = match[:i] + "0" + match[i:]
	}
	d, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, utf8BOM)))
		if _, dup := columns[key]; !dup {
			columns[key] = i
		}
	}
	return columns
}
