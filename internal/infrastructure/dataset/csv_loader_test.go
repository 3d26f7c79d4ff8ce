package dataset

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `name,city,gender,experience_years,fee_amount,modes,expertise,education,profile_url
Ayesha Khan,Lahore,Female,6,1500,"In-person, Online",Anxiety; Depression,MSc Clinical Psychology,https://example.com/ayesha
  ,Karachi,Male,3,2000,Online,,,
Bilal Ahmed,Karachi,Male,4,5000,Online,Couples Therapy,BS Psychology,
Sara Malik,Lahore,Female,,,In-person,Trauma,PhD,
`

func TestParseCSV(t *testing.T) {
	result, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	require.Len(t, result.Therapists, 3)
	assert.Equal(t, 1, result.Dropped)

	ayesha := result.Therapists[0]
	assert.Equal(t, "Ayesha Khan", ayesha.Name)
	assert.Equal(t, "Lahore", ayesha.City)
	assert.Equal(t, 6.0, ayesha.ExperienceYears)
	assert.Equal(t, "6", ayesha.ExperienceText)
	assert.True(t, decimal.NewFromInt(1500).Equal(ayesha.FeeAmount))
	assert.Equal(t, "1500", ayesha.FeeText)
	assert.Equal(t, "In-person, Online", ayesha.Modes)
	assert.Equal(t, "https://example.com/ayesha", ayesha.ProfileURL)

	sara := result.Therapists[2]
	assert.Equal(t, 0.0, sara.ExperienceYears)
	assert.Empty(t, sara.ExperienceText)
	assert.True(t, sara.FeeAmount.IsZero())
	assert.Empty(t, sara.FeeText)
}

func TestParseCSVKeepsRawNumberText(t *testing.T) {
	input := "name,fee_amount,experience_years\n" +
		"A,\"2,500\",10\n" +
		"B,1500.00,3\n" +
		"C,Rs 3000,N/A\n"

	result, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Therapists, 3)

	assert.Equal(t, "2,500", result.Therapists[0].FeeText)
	assert.True(t, decimal.NewFromInt(2).Equal(result.Therapists[0].FeeAmount))
	assert.Equal(t, "1500.00", result.Therapists[1].FeeText)
	assert.True(t, decimal.NewFromInt(1500).Equal(result.Therapists[1].FeeAmount))
	assert.Equal(t, "Rs 3000", result.Therapists[2].FeeText)
	assert.True(t, result.Therapists[2].FeeAmount.IsZero())
	assert.Equal(t, "N/A", result.Therapists[2].ExperienceText)
}

func TestParseCSVStrayQuote(t *testing.T) {
	input := "name,city,expertise\n" +
		"Ayesha,Lahore,Anxiety\n" +
		"Dr. \"Sam\" Ali,Karachi,Grief\n" +
		"Bilal,Multan,Stress\n"

	result, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Therapists, 3)
	assert.Zero(t, result.Dropped)

	assert.Equal(t, `Dr. "Sam" Ali`, result.Therapists[1].Name)
	assert.Equal(t, "Karachi", result.Therapists[1].City)
	assert.Equal(t, "Bilal", result.Therapists[2].Name)
}

func TestParseCSVUnterminatedQuote(t *testing.T) {
	result, err := ParseCSV(strings.NewReader("name,city\nBilal,Multan\n\"Ayesha,Lahore\n"))
	require.NoError(t, err)
	require.Len(t, result.Therapists, 2)

	assert.Equal(t, "Bilal", result.Therapists[0].Name)
	assert.Equal(t, "Ayesha,Lahore", result.Therapists[1].Name)
}

func TestParseCSVHeaderVariants(t *testing.T) {
	input := "\ufeff Name ,EXPERIENCE_YEARS,rating,City\n" +
		"Hina Raza,12 yrs,4.5,Multan\n" +
		"Omar Sheikh\n"

	result, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result.Therapists, 2)

	assert.Equal(t, "Hina Raza", result.Therapists[0].Name)
	assert.Equal(t, 12.0, result.Therapists[0].ExperienceYears)
	assert.Equal(t, "Multan", result.Therapists[0].City)

	assert.Equal(t, "Omar Sheikh", result.Therapists[1].Name)
	assert.Empty(t, result.Therapists[1].City)
}

func TestParseCSVSkipsBlankLines(t *testing.T) {
	input := "name,city\n\nA,X\n\nB,Y\n"

	result, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, result.Therapists, 2)
	assert.Zero(t, result.Dropped)
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty input", "", ErrDatasetLoad},
		{"no name column", "city,gender\nLahore,Female\n", ErrMissingNameColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrDatasetLoad)
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "0"},
		{"abc", "0"},
		{"N/A", "0"},
		{"2500", "2500"},
		{" 2500.50 ", "2500.5"},
		{"12 years", "12"},
		{"7.", "7"},
		{"-3", "-3"},
		{".5", "0.5"},
		{"1e3", "1000"},
		{"3,000", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumber(tt.input).String())
		})
	}
}

func TestLoadCSV(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "data/therapists.csv", []byte(sampleCSV), 0o644))

	result, err := LoadCSV(fs, "data/therapists.csv")
	require.NoError(t, err)
	assert.Len(t, result.Therapists, 3)

	_, err = LoadCSV(fs, "missing.csv")
	assert.ErrorIs(t, err, ErrDatasetLoad)
}
