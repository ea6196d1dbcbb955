package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate_MonthAbbreviation(t *testing.T) {
	assert.Equal(t, "September 2022", FormatDate("Sep 2022"))
	assert.Equal(t, "March 2019", FormatDate("Mar 2019"))
}

func TestFormatDate_YearMonth(t *testing.T) {
	assert.Equal(t, "January 2007", FormatDate("2007-01"))
	assert.Equal(t, "December 2023", FormatDate("2023-12"))
}

func TestFormatDate_BareYear(t *testing.T) {
	assert.Equal(t, "2020", FormatDate("2020"))
}

func TestFormatDate_FullDate(t *testing.T) {
	assert.Equal(t, "June 2021", FormatDate("2021-06-15"))
	assert.Equal(t, "August 2018", FormatDate("August 3, 2018"))
}

func TestFormatDate_Unparseable(t *testing.T) {
	tests := []string{"not-a-date", "Present", "13-2020", ""}
	for _, in := range tests {
		assert.Equal(t, in, FormatDate(in))
	}
}

func TestFormatDate_NeverEmptyForNonEmptyInput(t *testing.T) {
	inputs := []string{"Sep 2022", "2007-01", "2020", "garbage", "  "}
	for _, in := range inputs {
		assert.NotEmpty(t, FormatDate(in), "input %q", in)
	}
}

func TestAbbreviateRegion_Canadian(t *testing.T) {
	assert.Equal(t, "ON", AbbreviateRegion("Ontario"))
	assert.Equal(t, "BC", AbbreviateRegion("British Columbia"))
	assert.Equal(t, "QC", AbbreviateRegion("Quebec"))
}

func TestAbbreviateRegion_US(t *testing.T) {
	assert.Equal(t, "CA", AbbreviateRegion("California"))
	assert.Equal(t, "NY", AbbreviateRegion("New York"))
}

func TestAbbreviateRegion_Unknown(t *testing.T) {
	assert.Equal(t, "Narnia", AbbreviateRegion("Narnia"))
	// Exact, case-sensitive match only.
	assert.Equal(t, "ontario", AbbreviateRegion("ontario"))
	assert.Equal(t, "ONTARIO", AbbreviateRegion("ONTARIO"))
}
