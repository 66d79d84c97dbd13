package reporting

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name        string
		granularity string
		value       string
		wantErr     error
	}{
		{name: "day", granularity: "day", value: "2024-03-15"},
		{name: "month", granularity: "month", value: "2024-01"},
		{name: "year", granularity: "year", value: "2024"},
		{name: "first year", granularity: "year", value: "0001"},
		{name: "all time", granularity: "month", value: ""},
		{name: "surrounding spaces", granularity: " year ", value: " 2024 "},
		{name: "two digit year", granularity: "year", value: "24", wantErr: ErrInvalidPeriod},
		{name: "letters", granularity: "year", value: "abcd", wantErr: ErrInvalidPeriod},
		{name: "signed year", granularity: "year", value: "+202", wantErr: ErrInvalidPeriod},
		{name: "year zero", granularity: "year", value: "0000", wantErr: ErrInvalidPeriod},
		{name: "five digit year", granularity: "year", value: "20245", wantErr: ErrInvalidPeriod},
		{name: "month thirteen", granularity: "month", value: "2024-13", wantErr: ErrInvalidPeriod},
		{name: "month with day", granularity: "month", value: "2024-03-01", wantErr: ErrInvalidPeriod},
		{name: "february thirtieth", granularity: "day", value: "2024-02-30", wantErr: ErrInvalidPeriod},
		{name: "day in year zero", granularity: "day", value: "0000-06-01", wantErr: ErrInvalidPeriod},
		{name: "week", granularity: "week", value: "2024-10", wantErr: ErrUnsupportedGranularity},
		{name: "empty granularity", granularity: "", value: "", wantErr: ErrUnsupportedGranularity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePeriod(tt.granularity, tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Granularity(strings.TrimSpace(tt.granularity)), p.Granularity)
			assert.Equal(t, strings.TrimSpace(tt.value), p.Value)
		})
	}
}

func TestPreviousPeriod(t *testing.T) {
	tests := []struct {
		granularity string
		value       string
		want        string
	}{
		{"day", "2024-03-01", "2024-02-29"},
		{"day", "2024-01-01", "2023-12-31"},
		{"month", "2024-03", "2024-02"},
		{"month", "2024-01", "2023-12"},
		{"year", "2024", "2023"},
		{"year", "1000", "0999"},
	}
	for _, tt := range tests {
		t.Run(tt.granularity+" "+tt.value, func(t *testing.T) {
			prev, ok := mustPeriod(t, tt.granularity, tt.value).Previous()
			require.True(t, ok)
			assert.Equal(t, tt.want, prev.Value)
			assert.Equal(t, Granularity(tt.granularity), prev.Granularity)
		})
	}
}

func TestPreviousOfJanuaryRollsBackAYear(t *testing.T) {
	for year := 2; year <= 9999; year += 37 {
		p := mustPeriod(t, "month", fmt.Sprintf("%04d-01", year))
		prev, ok := p.Previous()
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("%04d-12", year-1), prev.Value)
	}
}

func TestPreviousUndefined(t *testing.T) {
	for _, p := range []Period{
		mustPeriod(t, "year", "0001"),
		mustPeriod(t, "month", "0001-01"),
		mustPeriod(t, "day", "0001-01-01"),
		mustPeriod(t, "year", ""),
	} {
		_, ok := p.Previous()
		assert.False(t, ok, "%s %q", p.Granularity, p.Value)
	}
}

func TestPreviousPredicateDoesNotOverlap(t *testing.T) {
	periods := []Period{
		mustPeriod(t, "day", "2024-03-01"),
		mustPeriod(t, "day", "2023-12-31"),
		mustPeriod(t, "month", "2024-01"),
		mustPeriod(t, "month", "2024-03"),
		mustPeriod(t, "year", "2024"),
	}
	for _, p := range periods {
		prev, ok := p.Previous()
		require.True(t, ok)
		cur, before := p.Predicate(), prev.Predicate()

		assert.True(t, before.End.Equal(cur.Start), "%s: ranges must be adjacent", p.Value)
		assert.True(t, cur.Matches(cur.Start))
		assert.False(t, before.Matches(cur.Start))
		assert.True(t, before.Matches(cur.Start.AddDate(0, 0, -1)))
		assert.False(t, cur.Matches(cur.Start.AddDate(0, 0, -1)))
	}
}

func TestPredicateMatchesCalendarDate(t *testing.T) {
	march := mustPeriod(t, "month", "2024-03").Predicate()
	est := time.FixedZone("EST", -5*60*60)

	assert.True(t, march.Matches(time.Date(2024, time.March, 31, 23, 30, 0, 0, est)))
	assert.False(t, march.Matches(time.Date(2024, time.April, 1, 0, 0, 0, 0, est)))
	assert.True(t, march.Matches(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))

	all := mustPeriod(t, "month", "").Predicate()
	assert.True(t, all.All)
	assert.True(t, all.Matches(time.Date(1901, time.June, 1, 0, 0, 0, 0, time.UTC)))
}

func TestPredicateSQL(t *testing.T) {
	clause, args := mustPeriod(t, "month", "2024-03").Predicate().SQL("w.wedding_date", 1)
	assert.Equal(t, "w.wedding_date >= $1::date AND w.wedding_date < $2::date", clause)
	assert.Equal(t, []interface{}{"2024-03-01", "2024-04-01"}, args)

	clause, args = mustPeriod(t, "year", "2023").Predicate().SQL("d", 3)
	assert.Equal(t, "d >= $3::date AND d < $4::date", clause)
	assert.Equal(t, []interface{}{"2023-01-01", "2024-01-01"}, args)

	clause, args = mustPeriod(t, "day", "").Predicate().SQL("d", 1)
	assert.Equal(t, "TRUE", clause)
	assert.Nil(t, args)
}
