package rolemodel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCriteriaIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     bool
	}{
		{
			name:     "zero value is empty",
			criteria: Criteria{},
			want:     true,
		},
		{
			name:     "all_employees false with no keys is empty",
			criteria: Criteria{AllEmployees: false},
			want:     true,
		},
		{
			name:     "all_employees true is not empty",
			criteria: Criteria{AllEmployees: true},
			want:     false,
		},
		{
			name:     "single clause is not empty",
			criteria: Criteria{Positions: []string{"Backend Developer"}},
			want:     false,
		},
		{
			name: "unknown keys alone do not make it non-empty",
			criteria: Criteria{
				Extra: map[string]json.RawMessage{"grades": json.RawMessage(`["senior"]`)},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.IsEmpty())
		})
	}
}

func TestCriteriaMatches(t *testing.T) {
	attrs := EmployeeAttributes{
		ProfileName:   "Developer",
		PositionTitle: "Backend Developer",
		OrgUnitType:   "department",
		TypeName:      "staff",
	}

	tests := []struct {
		name     string
		criteria Criteria
		want     bool
	}{
		{
			name:     "empty criteria matches nobody",
			criteria: Criteria{},
			want:     false,
		},
		{
			name:     "all_employees matches regardless of attributes",
			criteria: Criteria{AllEmployees: true},
			want:     true,
		},
		{
			name: "all_employees overrides non-matching clauses",
			criteria: Criteria{
				AllEmployees: true,
				Positions:    []string{"CFO"},
			},
			want: true,
		},
		{
			name:     "single clause hit",
			criteria: Criteria{Positions: []string{"Frontend Developer", "Backend Developer"}},
			want:     true,
		},
		{
			name:     "single clause miss",
			criteria: Criteria{Positions: []string{"QA Engineer"}},
			want:     false,
		},
		{
			name: "clauses are conjunctive",
			criteria: Criteria{
				EmployeeProfiles: []string{"Developer"},
				OrgUnitsType:     []string{"directorate"},
			},
			want: false,
		},
		{
			name: "all clauses hit",
			criteria: Criteria{
				EmployeeProfiles: []string{"Developer"},
				Positions:        []string{"Backend Developer"},
				OrgUnitsType:     []string{"department"},
				EmployeeTypes:    []string{"staff", "contractor"},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.Matches(attrs))
		})
	}
}

func TestCriteriaUnmarshalJSON(t *testing.T) {
	t.Run("known keys", func(t *testing.T) {
		var c Criteria
		err := json.Unmarshal([]byte(`{
			"employee_profiles": ["Developer"],
			"positions": ["Backend Developer", "Frontend Developer"],
			"org_units_type": ["department"],
			"employee_types": ["staff"],
			"all_employees": false
		}`), &c)
		require.NoError(t, err)

		assert.Equal(t, []string{"Developer"}, c.EmployeeProfiles)
		assert.Equal(t, []string{"Backend Developer", "Frontend Developer"}, c.Positions)
		assert.Equal(t, []string{"department"}, c.OrgUnitsType)
		assert.Equal(t, []string{"staff"}, c.EmployeeTypes)
		assert.False(t, c.AllEmployees)
		assert.Empty(t, c.Extra)
	})

	t.Run("unknown keys are preserved", func(t *testing.T) {
		var c Criteria
		err := json.Unmarshal([]byte(`{"positions": ["CTO"], "grades": ["senior"]}`), &c)
		require.NoError(t, err)

		assert.Equal(t, []string{"CTO"}, c.Positions)
		require.Contains(t, c.Extra, "grades")
		assert.JSONEq(t, `["senior"]`, string(c.Extra["grades"]))
	})

	t.Run("malformed known key moves to extra", func(t *testing.T) {
		var c Criteria
		err := json.Unmarshal([]byte(`{"positions": "not-a-list"}`), &c)
		require.NoError(t, err)

		assert.Empty(t, c.Positions)
		require.Contains(t, c.Extra, "positions")
	})
}

func TestCriteriaMarshalRoundTrip(t *testing.T) {
	src := []byte(`{"positions":["CTO"],"all_employees":true,"grades":["senior"]}`)

	var c Criteria
	require.NoError(t, json.Unmarshal(src, &c))

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, string(src), string(out))
}

func TestCriteriaMarshalOmitsAbsentKeys(t *testing.T) {
	out, err := json.Marshal(Criteria{Positions: []string{"CTO"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"positions":["CTO"]}`, string(out))
}
