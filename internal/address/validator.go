package address

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	pkgerrors "github.com/tirupurthreads/storefront-backend/pkg/errors"
)

// defaultDistricts is the serviceable area table shipped with the binary. An
// operator can override it with a JSON file of the same shape.
var defaultDistricts = map[string][]string{
	"Tamil Nadu": {"Coimbatore", "Tiruppur", "Erode", "Chennai", "Salem"},
	"Karnataka":  {"Bengaluru", "Mysuru", "Mangaluru"},
	"Kerala":     {"Kochi", "Trivandrum", "Kozhikode"},
}

// Fields is the shipping address the validator checks.
type Fields struct {
	Line     string
	State    string
	District string
	Pincode  string
}

// Validator answers which states and districts the store ships to and checks
// submitted shipping addresses against that table.
type Validator struct {
	districts map[string][]string
	states    []string
}

// NewValidator builds a validator from the compiled-in table, or from the JSON
// file at path when provided.
func NewValidator(path string) (*Validator, error) {
	table := defaultDistricts
	if path != "" {
		loaded, err := loadDistrictsFile(path)
		if err != nil {
			return nil, err
		}
		table = loaded
	}

	states := make([]string, 0, len(table))
	for state := range table {
		states = append(states, state)
	}
	sort.Strings(states)

	return &Validator{districts: table, states: states}, nil
}

// States lists the serviceable states in alphabetical order.
func (v *Validator) States() []string {
	out := make([]string, len(v.states))
	copy(out, v.states)
	return out
}

// DistrictsFor returns the serviceable districts of a state. Unknown states
// yield an empty list.
func (v *Validator) DistrictsFor(state string) []string {
	districts, ok := v.districts[strings.TrimSpace(state)]
	if !ok {
		return []string{}
	}
	out := make([]string, len(districts))
	copy(out, districts)
	return out
}

// Validate requires all four fields to be present and the district to belong
// to the chosen state; "Tamil Nadu" with "Mumbai" is rejected even though both
// exist somewhere. The line and pincode only have to be present, their format
// is not checked.
func (v *Validator) Validate(fields Fields) error {
	line := strings.TrimSpace(fields.Line)
	state := strings.TrimSpace(fields.State)
	district := strings.TrimSpace(fields.District)
	pincode := strings.TrimSpace(fields.Pincode)

	if line == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "address line is required")
	}

	districts, ok := v.districts[state]
	if !ok {
		return pkgerrors.New(pkgerrors.CodeValidation, "state not serviceable").
			WithDetails(map[string]any{"state": state, "serviceable": v.States()})
	}

	if !containsFold(districts, district) {
		return pkgerrors.New(pkgerrors.CodeValidation, "district not serviceable in the chosen state").
			WithDetails(map[string]any{"state": state, "district": district, "serviceable": districts})
	}

	if pincode == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "pincode is required")
	}

	return nil
}

func containsFold(haystack []string, needle string) bool {
	for _, candidate := range haystack {
		if strings.EqualFold(candidate, needle) {
			return true
		}
	}
	return false
}

func loadDistrictsFile(path string) (map[string][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading districts file: %w", err)
	}
	var table map[string][]string
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("parsing districts file: %w", err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("districts file %s is empty", path)
	}
	return table, nil
}
