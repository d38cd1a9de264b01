package address

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/tirupurthreads/storefront-backend/pkg/errors"
)

func TestValidateAcceptsServiceableAddress(t *testing.T) {
	v, err := NewValidator("")
	require.NoError(t, err)

	err = v.Validate(Fields{Line: "12 Mill Road", State: "Tamil Nadu", District: "Coimbatore", Pincode: "641601"})
	assert.NoError(t, err)
}

func TestValidateRejectsDistrictOutsideState(t *testing.T) {
	v, err := NewValidator("")
	require.NoError(t, err)

	// Mumbai is a real district, just not one of Tamil Nadu's.
	err = v.Validate(Fields{Line: "12 Mill Road", State: "Tamil Nadu", District: "Mumbai", Pincode: "641601"})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestValidateRejectsUnknownState(t *testing.T) {
	v, err := NewValidator("")
	require.NoError(t, err)

	err = v.Validate(Fields{Line: "12 Mill Road", State: "Maharashtra", District: "Mumbai", Pincode: "400001"})
	require.Error(t, err)
}

func TestValidateRequiresAddressLine(t *testing.T) {
	v, err := NewValidator("")
	require.NoError(t, err)

	err = v.Validate(Fields{Line: "  ", State: "Tamil Nadu", District: "Coimbatore", Pincode: "641601"})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestValidateRequiresPincode(t *testing.T) {
	v, err := NewValidator("")
	require.NoError(t, err)

	err = v.Validate(Fields{Line: "12 Mill Road", State: "Kerala", District: "Kochi", Pincode: "  "})
	require.Error(t, err)

	// Any non-empty pincode passes, the format is not inspected.
	assert.NoError(t, v.Validate(Fields{Line: "12 Mill Road", State: "Kerala", District: "Kochi", Pincode: "682001"}))
}

func TestValidateIgnoresDistrictCase(t *testing.T) {
	v, err := NewValidator("")
	require.NoError(t, err)

	err = v.Validate(Fields{Line: "12 Mill Road", State: "Karnataka", District: "bengaluru", Pincode: "560001"})
	assert.NoError(t, err)
}

func TestStatesSorted(t *testing.T) {
	v, err := NewValidator("")
	require.NoError(t, err)

	assert.Equal(t, []string{"Karnataka", "Kerala", "Tamil Nadu"}, v.States())
}

func TestDistrictsFor(t *testing.T) {
	v, err := NewValidator("")
	require.NoError(t, err)

	assert.Equal(t, []string{"Coimbatore", "Tiruppur", "Erode", "Chennai", "Salem"}, v.DistrictsFor("Tamil Nadu"))
	assert.Empty(t, v.DistrictsFor("Goa"))
}

func TestNewValidatorLoadsFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "districts.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Tamil Nadu":["Madurai"]}`), 0o644))

	v, err := NewValidator(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Tamil Nadu"}, v.States())
	assert.NoError(t, v.Validate(Fields{Line: "12 Mill Road", State: "Tamil Nadu", District: "Madurai", Pincode: "625001"}))
	assert.Error(t, v.Validate(Fields{Line: "12 Mill Road", State: "Tamil Nadu", District: "Coimbatore", Pincode: "641601"}))
}

func TestNewValidatorRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "districts.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	_, err := NewValidator(path)
	assert.Error(t, err)
}
