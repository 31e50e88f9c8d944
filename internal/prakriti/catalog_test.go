package prakriti

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHasThreeOptionsPerKey(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, len(TraitKeys))
	for _, key := range TraitKeys {
		assert.Len(t, catalog[key], 3, key)
	}
	assert.Equal(t, []string{"Dry", "Oily", "Balanced"}, catalog[Skin])
}

func TestTraitsValidate(t *testing.T) {
	full, _ := Template(Pitta)
	require.NoError(t, full.Validate())

	partial := full
	partial.Sleep = ""
	partial.Hair = "  "
	err := partial.Validate()
	var te *TraitError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, []string{Hair, Sleep}, te.Missing)
	assert.Equal(t, "missing traits: hair, sleep", err.Error())

	bad := full
	bad.Energy = "Boundless"
	err = bad.Validate()
	require.True(t, errors.As(err, &te))
	assert.Equal(t, Energy, te.Key)
	assert.Contains(t, err.Error(), `"Boundless"`)
}

func TestDoshaValid(t *testing.T) {
	assert.True(t, Kapha.Valid())
	assert.False(t, Dosha("kapha").Valid())
}
