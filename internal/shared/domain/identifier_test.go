package domain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/felixgeelhaar/catalog/internal/shared/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentifier(t *testing.T) {
	id := domain.NewIdentifier()

	assert.False(t, id.IsZero())
	parsed, err := domain.ParseIdentifier(id.String())
	require.NoError(t, err)
	assert.True(t, id.Equals(parsed))
	assert.Equal(t, uuid.Version(4), id.UUID().Version())
}

func TestParseIdentifier_RoundTrip(t *testing.T) {
	valid := []string{
		"9366b7dc-2d71-4799-b91c-c64adb205104",
		"9366B7DC-2D71-4799-B91C-C64ADB205104",
		uuid.NewString(),
		uuid.NewString(),
	}

	for _, value := range valid {
		t.Run(value, func(t *testing.T) {
			id, err := domain.ParseIdentifier(value)
			require.NoError(t, err)
			assert.Equal(t, value, id.String())
		})
	}
}

func TestParseIdentifier_Invalid(t *testing.T) {
	invalid := map[string]string{
		"empty":             "",
		"garbage":           "fake id",
		"too short":         "9366b7dc-2d71-4799-b91c-c64adb20510",
		"version 1":         "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"nil uuid":          "00000000-0000-0000-0000-000000000000",
		"braced":            "{9366b7dc-2d71-4799-b91c-c64adb205104}",
		"urn prefix":        "urn:uuid:9366b7dc-2d71-4799-b91c-c64adb205104",
		"no hyphens":        strings.ReplaceAll("9366b7dc-2d71-4799-b91c-c64adb205104", "-", ""),
		"bad variant":       "9366b7dc-2d71-4799-c91c-c64adb205104",
		"non-hex character": "9366b7dc-2d71-4799-b91c-c64adb20510z",
	}

	for name, value := range invalid {
		t.Run(name, func(t *testing.T) {
			id, err := domain.ParseIdentifier(value)

			require.Error(t, err)
			assert.True(t, id.IsZero())
			assert.True(t, errors.Is(err, domain.ErrInvalidIdentifier))

			var invalidErr *domain.InvalidIdentifierError
			require.ErrorAs(t, err, &invalidErr)
			assert.Equal(t, value, invalidErr.Value)
		})
	}
}

func TestMustParseIdentifier_Panics(t *testing.T) {
	assert.Panics(t, func() { domain.MustParseIdentifier("not-a-uuid") })
}

func TestIdentifier_Equals(t *testing.T) {
	value := "9366b7dc-2d71-4799-b91c-c64adb205104"
	a := domain.MustParseIdentifier(value)
	b := domain.MustParseIdentifier(value)
	c := domain.NewIdentifier()

	assert.True(t, a.Equals(b))
	assert.True(t, a.Equals(&b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(money{1, "EUR"}))
	assert.False(t, a.Equals(nil))
}

func TestIdentifierFromUUID(t *testing.T) {
	u := uuid.New()

	id, err := domain.IdentifierFromUUID(u)
	require.NoError(t, err)
	assert.Equal(t, u, id.UUID())

	_, err = domain.IdentifierFromUUID(uuid.Nil)
	assert.ErrorIs(t, err, domain.ErrInvalidIdentifier)
}

func TestIdentifier_ZeroValue(t *testing.T) {
	var id domain.Identifier

	assert.True(t, id.IsZero())
	assert.Equal(t, uuid.Nil, id.UUID())
	assert.Equal(t, "", id.String())
}
