package domain

import (
	"github.com/google/uuid"
)

const canonicalUUIDLength = 36

// Identifier is the validated, globally unique identity carried by every entity.
// The zero value is the unset identifier.
type Identifier struct {
	value string
}

// NewIdentifier generates a fresh version-4 identifier.
func NewIdentifier() Identifier {
	return Identifier{value: uuid.NewString()}
}

// ParseIdentifier validates value as a canonical version-4 UUID.
// The original string is preserved so String round-trips the input exactly.
func ParseIdentifier(value string) (Identifier, error) {
	if !isCanonicalV4(value) {
		return Identifier{}, &InvalidIdentifierError{Value: value}
	}
	return Identifier{value: value}, nil
}

// MustParseIdentifier is like ParseIdentifier but panics on invalid input.
func MustParseIdentifier(value string) Identifier {
	id, err := ParseIdentifier(value)
	if err != nil {
		panic(err)
	}
	return id
}

// IdentifierFromUUID wraps an existing uuid.UUID.
func IdentifierFromUUID(id uuid.UUID) (Identifier, error) {
	return ParseIdentifier(id.String())
}

// String returns the identifier exactly as it was supplied or generated.
func (i Identifier) String() string {
	return i.value
}

// UUID returns the parsed form of the identifier, or uuid.Nil when unset.
func (i Identifier) UUID() uuid.UUID {
	if i.IsZero() {
		return uuid.Nil
	}
	return uuid.MustParse(i.value)
}

// IsZero reports whether the identifier is unset.
func (i Identifier) IsZero() bool {
	return i.value == ""
}

// Equals checks whether other is an Identifier with the same value.
func (i Identifier) Equals(other ValueObject) bool {
	if o, ok := other.(Identifier); ok {
		return StructurallyEqual(i, o)
	}
	if o, ok := other.(*Identifier); ok && o != nil {
		return StructurallyEqual(i, *o)
	}
	return false
}

func isCanonicalV4(value string) bool {
	// uuid.Parse also accepts urn:uuid:, braced and unhyphenated forms.
	if len(value) != canonicalUUIDLength {
		return false
	}
	parsed, err := uuid.Parse(value)
	if err != nil {
		return false
	}
	return parsed.Version() == 4 && parsed.Variant() == uuid.RFC4122
}
