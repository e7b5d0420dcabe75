package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null"
)

func TestRelationshipTypeValid(t *testing.T) {
	valid := []RelationshipType{RelationshipOwner, RelationshipTenant, RelationshipOther}
	for _, r := range valid {
		assert.True(t, r.Valid(), string(r))
	}

	invalid := []RelationshipType{"", "owner", "LANDLORD", "OWNER "}
	for _, r := range invalid {
		assert.False(t, r.Valid(), string(r))
	}
}

func TestAddressJSONShape(t *testing.T) {
	address := Address{
		ID:    "0b0f8a53-9a62-4a51-a8a4-6a5e4d2e8b11",
		Line1: "1 Main St",
		Line2: null.StringFrom("Apt 2"),
		City:  "Springfield",
	}

	raw, err := json.Marshal(address)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, "1 Main St", fields["line1"])
	assert.Equal(t, "Apt 2", fields["line2"])
	assert.Nil(t, fields["line3"], "absent optional lines marshal as null")
	assert.Contains(t, fields, "state_or_province")
	assert.Contains(t, fields, "address_type_code")
}
