package models

import (
	"github.com/volatiletech/null"
)

// RelationshipType classifies how a user is related to an address.
type RelationshipType string

const (
	RelationshipOwner  RelationshipType = "OWNER"
	RelationshipTenant RelationshipType = "TENANT"
	RelationshipOther  RelationshipType = "OTHER"
)

// Valid reports whether the relationship type is one of the allowed values.
func (r RelationshipType) Valid() bool {
	switch r {
	case RelationshipOwner, RelationshipTenant, RelationshipOther:
		return true
	}
	return false
}

// Address is one physical/mailing address row.
type Address struct {
	ID                 string      `json:"id" db:"id"`
	AddressTypeCode    string      `json:"address_type_code" db:"address_type_code"`
	IsPrimary          bool        `json:"is_primary" db:"is_primary"`
	Name               string      `json:"name" db:"name"`
	PrimaryContactName string      `json:"primary_contact_name" db:"primary_contact_name"`
	Line1              string      `json:"line1" db:"line1" validate:"required"`
	Line2              null.String `json:"line2" db:"line2"`
	Line3              null.String `json:"line3" db:"line3"`
	City               string      `json:"city" db:"city"`
	StateOrProvince    string      `json:"state_or_province" db:"state_or_province"`
	Country            string      `json:"country" db:"country"`
	Zipcode            string      `json:"zipcode" db:"zipcode"`
}

// UserRelation links a user to an address with a relationship kind.
type UserRelation struct {
	ID               string           `json:"id" db:"user_id"`
	RelationshipType RelationshipType `json:"relationship_type" db:"relationship_type" validate:"required,oneof=OWNER TENANT OTHER"`
}

// RelationTypeCount is one row of the per-type relation tally.
type RelationTypeCount struct {
	RelationshipType RelationshipType `db:"relationship_type"`
	Count            int              `db:"count"`
}

// CreateAddressRequest is the POST::/address body.
type CreateAddressRequest struct {
	User    UserRelation `json:"user"`
	Address Address      `json:"address"`
}

// UpdateAddressRequest is the PUT::/address/{id} body; the user id selects the
// relationship row to retarget.
type UpdateAddressRequest struct {
	User    UserRelation `json:"user"`
	Address Address      `json:"address"`
}

type Response struct {
	Message string `json:"message"`
}

type CreateAddressResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
