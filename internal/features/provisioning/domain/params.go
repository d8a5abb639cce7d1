package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"seo-provisioner/internal/core/validation"
)

// Identifier is an id the platform or a vendor may send as a JSON string or number.
type Identifier string

// UnmarshalJSON accepts both "42" and 42.
func (i *Identifier) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*i = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*i = Identifier(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("identifier must be a string or number: %w", err)
	}
	*i = Identifier(n.String())
	return nil
}

// String returns the identifier as text.
func (i Identifier) String() string {
	return string(i)
}

// CustomerAddress is the optional postal address of a customer.
type CustomerAddress struct {
	Address1 string `json:"address1,omitempty"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Postcode string `json:"postcode,omitempty"`
	Country  string `json:"country_code,omitempty"`
}

// CreateParams are the parameters of a create call.
type CreateParams struct {
	// CustomerID is the id of the customer in the billing system.
	CustomerID Identifier `json:"customer_id" validate:"required"`
	// CustomerEmail is the email address of the customer.
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	// CustomerName is the full name of the customer.
	CustomerName string `json:"customer_name,omitempty"`
	// CustomerPhone is in international format.
	CustomerPhone string `json:"customer_phone,omitempty"`
	// CustomerAddress is optional.
	CustomerAddress *CustomerAddress `json:"customer_address,omitempty"`
	// Domain is the domain name the account is for.
	Domain string `json:"domain" validate:"required,hostname_rfc1123"`
	// PackageIdentifier is the service package identifier: a vendor plan id or name.
	PackageIdentifier string `json:"package_identifier" validate:"required"`
	// PromoCodes applied to the order.
	PromoCodes []string `json:"promo_codes,omitempty"`
	// Extra is passed through untouched.
	Extra map[string]any `json:"extra,omitempty"`
	// ServiceID is the product/service id in the billing system.
	ServiceID string `json:"service_id,omitempty"`
}

// AccountIdentifierParams identify an existing vendor account.
type AccountIdentifierParams struct {
	// Username is the vendor account reference returned by create.
	Username Identifier `json:"username" validate:"required"`
	Domain   string     `json:"domain,omitempty"`
	// PackageIdentifier is the package currently bound to the account, if known.
	PackageIdentifier string `json:"package_identifier,omitempty"`
}

// ChangePackageParams move an account to another package.
type ChangePackageParams struct {
	Username          Identifier `json:"username" validate:"required"`
	PackageIdentifier string     `json:"package_identifier" validate:"required"`
}

// Validate checks params against their tags and reports failures as ErrValidation.
func Validate(params any) error {
	err := validation.Struct(params)
	if err == nil {
		return nil
	}

	if validation.IsValidationError(err) {
		return NewError(ErrValidation, err.Error()).
			WithData("fields", validation.Fields(err)).
			WithCause(err)
	}

	return NewError(ErrValidation, "invalid parameters").WithCause(err)
}
