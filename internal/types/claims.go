// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for claim access.
var (
	ErrClaimNotFound = errors.New("claim not found")
	ErrClaimInvalid  = errors.New("claim has unexpected type")
)

// Claims holds the identity assertions returned by the provider, either
// from the token payload or from the userinfo endpoint. Access to a
// missing claim fails explicitly instead of coercing to a zero value.
type Claims map[string]interface{}

// Has reports whether the named claim is present.
func (c Claims) Has(name string) bool {
	_, ok := c[name]
	return ok
}

// String returns the named claim as a string.
func (c Claims) String(name string) (string, error) {
	v, ok := c[name]
	if !ok {
		return "", fmt.Errorf("%q: %w", name, ErrClaimNotFound)
	}

	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%q: %w", name, ErrClaimInvalid)
	}

	return s, nil
}

// Subject returns the standard "sub" claim.
func (c Claims) Subject() (string, error) {
	return c.String("sub")
}
