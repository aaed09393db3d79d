// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// User is a handle to an account in the user directory. The directory
// owns the record, the bridge only borrows it for the request.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	// Backend identifies the directory backend class the account
	// belongs to, e.g. the identity schema it was created with.
	Backend string `json:"backend"`
}
