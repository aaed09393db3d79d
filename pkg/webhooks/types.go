// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// KratosIdentity carries the subset of the Kratos identity the login
// hook needs.
type KratosIdentity struct {
	ID string `json:"id"`
}

// LoginPayload is the body Kratos posts on the login after hook.
type LoginPayload struct {
	Identity KratosIdentity `json:"identity"`
	Method   string         `json:"method"`
}

// HookError mirrors the error shape Kratos expects from a web hook
// that rejects the flow.
type HookError struct {
	Messages []HookErrorMessage `json:"messages"`
}

type HookErrorMessage struct {
	Messages []HookErrorDetail `json:"messages"`
}

type HookErrorDetail struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"`
}
