// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"testing"
	"time"
)

func TestEnvSpec_Validate(t *testing.T) {
	valid := EnvSpec{
		UserLookupMode: "email",
		TokenCacheTTL:  time.Minute,
		TokenCacheSize: 1024,
		KratosAdminURL: "http://kratos:4434",
		Port:           8080,
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}

	invalidMode := valid
	invalidMode.UserLookupMode = "username"
	if err := invalidMode.Validate(); err == nil {
		t.Error("expected validation error for unknown lookup mode")
	}

	invalidSize := valid
	invalidSize.TokenCacheSize = 0
	if err := invalidSize.Validate(); err == nil {
		t.Error("expected validation error for zero cache size")
	}
}
