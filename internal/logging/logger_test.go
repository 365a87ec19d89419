// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	logger := NewLogger("DEBUG")
	if logger.Security() == nil {
		t.Error("expected security logger to be set")
	}
}

func TestInvalidLevel(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid level")
		}
	}()
	NewLogger("invalid")
}

func TestNoopLogger(t *testing.T) {
	logger := NewNoopLogger()
	logger.Infof("discarded %s", "message")
	logger.Security().SystemStartup()
}
