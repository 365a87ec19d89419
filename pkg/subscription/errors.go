// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package subscription

import "errors"

var ErrUnknownPlan = errors.New("unknown plan")
