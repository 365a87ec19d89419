// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"sort"

	"github.com/canonical/account-service/internal/types"
)

// implications maps each permission to the permissions it carries with it.
var implications = map[types.Permission][]types.Permission{
	types.PermOwner:          {types.PermAdmin, types.PermAccountManager, types.PermCreateProjects},
	types.PermAdmin:          {types.PermCreateProjects},
	types.PermAccountManager: {},
	types.PermCreateProjects: {},
}

// ExpandPermissions returns the given permissions together with every
// permission they imply, deduplicated and sorted.
func ExpandPermissions(permissions ...types.Permission) []types.Permission {
	seen := map[types.Permission]bool{}
	var visit func(p types.Permission)
	visit = func(p types.Permission) {
		if seen[p] {
			return
		}
		seen[p] = true
		for _, implied := range implications[p] {
			visit(implied)
		}
	}

	for _, p := range permissions {
		visit(p)
	}

	expanded := make([]types.Permission, 0, len(seen))
	for p := range seen {
		expanded = append(expanded, p)
	}
	sort.Slice(expanded, func(i, j int) bool { return expanded[i] < expanded[j] })

	return expanded
}
