// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package subscription

import (
	"fmt"
	"time"
)

// DefaultPlan is the plan every new account starts on.
const DefaultPlan = "free"

// PlanLimits caps what an account on a given plan can hold.
type PlanLimits struct {
	Projects int `json:"projects"`
	Members  int `json:"members"`
}

// Plan describes a purchasable subscription plan.
type Plan struct {
	Name     string        `json:"name"`
	Duration time.Duration `json:"duration"`
	Limits   PlanLimits    `json:"limits"`
}

// plans is the plan table. Durations are subscription periods, the expiry of
// a new or changed subscription is now + duration.
var plans = map[string]Plan{
	"free": {
		Name:     "free",
		Duration: 365 * 24 * time.Hour,
		Limits:   PlanLimits{Projects: 1, Members: 3},
	},
	"pro": {
		Name:     "pro",
		Duration: 30 * 24 * time.Hour,
		Limits:   PlanLimits{Projects: 10, Members: 25},
	},
	"business": {
		Name:     "business",
		Duration: 30 * 24 * time.Hour,
		Limits:   PlanLimits{Projects: 100, Members: 250},
	},
}

// GetPlan returns the plan definition for the name.
func GetPlan(name string) (Plan, error) {
	p, ok := plans[name]
	if !ok {
		return Plan{}, fmt.Errorf("%w: %s", ErrUnknownPlan, name)
	}
	return p, nil
}

// Plans returns the full plan table.
func Plans() []Plan {
	out := make([]Plan, 0, len(plans))
	for _, name := range []string{"free", "pro", "business"} {
		out = append(out, plans[name])
	}
	return out
}
