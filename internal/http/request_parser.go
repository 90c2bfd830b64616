// Package http provides HTTP server and handler implementations.
//
// This file implements utilities for parsing and validating HTTP request
// data: the savings-plan form values and the email-send form.

package http

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"finanzassistent/internal/core"
)

// ParsePlanParams extracts the savings goal and horizon from request
// values, falling back to the given defaults for absent fields. A value
// that is present but not a number, or a plan that fails validation, is
// an input error: the run must halt before any computation.
func ParsePlanParams(values url.Values, defaults core.SavingsPlan) (core.SavingsPlan, error) {
	plan := defaults

	if v := strings.TrimSpace(values.Get("sparziel")); v != "" {
		goal, err := decimal.NewFromString(v)
		if err != nil {
			return core.SavingsPlan{}, fmt.Errorf("ungültiges Sparziel %q", v)
		}
		plan.Goal = goal
	}
	if v := strings.TrimSpace(values.Get("zeitraum")); v != "" {
		horizon, err := strconv.Atoi(v)
		if err != nil {
			return core.SavingsPlan{}, fmt.Errorf("ungültiger Zeitraum %q", v)
		}
		plan.HorizonMonths = horizon
	}

	if err := plan.Validate(); err != nil {
		return core.SavingsPlan{}, err
	}
	return plan, nil
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
