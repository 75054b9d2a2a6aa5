// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package render

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/tomtom215/neoexplorer/internal/tracker"
)

// noValue is shown in place of a statistic that has not been observed.
const noValue = "—"

func buildFuncMap() template.FuncMap {
	return template.FuncMap{
		"formatStat":  formatStat,
		"formatCount": formatCount,
		"hazardLabel": hazardLabel,
		"closestStat": closestStat,
	}
}

// formatStat renders v with two decimals and comma-grouped thousands.
func formatStat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	whole, frac, _ := strings.Cut(s, ".")

	sign := ""
	if strings.HasPrefix(whole, "-") {
		sign, whole = "-", whole[1:]
	}
	return sign + groupThousands(whole) + "." + frac
}

func formatCount(n int64) string {
	if n < 0 {
		return "-" + groupThousands(strconv.FormatInt(-n, 10))
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var result strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(c)
	}
	return result.String()
}

func hazardLabel(hazardous bool) string {
	if hazardous {
		return "Potentially hazardous"
	}
	return "Not hazardous"
}

func closestStat(s tracker.State) string {
	if !s.HasClosest() {
		return noValue
	}
	return formatStat(s.Closest)
}
