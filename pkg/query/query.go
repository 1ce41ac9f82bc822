// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses loosely typed string inputs (URL query values,
// comma separated settings) without failing the caller.
package query

import (
	"strconv"
	"strings"
)

// IntD parses raw as an integer, returning def when raw is empty or invalid.
func IntD(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}

	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	return def
}

// StringSlice splits a comma separated value into trimmed, non-empty items.
// It returns nil when nothing remains.
func StringSlice(raw string) []string {
	var res []string
	for _, v := range strings.Split(raw, ",") {
		if clean := strings.TrimSpace(v); clean != "" {
			res = append(res, clean)
		}
	}
	return res
}
