package ir

import "strconv"

// deriveUniqueInternalName turns a function's (possibly empty, possibly
// already-suffixed) original name into a name unique within m: the
// first function named "foo" keeps "foo"; the second gets "foo 1#", the
// third "foo 2#", and so on. Re-deriving from an already-derived name
// strips the old suffix first, so calling this twice on the same base
// text is idempotent in the sense that it never compounds suffixes
// like "foo 1# 1#", and the number it produces depends only on how many
// times this base has been derived, not on whatever number the input
// happened to carry.
func (m *Module) deriveUniqueInternalName(original string) string {
	base := stripInternalNameSuffix(original)
	if base == "" {
		base = "anonymous"
	}
	n := m.internalNameCounts[base]
	m.internalNameCounts[base] = n + 1
	if n == 0 {
		return base
	}
	return base + " " + strconv.Itoa(n) + "#"
}

// stripInternalNameSuffix removes a trailing " <digits>#" disambiguator
// if one is present, e.g. "foo 3#" -> "foo". A name with no such suffix
// is returned unchanged.
func stripInternalNameSuffix(s string) string {
	if len(s) == 0 || s[len(s)-1] != '#' {
		return s
	}
	end := len(s) - 1
	start := end
	for start > 0 && s[start-1] >= '0' && s[start-1] <= '9' {
		start--
	}
	if start == end || start == 0 || s[start-1] != ' ' {
		return s
	}
	return s[:start-1]
}
