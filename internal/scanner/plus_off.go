//go:build !leadingplus

package scanner

// allowLeadingPlus is off by default: the strict interchange grammar and the
// C++ from_chars grammar both reject "+1".
const allowLeadingPlus = false
