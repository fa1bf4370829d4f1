//go:build leadingplus

package scanner

const allowLeadingPlus = true
