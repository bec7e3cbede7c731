package models

import (
	"fmt"
	"strings"
)

const notAvailable = "N/A"

// AppBuildInfo is the linker-injected version data of a binary.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo trims the injected values; empty ones are reported as N/A.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: strings.TrimSpace(version),
		Date:    strings.TrimSpace(date),
		Commit:  strings.TrimSpace(commit),
	}
}

// Fields returns label/value pairs in display order.
func (a AppBuildInfo) Fields() [][2]string {
	return [][2]string{
		{"Version", orNotAvailable(a.Version)},
		{"Date", orNotAvailable(a.Date)},
		{"Commit", orNotAvailable(a.Commit)},
	}
}

func (a AppBuildInfo) String() string {
	var b strings.Builder
	for _, f := range a.Fields() {
		fmt.Fprintf(&b, "Build %s: %s\n", strings.ToLower(f[0]), f[1])
	}
	return b.String()
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
