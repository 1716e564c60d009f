package buildinfo

import (
	"strings"
	"testing"
)

func TestGetKeepsStampedValues(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02"

	got := Get()
	want := Info{Version: "v1.2.3", Commit: "abc123", Date: "2026-01-02"}
	if got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}

func TestTemplate(t *testing.T) {
	defer func(v string) { Version = v }(Version)
	Version = "v9.9.9"

	if tmpl := Template(); !strings.Contains(tmpl, "version v9.9.9") || !strings.HasPrefix(tmpl, "{{.Name}}") {
		t.Errorf("Template() = %q", tmpl)
	}
}
