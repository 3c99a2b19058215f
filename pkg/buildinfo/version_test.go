package buildinfo

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	old := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = old[0], old[1], old[2] })

	Version, Commit, Date = "v1.2.3", "abc123", "2025-01-01"

	info := Get()
	if info.Version != "v1.2.3" || info.Commit != "abc123" || info.Date != "2025-01-01" {
		t.Errorf("Get() = %+v", info)
	}
	if s := info.String(); s != "v1.2.3 (abc123, 2025-01-01)" {
		t.Errorf("String() = %q", s)
	}
	if tmpl := Template(); !strings.HasPrefix(tmpl, "{{.Name}} version v1.2.3") {
		t.Errorf("Template() = %q", tmpl)
	}
}
