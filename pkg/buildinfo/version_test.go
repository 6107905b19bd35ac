package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := Version
	t.Cleanup(func() { Version = old })
	Version = "v9.9.9"

	if s := String(); !strings.Contains(s, "version: v9.9.9") {
		t.Errorf("String() = %q", s)
	}
	if s := Template(); !strings.HasPrefix(s, "{{.Name}} version v9.9.9") {
		t.Errorf("Template() = %q", s)
	}
	if got := Get(); got.Version != "v9.9.9" || got.Commit != Commit {
		t.Errorf("Get() = %+v", got)
	}
}
