package cmd

import (
	"strings"
	"testing"
)

func TestConfigSetGet(t *testing.T) {
	env := newTestEnv(t)

	env.run("config", "--local", "render.list_marker", "-")

	out := env.run("config", "render.list_marker")
	if strings.TrimSpace(out) != "-" {
		t.Errorf("config get = %q, want -", out)
	}

	// The fmt command picks up the configured marker.
	env.write("doc.md", "* item\n")
	if got := env.run("fmt", "doc.md"); got != "- item\n" {
		t.Errorf("fmt with configured marker = %q, want %q", got, "- item\n")
	}
}

func TestConfigList(t *testing.T) {
	env := newTestEnv(t)

	env.run("config", "--local", "author.name", "Test User")

	out := env.run("config")
	if !strings.Contains(out, "author.name") || !strings.Contains(out, "Test User") {
		t.Errorf("config list missing set value:\n%s", out)
	}
}

func TestConfigRejectsInvalid(t *testing.T) {
	env := newTestEnv(t)

	if out, err := env.runErr("config", "--local", "render.list_marker", "x"); err == nil {
		t.Errorf("invalid marker accepted: %s", out)
	}
	if out, err := env.runErr("config", "--local", "no.such.key", "v"); err == nil {
		t.Errorf("unknown key accepted: %s", out)
	}
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("version")
	for _, want := range []string{"Build Tag:", "Go Version:", "Platform:"} {
		if !strings.Contains(out, want) {
			t.Errorf("version output missing %q:\n%s", want, out)
		}
	}

	short := env.run("version", "--short")
	if strings.TrimSpace(short) != "dev" {
		t.Errorf("short version = %q, want dev", short)
	}
}
