// internal/qleverfile/qleverfile_test.go
package qleverfile

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestNames(t *testing.T) {
	names := Names()
	want := []string{"dblp", "olympics", "scientists", "wikidata"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], n)
		}
	}
}

func TestTemplateUnknownName(t *testing.T) {
	_, err := Template("nonexistent")
	if err == nil {
		t.Fatal("expected an error for an unknown config name")
	}
	if !strings.Contains(err.Error(), "olympics") {
		t.Errorf("error should list the available configs, got %q", err)
	}
}

func TestRenderSetsAccessToken(t *testing.T) {
	content, err := Render("olympics", Overrides{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	tokenLine := regexp.MustCompile(`(?m)^ACCESS_TOKEN = olympics_[A-Za-z0-9]{12}$`)
	if !tokenLine.MatchString(content) {
		t.Errorf("ACCESS_TOKEN not filled in:\n%s", content)
	}
	// Two renders must not produce the same token.
	again, err := Render("olympics", Overrides{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if tokenLine.FindString(content) == tokenLine.FindString(again) {
		t.Error("ACCESS_TOKEN must be random per render")
	}
}

func TestRenderOverrides(t *testing.T) {
	content, err := Render("olympics", Overrides{Port: 9999, Timeout: "120s", System: "native"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{
		"PORT         = 9999",
		"TIMEOUT            = 120s",
		"SYSTEM = native",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("rendered Qleverfile missing %q:\n%s", want, content)
		}
	}
	if strings.Contains(content, "7019") {
		t.Error("default PORT must be replaced, not duplicated")
	}
}

func TestRenderLeavesOtherSectionsAlone(t *testing.T) {
	content, err := Render("olympics", Overrides{System: "podman"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// NAME lives in [data] and must not be touched by [runtime] overrides.
	if !strings.Contains(content, "NAME         = olympics") {
		t.Error("[data] section was modified")
	}
	if !strings.Contains(content, "SYSTEM = podman") {
		t.Error("SYSTEM override not applied")
	}
}

func TestSetValueInsertsMissingKey(t *testing.T) {
	in := "[server]\nPORT = 1\n\n[runtime]\nSYSTEM = docker\n"
	out := setValue(in, "server", "ACCESS_TOKEN", "tok")
	if !strings.Contains(out, "[server]\nACCESS_TOKEN = tok\nPORT = 1") {
		t.Errorf("missing key not inserted after the section header:\n%s", out)
	}
}

func TestWriteConfig(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteConfig(dir, "scientists", Overrides{Port: 7777})
	if err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if path != filepath.Join(dir, "Qleverfile") {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "PORT         = 7777") {
		t.Error("written Qleverfile missing the port override")
	}

	if _, err := WriteConfig(dir, "scientists", Overrides{}); err == nil {
		t.Fatal("second WriteConfig must refuse to overwrite")
	}
}
