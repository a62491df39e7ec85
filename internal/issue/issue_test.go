// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	t.Parallel()

	if EnvFileNotFoundId != 1 {
		t.Errorf("EnvFileNotFoundId = %d, want 1", EnvFileNotFoundId)
	}

	for id, i := range issues {
		if i.id != id {
			t.Errorf("issues[%d] holds issue %d", id, i.id)
		}
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	for _, id := range []Id{
		EnvFileNotFoundId,
		EnvFileUnreadableId,
		CommandNotFoundId,
		CommandStartFailedId,
		ConfigLoadFailedId,
		InvalidRuntimeModeId,
		PermissionDeniedId,
	} {
		i := Get(id)
		if i == nil {
			t.Errorf("Get(%d) returned nil", id)
			continue
		}
		if strings.TrimSpace(string(i.mdMsg)) == "" {
			t.Errorf("Get(%d) has no message", id)
		}
	}

	if Get(Id(9999)) != nil {
		t.Error("Get(9999) should return nil")
	}
}

func TestIssue_ConfigLoadFailedLinksCUEDocs(t *testing.T) {
	t.Parallel()

	out, err := Get(ConfigLoadFailedId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "cuelang.org/docs") {
		t.Errorf("config issue should link to the CUE documentation:\n%s", out)
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	out, err := Get(EnvFileNotFoundId).Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "Env file not found") {
		t.Errorf("Render() output missing title:\n%s", out)
	}
}

func TestIssue_RenderAppendsLinks(t *testing.T) {
	t.Parallel()

	i := &Issue{
		id:       1,
		mdMsg:    "# Title",
		extLinks: []HttpLink{"https://example.com/help"},
	}
	out, err := i.Render("notty")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "See also") || !strings.Contains(out, "example.com/help") {
		t.Errorf("Render() output missing links:\n%s", out)
	}
}
