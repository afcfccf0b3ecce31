package commands

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestExpandTemplate(t *testing.T) {
	data := speech{Speaker: "alice", Text: "hello"}

	out, err := ExpandTemplate(`{{ .Speaker | title }} says: "{{ .Text }}"`, data)
	if err != nil {
		t.Fatalf("expanding: %v", err)
	}
	testutil.AssertEqual(t, "expanded", out, `Alice says: "hello"`)

	_, err = ExpandTemplate(`{{ .Speaker`, data)
	testutil.AssertErrorContains(t, err, "parsing template")
}

func TestExpandFallsBackOnBadTemplate(t *testing.T) {
	raw := `{{ .Broken`
	testutil.AssertEqual(t, "fallback", expand(raw, nil), raw)
}
