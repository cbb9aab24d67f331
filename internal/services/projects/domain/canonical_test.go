package domain

import (
	"strings"
	"testing"

	perr "repoqa/internal/platform/errors"
)

func TestCanonicalize_AcceptedForms(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"basic", "https://github.com/owner/repo", "https://github.com/owner/repo.git"},
		{"already has git suffix", "https://github.com/owner/repo.git", "https://github.com/owner/repo.git"},
		{"trailing slash", "https://github.com/owner/repo/", "https://github.com/owner/repo.git"},
		{"uppercase", "https://github.com/OWNER/REPO", "https://github.com/owner/repo.git"},
		{"mixed case with suffix", "https://github.com/MyOwner/MyRepo.git", "https://github.com/myowner/myrepo.git"},
		{"owner with hyphens", "https://github.com/my-org/repo", "https://github.com/my-org/repo.git"},
		{"owner with numbers", "https://github.com/user123/repo", "https://github.com/user123/repo.git"},
		{"single char owner", "https://github.com/a/repo", "https://github.com/a/repo.git"},
		{
			"max length owner",
			"https://github.com/thisownerisexactlythirtyninecharacters/repo",
			"https://github.com/thisownerisexactlythirtyninecharacters/repo.git",
		},
		{"repo with underscores", "https://github.com/owner/my_repo", "https://github.com/owner/my_repo.git"},
		{"repo with dots", "https://github.com/owner/repo.name", "https://github.com/owner/repo.name.git"},
		{"single char repo", "https://github.com/owner/a", "https://github.com/owner/a.git"},
		{
			"all valid chars",
			"https://github.com/test-user123/my_repo-name.example",
			"https://github.com/test-user123/my_repo-name.example.git",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Canonicalize(tc.in)
			if err != nil {
				t.Fatalf("Canonicalize(%q) failed: %v", tc.in, err)
			}
			if got.String() != tc.want {
				t.Fatalf("Canonicalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	t.Parallel()

	first, err := Canonicalize("https://github.com/TestOwner/TestRepo")
	if err != nil {
		t.Fatal(err)
	}
	second, err := Canonicalize(first.String())
	if err != nil {
		t.Fatalf("canonical form rejected on second pass: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("not idempotent: %q vs %q", first, second)
	}
}

func TestCanonicalize_CaseSuffixSlashInvariance(t *testing.T) {
	t.Parallel()

	const want = "https://github.com/owner/repo.git"
	for _, in := range []string{
		"https://github.com/Owner/Repo",
		"https://github.com/owner/repo.git",
		"https://github.com/OWNER/REPO/",
	} {
		got, err := Canonicalize(in)
		if err != nil {
			t.Fatalf("Canonicalize(%q) failed: %v", in, err)
		}
		if got.String() != want {
			t.Fatalf("Canonicalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCanonicalize_Rejections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"http scheme", "http://github.com/owner/repo"},
		{"ssh scheme", "ssh://github.com/owner/repo"},
		{"wrong host", "https://gitlab.com/owner/repo"},
		{"subdomain", "https://www.github.com/owner/repo"},
		{"fragment", "https://github.com/owner/repo#readme"},
		{"query", "https://github.com/owner/repo?tab=issues"},
		{"one segment", "https://github.com/owner"},
		{"three segments", "https://github.com/owner/repo/tree"},
		{"no path", "https://github.com"},
		{"owner too long", "https://github.com/" + strings.Repeat("a", 40) + "/repo"},
		{"owner leading hyphen", "https://github.com/-owner/repo"},
		{"owner trailing hyphen", "https://github.com/owner-/repo"},
		{"owner consecutive hyphens", "https://github.com/own--er/repo"},
		{"owner with underscore", "https://github.com/own_er/repo"},
		{"owner with dot", "https://github.com/own.er/repo"},
		{"repo too long", "https://github.com/owner/" + strings.Repeat("a", 101)},
		{"repo leading dot", "https://github.com/owner/.repo"},
		{"repo leading hyphen", "https://github.com/owner/-repo"},
		{"repo leading underscore", "https://github.com/owner/_repo"},
		{"repo trailing dot", "https://github.com/owner/repo..git"},
		{"repo trailing underscore", "https://github.com/owner/repo_.git"},
		{"repo with space", "https://github.com/owner/my repo"},
		{"not a url", "not a url at all"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Canonicalize(tc.in)
			if err == nil {
				t.Fatalf("Canonicalize(%q) unexpectedly succeeded", tc.in)
			}
			if !perr.IsCode(err, perr.ErrorCodeValidation) {
				t.Fatalf("Canonicalize(%q) error code = %v, want validation", tc.in, perr.CodeOf(err))
			}
		})
	}
}

func TestCanonicalize_BoundaryLengthsAccepted(t *testing.T) {
	t.Parallel()

	owner39 := strings.Repeat("a", 39)
	if _, err := Canonicalize("https://github.com/" + owner39 + "/repo"); err != nil {
		t.Fatalf("39 char owner rejected: %v", err)
	}
	repo100 := strings.Repeat("b", 100)
	if _, err := Canonicalize("https://github.com/owner/" + repo100); err != nil {
		t.Fatalf("100 char repo rejected: %v", err)
	}
}

func TestCanonicalURL_MarshalJSON(t *testing.T) {
	t.Parallel()

	c, err := Canonicalize("https://github.com/Owner/Repo")
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"https://github.com/owner/repo.git"` {
		t.Fatalf("MarshalJSON = %s", b)
	}
}
