package route

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompilePatternRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"empty", ""},
		{"no leading slash", "users"},
		{"empty segment", "/users//list"},
		{"bare colon", "/users/:"},
		{"bad capture name", "/users/:user-id"},
		{"digit-leading capture", "/users/:1id"},
		{"duplicate capture", "/pairs/:id/:id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CompilePattern(tt.pattern); err == nil {
				t.Errorf("CompilePattern(%q) succeeded, want error", tt.pattern)
			}
		})
	}
}

func TestPatternParamNames(t *testing.T) {
	p := MustCompilePattern("/users/:id/posts/:slug")
	want := []string{"id", "slug"}
	if diff := cmp.Diff(want, p.ParamNames()); diff != "" {
		t.Errorf("ParamNames mismatch (-want +got):\n%s", diff)
	}
}

func TestPatternBuildRoundTrip(t *testing.T) {
	tests := []struct {
		pattern string
		params  Params
		want    string
	}{
		{"/", Params{}, "/"},
		{"/about", Params{}, "/about"},
		{"/users/:id", Params{"id": "42"}, "/users/42"},
		{"/users/:id/posts/:slug", Params{"id": "7", "slug": "intro"}, "/users/7/posts/intro"},
	}
	for _, tt := range tests {
		p := MustCompilePattern(tt.pattern)
		got, err := p.Build(tt.params)
		if err != nil {
			t.Fatalf("Build(%q, %v): %v", tt.pattern, tt.params, err)
		}
		if got != tt.want {
			t.Errorf("Build(%q) = %q, want %q", tt.pattern, got, tt.want)
		}

		// Matching the built path recovers the same parameter set.
		recovered, ok := p.match(Split(got))
		if !ok {
			t.Fatalf("built path %q does not match its own pattern", got)
		}
		if diff := cmp.Diff(tt.params, recovered); diff != "" {
			t.Errorf("round-trip params mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestPatternBuildMissingParam(t *testing.T) {
	p := MustCompilePattern("/users/:id")
	if _, err := p.Build(Params{}); err == nil {
		t.Error("Build without the capture value should fail")
	}
	if _, err := p.Build(Params{"id": ""}); err == nil {
		t.Error("Build with an empty capture value should fail")
	}
}
