package route

import (
	"strings"

	"github.com/wayfind-dev/wayfind/internal/errors"
)

// segment is one compiled piece of a pattern.
type segment struct {
	literal string // exact text, when not a capture
	param   string // capture name, when a capture
}

func (s segment) isParam() bool { return s.param != "" }

// Pattern is a compiled route pattern: literal segments plus :name captures.
// A capture matches exactly one non-empty path segment.
type Pattern struct {
	raw      string
	segments []segment
}

// CompilePattern parses and validates a pattern string. Malformed patterns
// (empty segments, captures without a name, duplicate capture names) fail at
// registration time, never at match time.
func CompilePattern(raw string) (*Pattern, error) {
	if raw == "" || !strings.HasPrefix(raw, "/") {
		return nil, errors.New(errors.CodeEmptyPattern, errors.CategoryRegistration,
			"route: pattern must start with /").WithDetailf("pattern %q", raw)
	}

	p := &Pattern{raw: raw}
	if raw == "/" {
		return p, nil
	}

	seen := make(map[string]bool)
	for _, part := range strings.Split(strings.TrimPrefix(raw, "/"), "/") {
		switch {
		case part == "":
			return nil, errors.New(errors.CodeEmptyPattern, errors.CategoryRegistration,
				"route: pattern contains an empty segment").WithDetailf("pattern %q", raw)
		case strings.HasPrefix(part, ":"):
			name := part[1:]
			if name == "" || !validParamName(name) {
				return nil, errors.New(errors.CodeBadParamName, errors.CategoryRegistration,
					"route: malformed capture segment").WithDetailf("pattern %q segment %q", raw, part)
			}
			if seen[name] {
				return nil, errors.New(errors.CodeDuplicateParam, errors.CategoryRegistration,
					"route: duplicate capture name").WithDetailf("pattern %q name %q", raw, name)
			}
			seen[name] = true
			p.segments = append(p.segments, segment{param: name})
		default:
			p.segments = append(p.segments, segment{literal: part})
		}
	}
	return p, nil
}

// MustCompilePattern is CompilePattern that panics on error, for patterns
// known at compile time.
func MustCompilePattern(raw string) *Pattern {
	p, err := CompilePattern(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the original pattern text.
func (p *Pattern) String() string {
	return p.raw
}

// ParamNames returns the capture names in order of appearance.
func (p *Pattern) ParamNames() []string {
	var names []string
	for _, s := range p.segments {
		if s.isParam() {
			names = append(names, s.param)
		}
	}
	return names
}

// match attempts a structural match against already-split path segments.
// Literal segments must match exactly; captures take any non-empty segment.
func (p *Pattern) match(parts []string) (Params, bool) {
	if len(parts) != len(p.segments) {
		return nil, false
	}
	var params Params
	for i, s := range p.segments {
		if s.isParam() {
			if parts[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(Params, 2)
			}
			params[s.param] = parts[i]
			continue
		}
		if s.literal != parts[i] {
			return nil, false
		}
	}
	if params == nil {
		params = Params{}
	}
	return params, true
}

// Build constructs a concrete path from the pattern and a parameter set.
// Matching the result recovers the same parameters. Missing or empty values
// are a registration-category error.
func (p *Pattern) Build(params Params) (string, error) {
	if len(p.segments) == 0 {
		return "/", nil
	}
	var b strings.Builder
	for _, s := range p.segments {
		b.WriteByte('/')
		if !s.isParam() {
			b.WriteString(s.literal)
			continue
		}
		v, ok := params[s.param]
		if !ok || v == "" {
			return "", errors.New(errors.CodeBadParamName, errors.CategoryRegistration,
				"route: missing value for capture").WithDetailf("pattern %q name %q", p.raw, s.param)
		}
		b.WriteString(v)
	}
	return b.String(), nil
}

func validParamName(name string) bool {
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
