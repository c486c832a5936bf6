package tydi

import "testing"

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"a", true},
		{"snake_case", true},
		{"CamelCase", true},
		{"with_digit_9", true},
		{"a1", true},
		{"", false},
		{"9lives", false},
		{"_leading", false},
		{"trailing_", false},
		{"double__underscore", false},
		{"has-dash", false},
		{"has space", false},
		{"unicode_ß", false},
		{"_", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.name)
			if tt.valid && err != nil {
				t.Errorf("ValidateName(%q) = %v, want nil", tt.name, err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatalf("ValidateName(%q) should have failed", tt.name)
				}
				if code, ok := CodeOf(err); !ok || code != CodeInvalidIdentifier {
					t.Errorf("error code = %v, want %v", code, CodeInvalidIdentifier)
				}
			}
		})
	}
}

func TestPathName_String(t *testing.T) {
	tests := []struct {
		path PathName
		want string
	}{
		{nil, ""},
		{PathName{"a"}, "a"},
		{PathName{"a", "b"}, "a__b"},
		{PathName{"a", "b", "c"}, "a__b__c"},
	}

	for _, tt := range tests {
		if got := tt.path.String(); got != tt.want {
			t.Errorf("String(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}

	if !(PathName{}).IsEmpty() {
		t.Error("empty path should report IsEmpty")
	}
	if (PathName{"a"}).IsEmpty() {
		t.Error("nonempty path should not report IsEmpty")
	}
}

func TestPathName_PrefixSuffix(t *testing.T) {
	base := PathName{"b"}
	pre := base.withPrefix("a")
	suf := base.withSuffix("c")

	if pre.String() != "a__b" {
		t.Errorf("withPrefix = %q, want %q", pre.String(), "a__b")
	}
	if suf.String() != "b__c" {
		t.Errorf("withSuffix = %q, want %q", suf.String(), "b__c")
	}
	// The receiver must stay untouched.
	if base.String() != "b" {
		t.Errorf("receiver mutated: %q", base.String())
	}
}
