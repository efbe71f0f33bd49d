package config

import "testing"

func TestFormatOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opts []string
		want string
	}{
		{[]string{"a"}, `"a"`},
		{[]string{"a", "b"}, `"a" or "b"`},
		{[]string{"a", "b", "c"}, `"a", "b", or "c"`},
	}
	for _, tt := range tests {
		if got := formatOptions(tt.opts); got != tt.want {
			t.Errorf("formatOptions(%v) = %q, want %q", tt.opts, got, tt.want)
		}
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	kinds := []string{"stash", "github", "gitlab", "gitorious", "bitbucket"}
	tests := []struct {
		value string
		want  string
	}{
		{"githb", "github"},
		{"gtlab", "gitlab"},
		{"GitHub", "github"},
		{"bitbucket-cloud", "bitbucket"},
		{"sourcehut", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			if got := Suggest(tt.value, kinds); got != tt.want {
				t.Errorf("Suggest(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateEnum(t *testing.T) {
	t.Parallel()

	if err := validateEnum("", "backend", ValidBackends); err != nil {
		t.Errorf("empty value: %v", err)
	}
	if err := validateEnum("go-git", "backend", ValidBackends); err != nil {
		t.Errorf("valid value: %v", err)
	}
	err := validateEnum("gogit", "backend", ValidBackends)
	want := `invalid backend "gogit": must be "exec" or "go-git" (did you mean "go-git"?)`
	if err == nil || err.Error() != want {
		t.Errorf("validateEnum(gogit) = %v, want %q", err, want)
	}
}
