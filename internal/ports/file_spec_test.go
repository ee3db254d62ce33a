package ports

import "testing"

func TestNewFileSpec_StrategyPriority(t *testing.T) {
	tmpl := func(*FileSpec, *PlatformConfig, *Dictionary) ([]byte, error) { return []byte("t"), nil }
	format := func(*FileSpec, *PlatformConfig, *Dictionary) ([]byte, error) { return []byte("f"), nil }

	tests := []struct {
		name     string
		template ContentFunc
		format   ContentFunc
		wantKind StrategyKind
		wantOut  string
	}{
		{"template only", tmpl, nil, StrategyTemplate, "t"},
		{"format only", nil, format, StrategyFormat, "f"},
		{"both prefers template", tmpl, format, StrategyTemplate, "t"},
		{"neither", nil, nil, StrategyNone, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := NewFileSpec("out.txt", tc.template, tc.format)
			if fs.Strategy.Kind != tc.wantKind {
				t.Fatalf("Kind = %v, want %v", fs.Strategy.Kind, tc.wantKind)
			}
			if tc.wantKind == StrategyNone {
				if fs.Strategy.Fn != nil {
					t.Errorf("expected nil Fn for StrategyNone")
				}
				return
			}
			got, err := fs.Strategy.Fn(fs, nil, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tc.wantOut {
				t.Errorf("strategy output = %q, want %q", got, tc.wantOut)
			}
		})
	}
}

func TestFileSpec_Option(t *testing.T) {
	fs := NewFileSpec("a.css", nil, nil)
	fs.Options["selector"] = ".dark"
	fs.Options["empty"] = ""

	if got := fs.Option("selector", ":root"); got != ".dark" {
		t.Errorf("Option(selector) = %q, want .dark", got)
	}
	if got := fs.Option("empty", "x"); got != "x" {
		t.Errorf("Option(empty) = %q, want default", got)
	}
	if got := fs.Option("missing", "y"); got != "y" {
		t.Errorf("Option(missing) = %q, want default", got)
	}
}

func TestDictionary_Filter(t *testing.T) {
	d := &Dictionary{AllProperties: []Token{
		{Name: "color-red", Category: "color"},
		{Name: "size-sm", Category: "size"},
		{Name: "color-blue", Category: "color"},
	}}
	if got := d.Filter(""); len(got) != 3 {
		t.Errorf("Filter(\"\") len = %d, want 3", len(got))
	}
	got := d.Filter("color")
	if len(got) != 2 || got[0].Name != "color-red" || got[1].Name != "color-blue" {
		t.Errorf("Filter(color) = %v", got)
	}
	if len(d.AllProperties) != 3 {
		t.Errorf("Filter mutated dictionary")
	}
}
