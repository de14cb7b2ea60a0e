package dialplan

import "testing"

func TestCheckVariablesSuccess(t *testing.T) {
	tests := []string{
		"",
		"no references here",
		"${foo}",
		"${foo}${bar}",
		"$[1 + 2]",
		"$[1+${x}]",
		"${outer${inner}}",
		"$[a[0] + b[1]]",
		"price is $5", // bare $ is inert
		"trailing $",
		"$(not a reference)",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			v := NewValidator(nil)
			if !v.checkVariables(input) {
				t.Errorf("checkVariables(%q) = false, want true", input)
			}
			if n := v.Result().Errors; n != 0 {
				t.Errorf("Errors = %d, want 0", n)
			}
		})
	}
}

func TestCheckVariablesFailure(t *testing.T) {
	tests := []struct {
		input string
		kinds []Kind
	}{
		{"${foo", []Kind{KindUnclosedVariable}},
		{"${outer${inner}", []Kind{KindUnclosedVariable}},
		{"$[1 + 2", []Kind{KindUnclosedExpression}},
		{"$[a[0]", []Kind{KindUnclosedExpression}},
		{"${a} then $[b", []Kind{KindUnclosedExpression}},
		{"$[b then ${a}", []Kind{KindUnclosedExpression}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v := NewValidator(nil)
			if v.checkVariables(tt.input) {
				t.Fatalf("checkVariables(%q) = true, want false", tt.input)
			}
			res := v.Result()
			if res.Errors != len(tt.kinds) {
				t.Fatalf("Errors = %d, want %d", res.Errors, len(tt.kinds))
			}
			for i, want := range tt.kinds {
				if got := res.Diagnostics[i].Kind; got != want {
					t.Errorf("Diagnostics[%d].Kind = %v, want %v", i, got, want)
				}
			}
		})
	}
}
