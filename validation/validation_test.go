package validation

import "testing"

func TestValidators(t *testing.T) {
	v := Violations{}
	Required("name", "  ", v)
	NonNegativeFloat("size", -1, v)
	NonNegativeInt("total", 3, v)
	OneOf("status", "sold", []string{"available", "rented"}, v)
	Email("email", "not-an-email", v)
	Email("optional", "", v)
	MinLength("password", "abc", 6, v)

	want := map[string]string{
		"name":     "required",
		"size":     "must_not_be_negative",
		"status":   "invalid_choice",
		"email":    "invalid_email",
		"password": "too_short",
	}
	if len(v) != len(want) {
		t.Fatalf("expected %d violations got %d: %v", len(want), len(v), v)
	}
	for field, code := range want {
		if v[field] != code {
			t.Fatalf("%s: expected %q got %q", field, code, v[field])
		}
	}
}

func TestEmpty(t *testing.T) {
	v := Violations{}
	Required("name", "Centre A", v)
	OneOf("status", "rented", []string{"available", "rented"}, v)
	if !v.Empty() {
		t.Fatalf("expected no violations, got %v", v)
	}
}
