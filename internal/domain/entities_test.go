package domain

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		entity interface{ Validate() error }
		fields []string
	}{
		{"center ok", Center{Name: "Centre A", Address: "123 St", TotalLocals: 10, AvailableLocals: 10}, nil},
		{"center more available than total", Center{Name: "Centre A", Address: "123 St", TotalLocals: 2, AvailableLocals: 5}, nil},
		{"center missing name and address", Center{}, []string{"name", "address"}},
		{"local ok", Local{Number: "A-01", CenterID: "c1", Status: LocalAvailable}, nil},
		{"local bad status", Local{Number: "A-01", CenterID: "c1", Status: "sold"}, []string{"status"}},
		{"local missing center", Local{Number: "A-01", Status: LocalRented}, []string{"centerId"}},
		{"owner missing names", Owner{Email: "x@y.ma"}, []string{"firstName", "lastName"}},
		{"owner bad email", Owner{FirstName: "Amina", LastName: "Alaoui", Email: "nope"}, []string{"email"}},
		{"activity bad type", Activity{Name: "Café", Type: "bar"}, []string{"type"}},
		{"activity ok", Activity{Name: "Café", Type: ActivityRestaurant}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.entity.Validate()
			if len(tc.fields) == 0 {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if len(ve.Violations) != len(tc.fields) {
				t.Fatalf("expected fields %v, got %v", tc.fields, ve.Violations)
			}
			for _, f := range tc.fields {
				if _, ok := ve.Violations[f]; !ok {
					t.Fatalf("missing violation for %s: %v", f, ve.Violations)
				}
			}
		})
	}
}

func TestFullName(t *testing.T) {
	if got := (Owner{FirstName: "Youssef", LastName: "Benali"}).FullName(); got != "Youssef Benali" {
		t.Fatalf("got %q", got)
	}
	if got := JoinName("", "Benali"); got != "Benali" {
		t.Fatalf("got %q", got)
	}
}

func TestErrorKinds(t *testing.T) {
	if !errors.Is(NetworkError("connection refused"), ErrNetwork) {
		t.Fatal("expected ErrNetwork")
	}
	if !errors.Is(NotFound("centers", "x"), ErrNotFound) {
		t.Fatal("expected ErrNotFound")
	}
	if !errors.Is(Invalid("type", "invalid_choice", "bad type %q", "bar"), ErrValidation) {
		t.Fatal("expected ErrValidation")
	}
}
