package leads

import (
	"strings"
	"testing"
)

func TestValidate_Success(t *testing.T) {
	req, errs := Validate(Submission{
		Email:     "  Jane@Example.COM ",
		FirstName: "  Jane ",
		LastName:  " Doe ",
		Phone:     " 555-0147 ",
		Location:  "Cedar Rapids",
	}, SourceContactPage)

	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if req.Email != "jane@example.com" {
		t.Errorf("Email = %q, want lowercased+trimmed", req.Email)
	}
	if req.FirstName != "Jane" || req.LastName != "Doe" {
		t.Errorf("names not trimmed: %q %q", req.FirstName, req.LastName)
	}
	if req.Phone != "555-0147" {
		t.Errorf("Phone = %q, want trimmed", req.Phone)
	}
	if req.Source != SourceContactPage {
		t.Errorf("Source = %q, want default applied", req.Source)
	}
}

func TestValidate_SourcePassthrough(t *testing.T) {
	req, errs := Validate(Submission{
		Email:     "jane@example.com",
		FirstName: "Jane",
		Source:    "spring-promo",
	}, SourceGuideLanding)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if req.Source != "spring-promo" {
		t.Errorf("Source = %q, want caller value kept", req.Source)
	}
}

func TestValidate_EmailRules(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{"missing", ""},
		{"whitespace only", "   "},
		{"no at sign", "janeexample.com"},
		{"no dot in domain", "jane@example"},
		{"embedded space", "jane doe@example.com"},
		{"double at", "jane@@example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, errs := Validate(Submission{Email: tt.email, FirstName: "Jane"}, SourceContactPage)
			if req != nil {
				t.Fatal("expected nil request for invalid email")
			}
			if len(errs) != 1 || !strings.Contains(strings.ToLower(errs[0]), "email") {
				t.Errorf("errors = %v, want one email-related message", errs)
			}
		})
	}
}

func TestValidate_FirstNameRequired(t *testing.T) {
	req, errs := Validate(Submission{Email: "jane@example.com", FirstName: "   "}, SourceContactPage)
	if req != nil {
		t.Fatal("expected nil request for blank first name")
	}
	if len(errs) != 1 || !strings.Contains(strings.ToLower(errs[0]), "first name") {
		t.Errorf("errors = %v, want one first-name message", errs)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	req, errs := Validate(Submission{Email: "nope", FirstName: ""}, SourceContactPage)
	if req != nil {
		t.Fatal("expected nil request")
	}
	if len(errs) != 2 {
		t.Fatalf("errors = %v, want both violations collected", errs)
	}
	if errs[0] != msgEmailInvalid || errs[1] != msgFirstNameRequired {
		t.Errorf("errors out of order: %v", errs)
	}
}

func TestValidate_Deterministic(t *testing.T) {
	sub := Submission{Email: "bad", FirstName: ""}
	_, first := Validate(sub, SourceContactPage)
	_, second := Validate(sub, SourceContactPage)
	if len(first) != len(second) {
		t.Fatalf("non-deterministic error count: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("error %d differs: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestLeadName(t *testing.T) {
	l := &Lead{FirstName: "Jane", LastName: ""}
	if l.Name() != "Jane" {
		t.Errorf("Name = %q, want %q", l.Name(), "Jane")
	}
	l.LastName = "Doe"
	if l.Name() != "Jane Doe" {
		t.Errorf("Name = %q, want %q", l.Name(), "Jane Doe")
	}
}
