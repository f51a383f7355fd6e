package validation

import (
	"testing"

	"github.com/stratakit/strata/errors"
)

type createRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"gte=0,lte=150"`
}

func TestStructValid(t *testing.T) {
	req := createRequest{Name: "Ada", Email: "ada@example.com", Age: 36}
	if err := Struct(req); err != nil {
		t.Errorf("expected valid struct, got %v", err)
	}
}

func TestStructMissingRequired(t *testing.T) {
	req := createRequest{Email: "ada@example.com"}
	err := Struct(req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}

	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok {
		t.Fatalf("expected field details, got %v", appErr.Details)
	}
	if len(fields) != 1 || fields[0].Field != "name" {
		t.Errorf("expected failure on 'name' (json tag), got %v", fields)
	}
	if fields[0].Message != "is required" {
		t.Errorf("expected 'is required', got %q", fields[0].Message)
	}
}

func TestStructBadEmail(t *testing.T) {
	req := createRequest{Name: "Ada", Email: "not-an-email"}
	err := Struct(req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	appErr, _ := errors.AsAppError(err)
	fields := appErr.Details["fields"].([]FieldError)
	if fields[0].Field != "email" || fields[0].Message != "must be a valid email address" {
		t.Errorf("unexpected field error: %v", fields[0])
	}
}

func TestStructMultipleFailures(t *testing.T) {
	req := createRequest{Age: 200}
	err := Struct(req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	appErr, _ := errors.AsAppError(err)
	fields := appErr.Details["fields"].([]FieldError)
	if len(fields) != 3 {
		t.Errorf("expected 3 field errors, got %d: %v", len(fields), fields)
	}
}

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"Name":      "name",
		"CreatedAt": "created_at",
		"ID":        "i_d",
	}
	for in, want := range cases {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
