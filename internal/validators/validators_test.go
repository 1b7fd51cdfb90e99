package validators

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type registerForm struct {
	Email           string `form:"email" label:"Email" validate:"required,email"`
	Password        string `form:"password" label:"Password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"eqfield=Password"`
	FullName        string `form:"full_name" label:"Full name" validate:"required"`
}

type slotForm struct {
	Date string `form:"date" validate:"required,isodate"`
	Time string `form:"time" validate:"required,clock"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	if err := RegisterOn(v); err != nil {
		t.Fatalf("register: %v", err)
	}
	return v
}

func TestMessages_RegisterForm(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(registerForm{
		Email:           "ana@example.com",
		Password:        "12345",
		ConfirmPassword: "54321",
	})
	msgs := Messages(err)

	want := []string{
		"Password must be at least 6 characters",
		"Passwords do not match",
		"Full name is required",
	}
	if len(msgs) != len(want) {
		t.Fatalf("expected %v, got %v", want, msgs)
	}
	for i := range want {
		if msgs[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, msgs)
		}
	}
}

func TestCustomTags(t *testing.T) {
	v := newValidator(t)

	if err := v.Struct(slotForm{Date: "2030-01-07", Time: "09:30"}); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}
	if err := v.Struct(slotForm{Date: "2030-01-07", Time: "09:30:00"}); err != nil {
		t.Fatalf("seconds form rejected: %v", err)
	}

	err := v.Struct(slotForm{Date: "07/01/2030", Time: "9h"})
	msgs := Messages(err)
	if len(msgs) != 2 || msgs[0] != "date must be a date like 2030-01-31" || msgs[1] != "time must be a time like 09:30" {
		t.Fatalf("unexpected messages %v", msgs)
	}
}

func TestMessages_NonValidationError(t *testing.T) {
	if First(errors.New("EOF")) != "Invalid form submission" {
		t.Fatalf("expected generic message")
	}
}
