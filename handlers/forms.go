package handlers

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type signupForm struct {
	Username string `validate:"required,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	ImageURL string `validate:"omitempty,url"`
}

type loginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required,min=6"`
}

type messageForm struct {
	Text string `validate:"required,max=140"`
}

type profileForm struct {
	Username       string `validate:"required,max=50"`
	Email          string `validate:"required,email"`
	ImageURL       string `validate:"omitempty,url"`
	HeaderImageURL string `validate:"omitempty,url"`
	Bio            string `validate:"max=280"`
	Location       string `validate:"max=100"`
	Password       string `validate:"required,min=6"`
	Private        bool
}

type directMessageForm struct {
	Text string `validate:"required,min=6,max=140"`
}

// validateForm runs the struct validators and maps failures to the flash
// wording the forms have always used.
func validateForm(form interface{}) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	msgs := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		msgs["Form"] = "Invalid input"
		return msgs
	}
	for _, fe := range verrs {
		msgs[fe.Field()] = fieldMessage(fe)
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return "You have to enter a " + field
	case "email":
		return "You have to enter a valid email address"
	case "min":
		return "The " + field + " must be at least " + fe.Param() + " characters"
	case "max":
		return "The " + field + " must be at most " + fe.Param() + " characters"
	case "url":
		return "The " + field + " must be a valid URL"
	}
	return "Invalid " + field
}
