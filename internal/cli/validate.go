package cli

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validationError is a message about bad input, shown to the user as is.
type validationError string

func (e validationError) Error() string { return string(e) }

var usernameRe = regexp.MustCompile(`^[a-z0-9._-]+$`)

// validate checks every form the REPL collects before it reaches the API.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

type postForm struct {
	Title   string `validate:"required"`
	Content string `validate:"required"`
}

type memberForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Username string `validate:"required,username"`
}

func validatePost(title, content string) error {
	return checkForm(postForm{
		Title:   strings.TrimSpace(title),
		Content: strings.TrimSpace(content),
	})
}

func validateMember(name, email, username string) error {
	return checkForm(memberForm{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Username: username,
	})
}

// checkForm runs the struct rules and reports the first failing field.
func checkForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && len(fields) > 0 {
		return validationError(fieldMessage(fields[0]))
	}
	return err
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " must not be empty"
	case "email":
		return fmt.Sprintf("Invalid email address: %v", fe.Value())
	case "username":
		return "Username may only contain a-z, 0-9, '.', '_' and '-'"
	default:
		return fe.Field() + " is invalid"
	}
}
