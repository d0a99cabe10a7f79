package handler

import (
	"fmt"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9(][0-9 ().-]{2,62}$`)

// phone accepts loosely formatted phone numbers like "555-0100" or "+45 12 34 56 78".
func phone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// RegisterValidation Inspiration: https://blog.logrocket.com/gin-binding-in-go-a-tutorial-with-examples/
func RegisterValidation() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation("phone", phone)
	}
	return fmt.Errorf("error getting validation engine")
}
