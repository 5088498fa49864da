package reservation

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var phoneRegex = regexp.MustCompile(`^\+?[0-9 ()\-]{6,20}$`)

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (c Customer) normalized() Customer {
	return Customer{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.ToLower(strings.TrimSpace(c.Email)),
		Phone: strings.TrimSpace(c.Phone),
	}
}

func (c Customer) validate() error {
	switch {
	case c.Name == "":
		return validationError("Name is required")
	case !emailRegex.MatchString(c.Email):
		return validationError("A valid email address is required")
	case c.Phone == "":
		return validationError("Phone number is required")
	case !phoneRegex.MatchString(c.Phone):
		return validationError("Phone number is invalid")
	}
	return nil
}
