package domain

import (
	"fmt"
	"strings"
)

type Customer struct {
	Name  string
	Email string
}

func NewCustomer(name, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, fmt.Errorf("name is empty")
	}

	return Customer{
		Name:  name,
		Email: strings.TrimSpace(email),
	}, nil
}
