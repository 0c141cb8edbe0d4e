package models

import "time"

type Registration struct {
	ID           string    `json:"id" yaml:"id"`
	EventID      string    `json:"eventId" yaml:"eventId"`
	EventTitle   string    `json:"eventTitle" yaml:"eventTitle"`
	Name         string    `json:"name" yaml:"name"`
	Email        string    `json:"email" yaml:"email"`
	Phone        string    `json:"phone" yaml:"phone"`
	RegisteredAt time.Time `json:"registeredAt" yaml:"registeredAt"`
}

// RegistrationFields are the user supplied values of the registration form.
type RegistrationFields struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}
