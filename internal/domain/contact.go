package domain

import "time"

// Contact описывает заявку из формы обратной связи
type Contact struct {
	ID          int64
	Name        string
	Email       string
	Message     string
	SubmittedAt time.Time // проставляется хранилищем
}

func NewContact(name, email, message string) *Contact {
	return &Contact{
		Name:    name,
		Email:   email,
		Message: message,
	}
}
