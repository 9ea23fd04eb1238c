package dto

import (
	"strings"

	contactModel "bitsa_backend/internals/features/contact/messages/model"
	helper "bitsa_backend/internals/helpers"
)

type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (r *CreateContactMessageRequest) Normalize() {
	r.Name = helper.PlainText(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Subject = helper.PlainText(r.Subject)
	r.Message = helper.PlainText(r.Message)
}

func (r *CreateContactMessageRequest) ToModel() *contactModel.ContactMessageModel {
	return &contactModel.ContactMessageModel{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}
