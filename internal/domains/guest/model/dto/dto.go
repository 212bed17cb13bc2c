package dto

import (
	"mime/multipart"

	"frontdesk/internal/domains/guest/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

// IDProofUpload carries an optional scanned document sent as multipart form data.
type IDProofUpload struct {
	IDProofFile *multipart.FileHeader `json:"-" swaggerignore:"true" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg application/pdf,maxfilesize=5"`
	File        multipart.File        `json:"-"`
}

func (u IDProofUpload) HasFile() bool {
	return u.IDProofFile != nil && u.File != nil
}

func (u IDProofUpload) Close() {
	if u.File != nil {
		_ = u.File.Close()
	}
}

type CreateGuestRequest struct {
	Name    string   `json:"name"     validate:"required,max=100"`
	Phone   string   `json:"phone"    validate:"required,max=20"`
	Email   string   `json:"email"    validate:"omitempty,email,max=100"`
	Address string   `json:"address"  validate:"omitempty,max=255"`
	IDProof string   `json:"id_proof" validate:"omitempty,max=255"`
	History []string `json:"history"  validate:"omitempty,dive,required"`
	IDProofUpload
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	history := c.History
	if history == nil {
		history = []string{}
	}

	return model.Guest{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
		IDProof: c.IDProof,
		History: history,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	Name    string `db:"name"     json:"name"     validate:"omitempty,max=100"`
	Phone   string `db:"phone"    json:"phone"    validate:"omitempty,max=20"`
	Email   string `db:"email"    json:"email"    validate:"omitempty,email,max=100"`
	Address string `db:"address"  json:"address"  validate:"omitempty,max=255"`
	IDProof string `db:"id_proof" json:"id_proof" validate:"omitempty,max=255"`
	IDProofUpload
}

// Empty reports whether the request would change nothing.
func (u UpdateGuestRequest) Empty() bool {
	return u.Name == "" && u.Phone == "" && u.Email == "" && u.Address == "" && u.IDProof == "" && !u.HasFile()
}

type AppendHistoryRequest struct {
	Entry string `json:"entry" validate:"required,max=500"`
}

type GuestResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
	IDProof string   `json:"id_proof"`
	History []string `json:"history"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(m model.Guest) {
	r.ID = m.ID
	r.Name = m.Name
	r.Phone = m.Phone
	r.Email = m.Email
	r.Address = m.Address
	r.IDProof = m.IDProof
	r.History = append([]string{}, m.History...)
	r.Metadata.FromModel(m.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, m := range models {
		r.Guests[i].FromModel(m)
	}
}
