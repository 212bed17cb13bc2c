package dto

import (
	"frontdesk/internal/domains/staff/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/timezone"
)

type UpdateStaffRequest struct {
	Name   *string `db:"name"   json:"name,omitempty"   validate:"omitempty,max=100"`
	Role   *string `db:"role"   json:"role,omitempty"   validate:"omitempty,oneof=admin receptionist restaurant bar"`
	Active *bool   `db:"active" json:"active,omitempty"`
}

func (r UpdateStaffRequest) Empty() bool {
	return r.Name == nil && r.Role == nil && r.Active == nil
}

type StaffResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	Active    bool    `json:"active"`
	LastLogin *string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(m model.Staff) {
	r.ID = m.ID
	r.Email = m.Email
	r.Name = m.Name
	r.Role = m.Role
	r.Active = m.Active
	r.LastLogin = timezone.FormatPtr(m.LastLogin, constant.DateFormat)
	r.Metadata.FromModel(m.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, m := range models {
		r.Staff[i].FromModel(m)
	}
}
