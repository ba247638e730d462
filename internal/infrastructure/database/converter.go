package database

import (
	"time"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
)

// Converters between gorm models and domain entities. Keeps gorm types out
// of the domain layer.

func toEntityChatMessage(m *ChatMessageModel) *entity.ChatMessage {
	if m == nil {
		return nil
	}
	return &entity.ChatMessage{
		ID:        m.ID,
		SessionID: m.SessionID,
		Role:      m.Role,
		Content:   m.Content,
		Timestamp: m.Timestamp,
	}
}

func toEntityChatMessages(models []ChatMessageModel) []*entity.ChatMessage {
	out := make([]*entity.ChatMessage, 0, len(models))
	for i := range models {
		out = append(out, toEntityChatMessage(&models[i]))
	}
	return out
}

func toEntityFaq(m *FaqModel) *entity.Faq {
	if m == nil {
		return nil
	}
	return &entity.Faq{
		ID:                 m.ID,
		Question:           m.Question,
		NormalizedQuestion: m.NormalizedQuestion,
		Count:              m.Count,
		LastAsked:          m.LastAsked,
	}
}

func toEntityProfessor(m *ProfessorModel) *entity.Professor {
	if m == nil {
		return nil
	}
	return &entity.Professor{
		ID:             m.ID,
		Name:           m.Name,
		Department:     m.Department,
		Position:       m.Position,
		Email:          m.Email,
		Office:         m.Office,
		Specialization: m.Specialization,
	}
}

func toModelProfessor(p *entity.Professor) *ProfessorModel {
	return &ProfessorModel{
		ID:             p.ID,
		Name:           p.Name,
		Department:     p.Department,
		Position:       p.Position,
		Email:          p.Email,
		Office:         p.Office,
		Specialization: p.Specialization,
	}
}

func toEntityEvent(m *EventModel) *entity.Event {
	if m == nil {
		return nil
	}
	return &entity.Event{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		EventDate:   m.EventDate,
		Location:    m.Location,
		Category:    m.Category,
	}
}

func toModelEvent(e *entity.Event) *EventModel {
	return &EventModel{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		EventDate:   e.EventDate,
		Location:    e.Location,
		Category:    e.Category,
	}
}

func toEntityDepartment(m *DepartmentModel) *entity.Department {
	if m == nil {
		return nil
	}
	return &entity.Department{
		ID:            m.ID,
		Name:          m.Name,
		Code:          m.Code,
		Description:   m.Description,
		Building:      m.Building,
		ContactPerson: m.ContactPerson,
	}
}

func toModelDepartment(d *entity.Department) *DepartmentModel {
	return &DepartmentModel{
		ID:            d.ID,
		Name:          d.Name,
		Code:          d.Code,
		Description:   d.Description,
		Building:      d.Building,
		ContactPerson: d.ContactPerson,
	}
}

func toEntityFacility(m *FacilityModel) *entity.Facility {
	if m == nil {
		return nil
	}
	return &entity.Facility{
		ID:           m.ID,
		Name:         m.Name,
		Type:         m.Type,
		Location:     m.Location,
		Capacity:     m.Capacity,
		Availability: m.Availability,
		Description:  m.Description,
	}
}

func toModelFacility(f *entity.Facility) *FacilityModel {
	return &FacilityModel{
		ID:           f.ID,
		Name:         f.Name,
		Type:         f.Type,
		Location:     f.Location,
		Capacity:     f.Capacity,
		Availability: f.Availability,
		Description:  f.Description,
	}
}

func toEntitySettings(m *AdminSettingsModel) *entity.AdminSettings {
	if m == nil {
		return nil
	}
	return &entity.AdminSettings{
		ID:           m.ID,
		SchoolName:   m.SchoolName,
		SchoolMotto:  m.SchoolMotto,
		ContactEmail: m.ContactEmail,
		ContactPhone: m.ContactPhone,
		Address:      m.Address,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toEntityUser(m *UserModel) *entity.User {
	if m == nil {
		return nil
	}
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		deletedAt = &t
	}
	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		LastLoginAt:  m.LastLoginAt,
		DeletedAt:    deletedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
