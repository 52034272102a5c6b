package crm

import "github.com/rolohq/rolo-mcp/internal/core/domain"

// Wire representations of the Rolo API records. Kept separate from the
// domain types so API field renames never leak into the core.

type contactDTO struct {
	ID          string            `json:"id"`
	FirstName   string            `json:"first_name"`
	LastName    string            `json:"last_name"`
	JobTitle    string            `json:"job_title,omitempty"`
	Description string            `json:"description,omitempty"`
	Emails      []string          `json:"emails,omitempty"`
	Phones      []phoneDTO        `json:"phones,omitempty"`
	Socials     *socialsDTO       `json:"socials,omitempty"`
	Website     string            `json:"website,omitempty"`
	Extra       map[string]string `json:"extra,omitempty"`
}

type phoneDTO struct {
	Number string `json:"phone_number"`
	Label  string `json:"label,omitempty"`
}

type socialsDTO struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Telegram  string `json:"telegram,omitempty"`
}

type noteDTO struct {
	ID         string   `json:"id"`
	Body       string   `json:"body"`
	EventTime  string   `json:"event_time,omitempty"`
	ContactIDs []string `json:"contact_ids"`
	Source     string   `json:"source,omitempty"`
}

type reminderDTO struct {
	ID         string   `json:"id"`
	Body       string   `json:"body"`
	Complete   bool     `json:"is_complete"`
	DueDate    string   `json:"due_date"`
	DueTime    string   `json:"due_time,omitempty"`
	ContactIDs []string `json:"contact_ids"`
}

type contactPatchDTO struct {
	FirstName   *string           `json:"first_name,omitempty"`
	LastName    *string           `json:"last_name,omitempty"`
	JobTitle    *string           `json:"job_title,omitempty"`
	Description *string           `json:"description,omitempty"`
	Website     *string           `json:"website,omitempty"`
	Emails      []string          `json:"emails,omitempty"`
	Phones      []phoneDTO        `json:"phones,omitempty"`
	Socials     *socialsDTO       `json:"socials,omitempty"`
	Extra       map[string]string `json:"extra,omitempty"`
}

type contactListResponse struct {
	Contacts []contactDTO `json:"contacts"`
}

type noteListResponse struct {
	Notes []noteDTO `json:"notes"`
}

type reminderListResponse struct {
	Reminders []reminderDTO `json:"reminders"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (d contactDTO) toDomain() domain.Contact {
	c := domain.Contact{
		ID:          d.ID,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		JobTitle:    d.JobTitle,
		Description: d.Description,
		Emails:      d.Emails,
		Website:     d.Website,
		Extra:       d.Extra,
	}
	for _, p := range d.Phones {
		c.Phones = append(c.Phones, domain.Phone{Number: p.Number, Label: p.Label})
	}
	if d.Socials != nil {
		c.Socials = domain.SocialProfiles{
			LinkedIn:  d.Socials.LinkedIn,
			Facebook:  d.Socials.Facebook,
			Twitter:   d.Socials.Twitter,
			Instagram: d.Socials.Instagram,
			Telegram:  d.Socials.Telegram,
		}
	}
	return c
}

func (d noteDTO) toDomain() domain.Note {
	return domain.Note{
		ID:         d.ID,
		Body:       d.Body,
		EventTime:  d.EventTime,
		ContactIDs: d.ContactIDs,
		Source:     d.Source,
	}
}

func (d reminderDTO) toDomain() domain.Reminder {
	return domain.Reminder{
		ID:         d.ID,
		Body:       d.Body,
		Complete:   d.Complete,
		DueDate:    d.DueDate,
		DueTime:    d.DueTime,
		ContactIDs: d.ContactIDs,
	}
}

func noteToDTO(n domain.Note) noteDTO {
	return noteDTO{
		ID:         n.ID,
		Body:       n.Body,
		EventTime:  n.EventTime,
		ContactIDs: n.ContactIDs,
		Source:     n.Source,
	}
}

func reminderToDTO(r domain.Reminder) reminderDTO {
	return reminderDTO{
		ID:         r.ID,
		Body:       r.Body,
		Complete:   r.Complete,
		DueDate:    r.DueDate,
		DueTime:    r.DueTime,
		ContactIDs: r.ContactIDs,
	}
}

func patchToDTO(p domain.ContactPatch) contactPatchDTO {
	dto := contactPatchDTO{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		JobTitle:    p.JobTitle,
		Description: p.Description,
		Website:     p.Website,
		Emails:      p.Emails,
		Extra:       p.Extra,
	}
	for _, phone := range p.Phones {
		dto.Phones = append(dto.Phones, phoneDTO{Number: phone.Number, Label: phone.Label})
	}
	if p.Socials != nil {
		dto.Socials = &socialsDTO{
			LinkedIn:  p.Socials.LinkedIn,
			Facebook:  p.Socials.Facebook,
			Twitter:   p.Socials.Twitter,
			Instagram: p.Socials.Instagram,
			Telegram:  p.Socials.Telegram,
		}
	}
	return dto
}
