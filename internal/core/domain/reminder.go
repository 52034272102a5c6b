package domain

// Reminder is a scheduled follow-up tied to one or more contacts.
type Reminder struct {
	// ID is the unique identifier for the reminder.
	ID string

	// Body is the reminder text.
	Body string

	// Complete reports whether the reminder has been done.
	Complete bool

	// DueDate is the due date string as stored by the CRM.
	DueDate string

	// DueTime is the optional due time of day.
	DueTime string

	// ContactIDs are the contacts this reminder is associated with.
	ContactIDs []string
}

// Status returns the searchable status word for the reminder.
func (r *Reminder) Status() string {
	if r.Complete {
		return "completed"
	}
	return "pending"
}
