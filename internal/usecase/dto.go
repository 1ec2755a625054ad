package usecase

// WorkshopSignupInput carries the webhook form fields. Everything is
// optional; defaults are applied in Execute.
type WorkshopSignupInput struct {
	FirstName       string
	LastName        string
	Phone           string
	Email           string
	GuestCount      string // free text, defaults to "1"
	SourceTag       string // defaults to "Workshop Registration"
	WorkshopJoined  string // free-text session descriptor
	MaritalStatus   string
	FloridaResident string
}

type WorkshopSignupOutput struct {
	ContactID      string
	IsNew          bool
	WorkshopID     string // empty when no session matched
	RegistrationID string // empty when registration was not created
	MatchInfo      *WorkshopSessionInfo
	Message        string
}
