package entity

// RegistrationStep identifies the current prompt of the registration dialogue.
type RegistrationStep string

const (
	StepName     RegistrationStep = "name"
	StepAddress  RegistrationStep = "address"
	StepPhone    RegistrationStep = "phone"
	StepEmail    RegistrationStep = "email"
	StepKeywords RegistrationStep = "keywords"
)

// Next returns the step following s. ok is false for StepKeywords, whose
// successful input commits the record instead of advancing.
func (s RegistrationStep) Next() (next RegistrationStep, ok bool) {
	switch s {
	case StepName:
		return StepAddress, true
	case StepAddress:
		return StepPhone, true
	case StepPhone:
		return StepEmail, true
	case StepEmail:
		return StepKeywords, true
	default:
		return s, false
	}
}

// IsValid checks if the RegistrationStep is a valid value.
func (s RegistrationStep) IsValid() bool {
	switch s {
	case StepName, StepAddress, StepPhone, StepEmail, StepKeywords:
		return true
	default:
		return false
	}
}

// BusinessDraft accumulates accepted fields as the dialogue advances.
type BusinessDraft struct {
	Name     string
	Address  string
	Phone    string
	Email    string
	Keywords []string
}

// RegistrationSession is the transient per-sender state of an in-progress
// registration. It lives only in process memory; a restart discards it.
type RegistrationSession struct {
	Sender string
	Step   RegistrationStep
	Draft  BusinessDraft
}

// NewRegistrationSession starts a session at the first step with an empty draft.
func NewRegistrationSession(sender string) *RegistrationSession {
	return &RegistrationSession{
		Sender: sender,
		Step:   StepName,
	}
}
