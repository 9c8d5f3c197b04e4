package validator

// Validator validates inbound request payloads before any outbound call.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}
