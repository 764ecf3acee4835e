package usecasecontract

type IValidator interface {
	ValidateID(id string) error
	ValidateUsername(username string) error
	ValidateEmail(email string) error
	ValidatePasswordStrength(password string) error
	ValidateContent(content string) error
}
