package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

const (
	maxContentLength  = 5000
	minPasswordLength = 8
	maxPasswordBytes  = 72 // bcrypt limit
)

// Channel handles double as URL segments, so they stay lowercase ASCII.
var usernamePattern = regexp.MustCompile(`^[a-z0-9_]{3,30}$`)

// AppValidator implements usecasecontract.IValidator on top of go-playground/validator.
type AppValidator struct {
	validate *validator.Validate
}

func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	registerRules(v)
	return &AppValidator{validate: v}
}

// ValidateID checks that id is a canonical UUID.
func (av *AppValidator) ValidateID(id string) error {
	return av.validate.Var(id, "required,uuid")
}

func (av *AppValidator) ValidateUsername(username string) error {
	if err := av.validate.Var(username, "required,username"); err != nil {
		return fmt.Errorf("username must be 3-30 characters of a-z, 0-9 or _")
	}
	return nil
}

// ValidateContent checks that a comment or tweet body is present and not too long.
func (av *AppValidator) ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is required")
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		return fmt.Errorf("content must be at most %d characters", maxContentLength)
	}
	return nil
}

func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidatePasswordStrength mirrors the binding tags on the registration request.
func (av *AppValidator) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("password must be at most %d bytes long", maxPasswordBytes)
	}
	for _, rule := range passwordRules {
		if !strings.ContainsFunc(password, rule.match) {
			return fmt.Errorf("password must contain at least one %s", rule.name)
		}
	}
	return nil
}

type charRule struct {
	tag   string
	name  string
	match func(rune) bool
}

var passwordRules = []charRule{
	{tag: "containsuppercase", name: "uppercase letter", match: unicode.IsUpper},
	{tag: "containslowercase", name: "lowercase letter", match: unicode.IsLower},
	{tag: "containsdigit", name: "digit", match: unicode.IsDigit},
}

// RegisterCustomValidators installs the custom tags on gin's binding engine.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerRules(v)
	}
}

func registerRules(v *validator.Validate) {
	for _, rule := range passwordRules {
		match := rule.match
		_ = v.RegisterValidation(rule.tag, func(fl validator.FieldLevel) bool {
			return strings.ContainsFunc(fl.Field().String(), match)
		})
	}
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
}
