package content

import (
	"net/url"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	phonePathPattern = regexp.MustCompile(`^/[0-9]{8,15}$`)
)

// validatorInstance configures and returns the shared validator.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("wa_link", func(fl validator.FieldLevel) bool {
			return isWhatsAppLink(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

func validate(target any) error {
	return validatorInstance().Struct(target)
}

// isWhatsAppLink reports whether raw opens a prefilled chat: an https wa.me
// URL whose path is the E.164 number without "+" and whose text query is set.
func isWhatsAppLink(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "https" || u.Host != whatsAppHost {
		return false
	}
	if !phonePathPattern.MatchString(u.Path) {
		return false
	}
	return u.Query().Get("text") != ""
}
