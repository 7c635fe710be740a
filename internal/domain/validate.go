package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/repfy/repfy-tui/internal/api"
	"github.com/repfy/repfy-tui/pkg/fp"
)

// QuoteDraft holds the raw form values of a quote before submission.
type QuoteDraft struct {
	Price             string
	Message           string
	EstimatedDuration string
	ValidDays         int
}

// Build validates the draft and assembles the submission payload.
// The quote's expiry lands ValidDays calendar days after now.
func (d QuoteDraft) Build(requestID string, now time.Time) (*api.CreateQuoteRequest, error) {
	priceRes := fp.Validate(d.Price,
		fp.Custom("valor", notBlank, "é obrigatório"),
		fp.Custom("valor", isDecimal, "deve ser um valor válido"),
	)
	if err := fp.GetError(priceRes); err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(d.Price)
	if err != nil {
		return nil, fp.ValidationError{Field: "valor", Message: "deve ser um valor válido"}
	}
	if !price.IsPositive() {
		return nil, fp.ValidationError{Field: "valor", Message: "deve ser positivo"}
	}

	daysRes := fp.Validate(d.ValidDays,
		fp.Custom("validade", func(n int) bool { return n > 0 }, "deve ser um número positivo de dias"),
	)
	if err := fp.GetError(daysRes); err != nil {
		return nil, err
	}

	return &api.CreateQuoteRequest{
		RequestID:         requestID,
		Price:             price,
		Message:           d.Message,
		EstimatedDuration: d.EstimatedDuration,
		ValidUntil:        now.AddDate(0, 0, d.ValidDays),
	}, nil
}

func isDecimal(s string) bool {
	_, err := decimal.NewFromString(s)
	return err == nil
}

// RequestDraft holds the raw form values of a service request before
// submission. Category is typed by name and resolved against the fetched
// category list.
type RequestDraft struct {
	Title       string
	Description string
	Category    string
	City        string
	State       string
	Address     string
}

// Build validates the draft and resolves the typed category to its id.
func (d RequestDraft) Build(categories []api.Category) (*api.CreateServiceRequestRequest, error) {
	checks := []struct {
		field, value string
	}{
		{"título", d.Title},
		{"descrição", d.Description},
		{"categoria", d.Category},
		{"cidade", d.City},
		{"estado", d.State},
	}
	for _, c := range checks {
		res := fp.Validate(c.value, fp.Custom(c.field, notBlank, "é obrigatório"))
		if err := fp.GetError(res); err != nil {
			return nil, err
		}
	}

	cat, ok := findCategory(categories, d.Category)
	if !ok {
		return nil, fp.ValidationError{Field: "categoria", Message: "não encontrada, use um nome da lista"}
	}

	return &api.CreateServiceRequestRequest{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		CategoryID:  cat.ID,
		City:        strings.TrimSpace(d.City),
		State:       strings.ToUpper(strings.TrimSpace(d.State)),
		Address:     strings.TrimSpace(d.Address),
	}, nil
}

// findCategory matches a typed category against the known list by name or
// slug, case-insensitively.
func findCategory(categories []api.Category, name string) (api.Category, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, c := range categories {
		if strings.ToLower(c.Name) == needle || strings.ToLower(c.Slug) == needle {
			return c, true
		}
	}
	return api.Category{}, false
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateLogin checks login form values before any network call.
// Messages are user facing and rendered as typed.
func ValidateLogin(email, password string) error {
	emailRes := fp.Validate(email,
		fp.Custom("e-mail", notBlank, "é obrigatório"),
		fp.Pattern("e-mail", emailPattern, "deve ser um endereço válido"),
	)
	if err := fp.GetError(emailRes); err != nil {
		return err
	}
	passRes := fp.Validate(password, fp.Custom("senha", notBlank, "é obrigatória"))
	return fp.GetError(passRes)
}

// ValidatePassword checks a new password against the platform rules:
// at least 8 characters with an upper-case letter, a lower-case letter
// and a digit, and the confirmation must match.
func ValidatePassword(password, confirm string) error {
	res := fp.Validate(password,
		fp.Custom("senha", func(s string) bool { return utf8.RuneCountInString(s) >= 8 },
			"deve ter no mínimo 8 caracteres"),
		fp.Custom("senha", hasClass(unicode.IsUpper), "deve conter uma letra maiúscula"),
		fp.Custom("senha", hasClass(unicode.IsLower), "deve conter uma letra minúscula"),
		fp.Custom("senha", hasClass(unicode.IsDigit), "deve conter um número"),
	)
	if err := fp.GetError(res); err != nil {
		return err
	}
	if password != confirm {
		return fp.ValidationError{Field: "confirmação", Message: "as senhas não coincidem"}
	}
	return nil
}

func hasClass(class func(rune) bool) func(string) bool {
	return func(s string) bool {
		for _, r := range s {
			if class(r) {
				return true
			}
		}
		return false
	}
}
