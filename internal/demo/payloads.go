package demo

import (
	"context"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/dmitrymomot/validated/validate/custom"
)

// PlaygroundExample is validated with struct tags.
type PlaygroundExample struct {
	Name string `json:"name" validate:"required,min=5"`
}

// OzzoExample is validated with ozzo rules.
type OzzoExample struct {
	Name string `json:"name"`
}

func (e OzzoExample) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Name, validation.Required, validation.Length(5, 0)),
	)
}

// CustomExample is validated with the in-house rules.
type CustomExample struct {
	Name string `json:"name"`
}

func (e CustomExample) Validate() error {
	return custom.Apply(custom.MinLen("name", e.Name, 5))
}

// SearchQuery is bound from the query string.
type SearchQuery struct {
	Term  string   `query:"q" json:"q" validate:"required,min=2"`
	Page  int      `query:"page" json:"page" validate:"gte=0"`
	Limit int      `query:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
	Tags  []string `query:"tag" json:"tags" validate:"max=5,dive,alphanum"`
}

// ItemUpdate combines a path parameter with a JSON body.
type ItemUpdate struct {
	ID       string  `path:"id" json:"-" validate:"required,uuid"`
	Title    string  `json:"title" validate:"required,max=120"`
	Price    float64 `json:"price" validate:"gte=0"`
	Currency string  `json:"currency" validate:"required,iso4217"`
}

// Settings is uploaded as YAML and validated with ozzo rules, including the
// request context.
type Settings struct {
	Owner    string         `yaml:"owner" json:"owner"`
	Webhooks []Webhook      `yaml:"webhooks" json:"webhooks"`
	Limits   map[string]int `yaml:"limits" json:"limits"`
	Notify   *Notification  `yaml:"notify" json:"notify,omitempty"`
}

// Webhook is one Settings entry.
type Webhook struct {
	URL    string   `yaml:"url" json:"url"`
	Events []string `yaml:"events" json:"events"`
}

// Notification is an optional Settings section.
type Notification struct {
	Email string `yaml:"email" json:"email"`
}

func (w Webhook) Validate() error {
	return validation.ValidateStruct(&w,
		validation.Field(&w.URL, validation.Required, is.URL),
		validation.Field(&w.Events, validation.Required, validation.Each(validation.In("created", "updated", "deleted"))),
	)
}

func (n Notification) Validate() error {
	return validation.ValidateStruct(&n,
		validation.Field(&n.Email, validation.Required, is.Email),
	)
}

func (s Settings) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, &s,
		validation.Field(&s.Owner, validation.Required, is.Email),
		validation.Field(&s.Webhooks, validation.Length(0, 10)),
		validation.Field(&s.Limits, validation.Each(validation.Min(0))),
		validation.Field(&s.Notify),
	)
}

var usernamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{2,31}$`)

// Signup is posted as an HTML form and validated with the in-house rules.
type Signup struct {
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Plan     string `form:"plan" json:"plan"`
	Seats    int    `form:"seats" json:"seats"`
	Referrer string `form:"referrer" json:"referrer,omitempty"`
}

func (s Signup) Validate() error {
	rules := []custom.Rule{
		custom.Match("username", s.Username, usernamePattern, "a lowercase username"),
		custom.Email("email", s.Email),
		custom.OneOf("plan", s.Plan, "free", "team", "enterprise"),
		custom.Between("seats", s.Seats, 1, 500),
	}
	if s.Referrer != "" {
		rules = append(rules, custom.UUID("referrer", s.Referrer))
	}
	return custom.Apply(rules...)
}
