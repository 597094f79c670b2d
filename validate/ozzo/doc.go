// Package ozzo validates request payloads with
// github.com/go-ozzo/ozzo-validation/v4.
//
// Payload types implement validation.Validatable or
// validation.ValidatableWithContext; the latter receives the request context:
//
//	type Example struct {
//		Name string `json:"name"`
//	}
//
//	func (e Example) Validate() error {
//		return validation.ValidateStruct(&e,
//			validation.Field(&e.Name, validation.Required, validation.Length(5, 0)),
//		)
//	}
//
// A failing payload yields validation.Errors. Nested errors (struct fields and
// slice elements) are flattened into dotted paths such as "items.0.name" ->
// "items[0].name" for the default 400 body.
package ozzo
