// Package custom is the in-house validation strategy.
//
// Payloads implement Validatable and compose their checks from Rule values:
//
//	func (o Order) Validate() error {
//		return custom.Join(
//			custom.Apply(
//				custom.Required("name", o.Name),
//				custom.Between("quantity", o.Quantity, 1, 100),
//			),
//			custom.Each("items", o.Items),
//		)
//	}
//
// Failures are reported as Errors. Any other error returned from Validate is
// treated as a failure of the payload as a whole.
package custom
