package payments

// ChargeRequest is the normalized single line item a booking charges for,
// plus the flat string metadata record attached to the session for
// reconciliation.
type ChargeRequest struct {
	Currency    string
	ProductName string
	Description string
	UnitAmount  int64 // minor currency units (pence)
	Quantity    int64
	Reference   string
	Metadata    map[string]string
}
