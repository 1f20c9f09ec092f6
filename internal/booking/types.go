package booking

import (
	"encoding/json"
	"fmt"
)

// Booking is the payload the frontend posts when a customer pays for a moving
// job. The nested objects are pointers so that a missing object can be told
// apart from an empty one at validation time.
type Booking struct {
	Email        string `json:"email"`
	Username     string `json:"username"`
	PhoneNumber  string `json:"phoneNumber"`
	QuotationRef string `json:"quotationRef"`

	Price    json.Number `json:"price" validate:"required"`
	Distance Scalar      `json:"distance"`
	Duration Scalar      `json:"duration"`

	PickupDate string `json:"pickupDate"`
	PickupTime string `json:"pickupTime"`
	DropDate   string `json:"dropDate"`
	DropTime   string `json:"dropTime"`

	Worker           Scalar `json:"worker"`
	VanType          string `json:"vanType"`
	ItemsToDismantle Scalar `json:"itemsToDismantle"`
	ItemsToAssemble  Scalar `json:"itemsToAssemble"`

	PickupAddress  *Address  `json:"pickupAddress" validate:"required"`
	DropAddress    *Address  `json:"dropAddress" validate:"required"`
	PickupLocation *Location `json:"pickupLocation" validate:"required"`
	DropLocation   *Location `json:"dropLocation" validate:"required"`
	Details        *Details  `json:"details" validate:"required"`

	ExtraStops json.RawMessage `json:"ExtraStopsArray"`
	Items      json.RawMessage `json:"itemsArray"`
}

// Address is one end of the move.
type Address struct {
	Postcode     string `json:"postcode"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	Country      string `json:"country"`
	FlatNo       string `json:"flatNo"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
}

// Location carries access details for an address.
type Location struct {
	Location      string `json:"location"`
	Floor         Scalar `json:"floor"`
	LiftAvailable Scalar `json:"liftAvailable"`
	PropertyType  string `json:"propertyType"`
}

// Details holds job-level flags and free text.
type Details struct {
	IsBusinessCustomer  Scalar `json:"isBusinessCustomer"`
	MotorBike           Scalar `json:"motorBike"`
	Piano               Scalar `json:"piano"`
	SpecialRequirements string `json:"specialRequirements"`
}

// Scalar accepts the string, number and boolean encodings the frontend uses
// interchangeably for the same field, and keeps the value as text. The
// outbound metadata channel is string-only anyway.
type Scalar string

func (s *Scalar) UnmarshalJSON(data []byte) error {
	switch {
	case len(data) == 0 || string(data) == "null":
		*s = ""
	case data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = Scalar(v)
	case string(data) == "true" || string(data) == "false":
		*s = Scalar(data)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("not a JSON scalar: %s", data)
		}
		*s = Scalar(n.String())
	}
	return nil
}

// Or returns the scalar's value, or fallback when it is empty.
func (s Scalar) Or(fallback string) string {
	if s == "" {
		return fallback
	}
	return string(s)
}
