package booking

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"reliance/internal/payments"
)

// Stripe caps each metadata value at 500 characters. Stop and item lists are
// serialized into single metadata values, so they inherit the cap; oversized
// lists are rejected rather than silently truncated.
const maxMetadataValueLen = 500

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError lists every field that failed boundary validation, so the
// frontend gets the whole picture in one response instead of one field per
// round trip.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "malformed booking payload: " + strings.Join(e.Fields, ", ")
}

// Normalize turns an inbound booking into the single line-item charge sent to
// the checkout provider. It is a pure function: it either succeeds completely
// or returns a *ValidationError, and never emits undefined values in the
// outbound metadata record.
func Normalize(b *Booking) (payments.ChargeRequest, error) {
	if err := validateShape(b); err != nil {
		return payments.ChargeRequest{}, err
	}

	amount, err := PenceAmount(b.Price)
	if err != nil {
		return payments.ChargeRequest{}, &ValidationError{Fields: []string{err.Error()}}
	}

	stops, err := compactArray("ExtraStopsArray", b.ExtraStops)
	if err != nil {
		return payments.ChargeRequest{}, err
	}
	items, err := compactArray("itemsArray", b.Items)
	if err != nil {
		return payments.ChargeRequest{}, err
	}

	metadata := map[string]string{
		"email":       orDefault(b.Email, "NA"),
		"quoteRef":    orDefault(b.QuotationRef, "NA"),
		"username":    b.Username,
		"phoneNumber": b.PhoneNumber,

		"plocation":     orDefault(b.PickupLocation.Location, "NA"),
		"pfloor":        b.PickupLocation.Floor.Or("0"),
		"plift":         b.PickupLocation.LiftAvailable.Or("false"),
		"ppropertyType": orDefault(b.PickupLocation.PropertyType, "standard"),
		"ppostcode":     b.PickupAddress.Postcode,
		"paddressLine1": b.PickupAddress.AddressLine1,
		"paddressLine2": b.PickupAddress.AddressLine2,
		"pcity":         b.PickupAddress.City,
		"pcountry":      b.PickupAddress.Country,
		"pflatNo":       b.PickupAddress.FlatNo,
		"pcontactName":  b.PickupAddress.ContactName,
		"pcontactPhone": b.PickupAddress.ContactPhone,

		"dlocation":     orDefault(b.DropLocation.Location, "NA"),
		"dfloor":        b.DropLocation.Floor.Or("0"),
		"dlift":         b.DropLocation.LiftAvailable.Or("false"),
		"dpropertyType": orDefault(b.DropLocation.PropertyType, "standard"),
		"dpostcode":     b.DropAddress.Postcode,
		"daddressLine1": b.DropAddress.AddressLine1,
		"daddressLine2": b.DropAddress.AddressLine2,
		"dcity":         b.DropAddress.City,
		"dcountry":      b.DropAddress.Country,
		"dflatNo":       b.DropAddress.FlatNo,
		"dcontactName":  b.DropAddress.ContactName,
		"dcontactPhone": b.DropAddress.ContactPhone,

		"extraStops": stops,
		"items":      items,

		"distance":   b.Distance.Or("0"),
		"duration":   string(b.Duration),
		"pickupDate": b.PickupDate,
		"pickupTime": b.PickupTime,
		"dropDate":   b.DropDate,
		"dropTime":   b.DropTime,

		"worker":              b.Worker.Or("1"),
		"van":                 b.VanType,
		"price":               b.Price.String(),
		"itemsToDismantle":    b.ItemsToDismantle.Or("0"),
		"itemsToAssemble":     b.ItemsToAssemble.Or("0"),
		"isBusinessCustomer":  b.Details.IsBusinessCustomer.Or("false"),
		"motorBike":           string(b.Details.MotorBike),
		"piano":               string(b.Details.Piano),
		"specialRequirements": b.Details.SpecialRequirements,
	}

	reference := b.QuotationRef
	if reference == "" {
		reference = uuid.New().String()
	}

	return payments.ChargeRequest{
		Currency:    "gbp",
		ProductName: "Moving Service",
		Description: fmt.Sprintf("From %s to %s", b.PickupAddress.City, b.DropAddress.City),
		UnitAmount:  amount,
		Quantity:    1,
		Reference:   reference,
		Metadata:    metadata,
	}, nil
}

// validateShape checks the minimal booking shape before anything touches the
// nested objects.
func validateShape(b *Booking) error {
	var fields []string

	if err := validate.Struct(b); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fields = append(fields, jsonField(fe.Field())+" is required")
		}
	}

	if b.Price != "" {
		if v, err := b.Price.Float64(); err != nil || v <= 0 {
			fields = append(fields, "price must be a number greater than zero")
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// jsonField maps a struct field name to its wire name. All booking fields use
// lower-camel JSON tags.
func jsonField(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// compactArray renders an opaque JSON array for the metadata record. A
// missing array becomes "[]".
func compactArray(field string, raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "[]", nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", &ValidationError{Fields: []string{field + " is not valid JSON"}}
	}
	if buf.Len() > maxMetadataValueLen {
		return "", &ValidationError{Fields: []string{
			fmt.Sprintf("%s exceeds %d characters when serialized", field, maxMetadataValueLen),
		}}
	}
	return buf.String(), nil
}

// PenceAmount converts a decimal pound amount into integer pence, rounding
// half up on the third decimal place. The arithmetic stays on the decimal
// text so a value like 10.005 lands on 1001 instead of drifting through
// float64 multiplication.
func PenceAmount(n json.Number) (int64, error) {
	s := strings.TrimSpace(n.String())
	if s == "" {
		return 0, errors.New("price is required")
	}

	// Exponent notation is not worth decimal handling; frontends send plain
	// decimals.
	if strings.ContainsAny(s, "eE") {
		v, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("price %q is not a number", s)
		}
		return int64(math.Round(v * 100)), nil
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("price %q is not a number", s)
	}
	for _, c := range fracPart {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("price %q is not a number", s)
		}
	}

	digit := func(i int) int64 {
		if i >= len(fracPart) {
			return 0
		}
		return int64(fracPart[i] - '0')
	}

	pence := whole*100 + digit(0)*10 + digit(1)
	if digit(2) >= 5 {
		pence++
	}
	return pence, nil
}
