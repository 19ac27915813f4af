package scan

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"qr-loyalty-service/internal/pkg/errs"
)

// Common wire-format fields every payload must carry.
const (
	fieldType      = "type"
	fieldUniqueID  = "qrUniqueId"
	fieldTimestamp = "timestamp"
	fieldVersion   = "version"
	fieldSignature = "signature"
)

var commonFields = []string{fieldType, fieldUniqueID, fieldTimestamp, fieldVersion}

// requiredByType maps each type tag to its type-specific required fields.
var requiredByType = map[Type][]string{
	TypeCustomerCard: {"customerId"},
	TypeLoyaltyCard:  {"customerId", "programId", "cardId", "businessId"},
	TypePromoCode:    {"promoCode", "businessId"},
}

// Validate checks an untrusted payload against the scan schema. It accepts
// a JSON string, raw bytes, a decoded map, or an already-built *Payload
// (which is re-checked, making validation idempotent). Pure: no I/O, and
// the same input always produces the same result.
func Validate(raw any) (*Payload, error) {
	m, err := toMap(raw)
	if err != nil {
		return nil, err
	}

	for _, field := range commonFields {
		if isMissing(m[field]) {
			return nil, errs.Validation(fmt.Sprintf("missing required field: %s", field), field)
		}
	}

	typeTag, err := stringField(m, fieldType)
	if err != nil {
		return nil, err
	}
	payloadType := Type(typeTag)
	if !payloadType.Valid() {
		return nil, errs.Validation(fmt.Sprintf("unknown scan type: %q", typeTag), fieldType)
	}

	uniqueID, err := idField(m, fieldUniqueID)
	if err != nil {
		return nil, err
	}
	timestamp, err := timestampField(m, fieldTimestamp)
	if err != nil {
		return nil, err
	}
	version, err := idField(m, fieldVersion)
	if err != nil {
		return nil, err
	}

	p := &Payload{
		Type:      payloadType,
		UniqueID:  uniqueID,
		Timestamp: timestamp,
		Version:   version,
	}

	for _, field := range requiredByType[payloadType] {
		if isMissing(m[field]) {
			return nil, errs.Validation(
				fmt.Sprintf("missing required field for %s: %s", payloadType, field), field)
		}
		value, ferr := idField(m, field)
		if ferr != nil {
			return nil, ferr
		}
		switch field {
		case "customerId":
			p.CustomerID = value
		case "programId":
			p.ProgramID = value
		case "cardId":
			p.CardID = value
		case "businessId":
			p.BusinessID = value
		case "promoCode":
			p.PromoCode = value
		}
	}

	if sig, ok := m[fieldSignature]; ok && !isMissing(sig) {
		sigStr, serr := stringField(m, fieldSignature)
		if serr != nil {
			return nil, serr
		}
		p.Signature = sigStr
	}

	return p, nil
}

// Result is the non-throwing validation outcome. Exactly one of Data and
// Err is set.
type Result struct {
	Valid bool
	Data  *Payload
	Err   error
}

// SafeValidate never panics, whatever the input. Callers branch on the
// result instead of handling errors as control flow.
func SafeValidate(raw any) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{Valid: false, Err: errs.Validation(fmt.Sprintf("payload not processable: %v", r), "")}
		}
	}()

	p, err := Validate(raw)
	if err != nil {
		return Result{Valid: false, Err: err}
	}
	return Result{Valid: true, Data: p}
}

func toMap(raw any) (map[string]any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, errs.Validation("payload is empty", "")
	case map[string]any:
		return v, nil
	case *Payload:
		if v == nil {
			return nil, errs.Validation("payload is empty", "")
		}
		return payloadToMap(v), nil
	case Payload:
		return payloadToMap(&v), nil
	case string:
		return decodeJSON([]byte(v))
	case []byte:
		return decodeJSON(v)
	case json.RawMessage:
		return decodeJSON(v)
	default:
		return nil, errs.Validation(fmt.Sprintf("unsupported payload representation: %T", raw), "")
	}
}

func decodeJSON(data []byte) (map[string]any, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errs.Validation("payload is empty", "")
	}
	decoder := json.NewDecoder(strings.NewReader(string(data)))
	decoder.UseNumber()
	var m map[string]any
	if err := decoder.Decode(&m); err != nil {
		return nil, errs.Validation("payload is not valid JSON", "")
	}
	return m, nil
}

func payloadToMap(p *Payload) map[string]any {
	m := map[string]any{
		fieldType:      string(p.Type),
		fieldUniqueID:  p.UniqueID,
		fieldTimestamp: p.Timestamp,
		fieldVersion:   p.Version,
	}
	setIfPresent := func(key, value string) {
		if value != "" {
			m[key] = value
		}
	}
	setIfPresent("customerId", p.CustomerID)
	setIfPresent("programId", p.ProgramID)
	setIfPresent("cardId", p.CardID)
	setIfPresent("businessId", p.BusinessID)
	setIfPresent("promoCode", p.PromoCode)
	setIfPresent(fieldSignature, p.Signature)
	return m
}

func isMissing(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return true
	}
	return false
}

// stringField requires a real string; used for fields where a numeric
// form would be a producer bug.
func stringField(m map[string]any, field string) (string, error) {
	s, ok := m[field].(string)
	if !ok {
		return "", errs.Validation(fmt.Sprintf("field %s must be a string", field), field)
	}
	return s, nil
}

// idField accepts either a string or a JSON number and normalizes to a
// string. QR producers disagree on how they encode IDs.
func idField(m map[string]any, field string) (string, error) {
	switch v := m[field].(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	default:
		return "", errs.Validation(fmt.Sprintf("field %s must be a string or number", field), field)
	}
}

func timestampField(m map[string]any, field string) (int64, error) {
	switch v := m[field].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, errs.Validation(fmt.Sprintf("field %s must be an integer timestamp", field), field)
		}
		return n, nil
	case float64:
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, errs.Validation(fmt.Sprintf("field %s must be an integer timestamp", field), field)
		}
		return n, nil
	default:
		return 0, errs.Validation(fmt.Sprintf("field %s must be a number", field), field)
	}
}
