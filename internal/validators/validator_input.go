package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dailydoit/dailydoit/models"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Field name constants used to scope validation and to key messages in a
// [ValidationError].
const (
	// FieldEmail targets the email address of credentials or a federated
	// profile.
	FieldEmail = "email"

	// FieldPassword targets the plain-text password of credentials.
	FieldPassword = "password"

	// FieldDate targets the "YYYY-MM-DD" date of a day request.
	FieldDate = "date"

	// FieldDateNotInFuture additionally rejects dates after today.
	FieldDateNotInFuture = "date_not_in_future"

	// FieldToken targets an activation token.
	FieldToken = "token"

	// FieldProviderUserID targets the subject of a federated profile.
	FieldProviderUserID = "provider_user_id"

	// FieldEmailVerified requires the provider to vouch for the email of a
	// federated profile.
	FieldEmailVerified = "email_verified"
)

const (
	maxEmailLength    = 254
	minPasswordLength = 8
	maxPasswordLength = 64
)

// InputValidator implements [Validator] for the user-supplied models:
// Credentials, DayRequest and FederatedProfile. Both value and pointer forms
// are accepted.
type InputValidator struct {
	now func() time.Time
}

// NewInputValidator constructs the validator used by the services.
func NewInputValidator() *InputValidator {
	return &InputValidator{now: time.Now}
}

// Validate dispatches on the dynamic type of obj. Optional fields restrict
// validation to the named subset; when omitted, every field of the model is
// validated.
//
// Failures are returned as *ValidationError.
func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.DayRequest:
		return v.validateDayRequest(value, fields...)
	case *models.DayRequest:
		return v.validateDayRequest(*value, fields...)

	case models.FederatedProfile:
		return v.validateFederatedProfile(value, fields...)
	case *models.FederatedProfile:
		return v.validateFederatedProfile(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// ValidateActivationToken rejects empty and oversized tokens before they
// reach storage.
func ValidateActivationToken(token string) error {
	err := validation.Validate(token,
		validation.Required.Error(MsgMissingToken),
		validation.Length(1, 64).Error(MsgMissingToken),
	)
	if err != nil {
		return newValidationError(FieldToken, MsgMissingToken)
	}
	return nil
}

func (v *InputValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	c.Email = strings.TrimSpace(c.Email)

	var rules []*validation.FieldRules
	for _, field := range fields {
		switch field {
		case FieldEmail:
			rules = append(rules, validation.Field(&c.Email, emailRules()...))
		case FieldPassword:
			rules = append(rules, validation.Field(&c.Password, validation.By(passwordRule)))
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return toValidationError(validation.ValidateStruct(&c, rules...))
}

func (v *InputValidator) validateDayRequest(r models.DayRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate}
	}

	for _, field := range fields {
		switch field {
		case FieldDate:
			if _, err := ParseDay(r.Date); err != nil {
				return err
			}
		case FieldDateNotInFuture:
			if _, err := ParsePastDay(r.Date, v.now()); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *InputValidator) validateFederatedProfile(p models.FederatedProfile, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProviderUserID, FieldEmail, FieldEmailVerified}
	}

	for _, field := range fields {
		switch field {
		case FieldProviderUserID:
			if strings.TrimSpace(p.ProviderUserID) == "" {
				return newValidationError(FieldProviderUserID, MsgIncompleteProfile)
			}
		case FieldEmail:
			err := validation.Validate(strings.TrimSpace(p.Email), emailRules()...)
			if err != nil {
				return newValidationError(FieldEmail, MsgIncompleteProfile)
			}
		case FieldEmailVerified:
			if !p.EmailVerified {
				return newValidationError(FieldEmail, MsgIncompleteProfile)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func emailRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error(MsgInvalidEmail),
		validation.RuneLength(0, maxEmailLength).Error(MsgEmailTooLong),
		is.Email.Error(MsgInvalidEmail),
	}
}

// passwordRule counts characters, not bytes, and reports which bound was
// violated.
func passwordRule(value interface{}) error {
	s, _ := value.(string)
	n := utf8.RuneCountInString(s)
	switch {
	case n < minPasswordLength:
		return errors.New(MsgPasswordTooShort)
	case n > maxPasswordLength:
		return errors.New(MsgPasswordTooLong)
	}
	return nil
}

// toValidationError converts ozzo field errors into a *ValidationError.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{Fields: make(map[string][]string, len(fieldErrs))}
	for field, fieldErr := range fieldErrs {
		if fieldErr == nil {
			continue
		}
		out.Fields[field] = append(out.Fields[field], fieldErr.Error())
	}
	if len(out.Fields) == 0 {
		return nil
	}
	return out
}
