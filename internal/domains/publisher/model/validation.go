package model

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var phoneRegex = regexp.MustCompile(`^[\d\+\-\s\(\)]+$`)

// Normalize trims surrounding whitespace and lower-cases the email.
func (r *PublisherRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Address = trimmed(r.Address)
	r.Website = trimmed(r.Website)
	r.Phone = trimmed(r.Phone)
	r.Description = trimmed(r.Description)
	if r.Email = trimmed(r.Email); r.Email != nil {
		lower := strings.ToLower(*r.Email)
		r.Email = &lower
	}
}

func (r PublisherRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(2, 255).Error("name must be 2-255 characters"),
		),
		validation.Field(&r.Address, validation.RuneLength(0, 500)),
		validation.Field(&r.Website,
			validation.RuneLength(0, 255).Error("website must be at most 255 characters"),
			is.URL.Error("website must be a valid URL"),
		),
		validation.Field(&r.Email,
			validation.RuneLength(0, 255).Error("email must be at most 255 characters"),
			is.EmailFormat.Error("invalid email format"),
		),
		validation.Field(&r.Phone,
			validation.Length(6, 20).Error("phone must be 6-20 characters"),
			validation.Match(phoneRegex).Error("phone contains invalid characters"),
		),
		validation.Field(&r.Description, validation.RuneLength(0, 2000)),
	)
}

// ValidateRequest normalizes and validates a request, returning an INVALID_PUBLISHER error
// whose details map field names to messages.
func ValidateRequest(req *PublisherRequest) error {
	if req == nil {
		return NewInvalidPublisher(nil, errors.New("request is nil"))
	}
	req.Normalize()

	if err := req.Validate(); err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			return NewInvalidPublisher(fieldErrs, err)
		}
		return NewInvalidPublisher(nil, err)
	}
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
