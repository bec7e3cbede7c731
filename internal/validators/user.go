package validators

import (
	"context"

	"github.com/MKhiriev/gophertalk/models"
)

// UserValidator validates auth and user requests:
// [models.LoginRequest], [models.RegisterRequest], [models.UpdateUserRequest]
// and [models.Pagination].
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.UpdateUserRequest:
		return v.validateUpdate(value, fields...)
	case *models.UpdateUserRequest:
		return v.validateUpdate(*value, fields...)

	case models.Pagination:
		return validatePagination(LocQuery, value, fields...)
	case *models.Pagination:
		return validatePagination(LocQuery, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserName, FieldPassword}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldUserName:
			if fe, ok := checkRequired(LocBody, FieldUserName, req.UserName); !ok {
				errs = append(errs, fe)
			} else if msg := checkUserName(req.UserName); msg != "" {
				errs = append(errs, NewFieldError(LocBody, FieldUserName, msg, TypeValueError))
			}
		case FieldPassword:
			if fe, ok := checkRequired(LocBody, FieldPassword, req.Password); !ok {
				errs = append(errs, fe)
			} else if msg := checkPassword(req.Password); msg != "" {
				errs = append(errs, NewFieldError(LocBody, FieldPassword, msg, TypeValueError))
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func (v *UserValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserName, FieldPassword, FieldPasswordConfirm, FieldFirstName, FieldLastName}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldUserName:
			if fe, ok := checkRequired(LocBody, FieldUserName, req.UserName); !ok {
				errs = append(errs, fe)
			} else if msg := checkUserName(req.UserName); msg != "" {
				errs = append(errs, NewFieldError(LocBody, FieldUserName, msg, TypeValueError))
			}
		case FieldPassword:
			if fe, ok := checkRequired(LocBody, FieldPassword, req.Password); !ok {
				errs = append(errs, fe)
			} else if msg := checkPassword(req.Password); msg != "" {
				errs = append(errs, NewFieldError(LocBody, FieldPassword, msg, TypeValueError))
			}
		case FieldPasswordConfirm:
			if fe, ok := checkRequired(LocBody, FieldPasswordConfirm, req.PasswordConfirm); !ok {
				errs = append(errs, fe)
			} else if req.Password != req.PasswordConfirm {
				errs = append(errs, NewFieldError(LocBody, FieldPasswordConfirm, msgPasswordsDiffer, TypeValueError))
			}
		case FieldFirstName:
			if req.FirstName != nil {
				if fe, ok := checkName(LocBody, FieldFirstName, *req.FirstName); !ok {
					errs = append(errs, fe)
				}
			}
		case FieldLastName:
			if req.LastName != nil {
				if fe, ok := checkName(LocBody, FieldLastName, *req.LastName); !ok {
					errs = append(errs, fe)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

// validateUpdate checks only the fields present in the request. A password
// change requires a matching confirmation.
func (v *UserValidator) validateUpdate(req models.UpdateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserName, FieldPassword, FieldPasswordConfirm, FieldFirstName, FieldLastName}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldUserName:
			if req.UserName == nil {
				continue
			}
			if msg := checkUserName(*req.UserName); msg != "" {
				errs = append(errs, NewFieldError(LocBody, FieldUserName, msg, TypeValueError))
			}
		case FieldPassword:
			if req.Password == nil {
				continue
			}
			if msg := checkPassword(*req.Password); msg != "" {
				errs = append(errs, NewFieldError(LocBody, FieldPassword, msg, TypeValueError))
			}
		case FieldPasswordConfirm:
			if derefString(req.Password) != derefString(req.PasswordConfirm) || (req.Password == nil) != (req.PasswordConfirm == nil) {
				errs = append(errs, NewFieldError(LocBody, FieldPasswordConfirm, msgPasswordsDiffer, TypeValueError))
			}
		case FieldFirstName:
			if req.FirstName == nil {
				continue
			}
			if fe, ok := checkName(LocBody, FieldFirstName, *req.FirstName); !ok {
				errs = append(errs, fe)
			}
		case FieldLastName:
			if req.LastName == nil {
				continue
			}
			if fe, ok := checkName(LocBody, FieldLastName, *req.LastName); !ok {
				errs = append(errs, fe)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func validatePagination(loc string, p models.Pagination, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLimit, FieldOffset}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldLimit:
			if fe, ok := checkMin(loc, FieldLimit, p.Limit, 1); !ok {
				errs = append(errs, fe)
			}
		case FieldOffset:
			if fe, ok := checkMin(loc, FieldOffset, p.Offset, 0); !ok {
				errs = append(errs, fe)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
