package validators

import (
	"context"

	"github.com/MKhiriev/gophertalk/models"
)

// PostValidator validates [models.CreatePostRequest], [models.PostFilter]
// and [models.PostAction].
type PostValidator struct{}

func NewPostValidator() Validator {
	return &PostValidator{}
}

func (v *PostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreatePostRequest:
		return v.validateCreate(value, fields...)
	case *models.CreatePostRequest:
		return v.validateCreate(*value, fields...)

	case models.PostFilter:
		return v.validateFilter(value, fields...)
	case *models.PostFilter:
		return v.validateFilter(*value, fields...)

	case models.PostAction:
		return v.validateAction(value, fields...)
	case *models.PostAction:
		return v.validateAction(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PostValidator) validateCreate(req models.CreatePostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldReplyToID}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldText:
			if fe, ok := checkLength(LocBody, FieldText, req.Text, minPostLen, maxPostLen); !ok {
				errs = append(errs, fe)
			}
		case FieldReplyToID:
			if req.ReplyToID == nil {
				continue
			}
			if fe, ok := checkMin(LocBody, FieldReplyToID, *req.ReplyToID, 1); !ok {
				errs = append(errs, fe)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func (v *PostValidator) validateFilter(filter models.PostFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldReplyToID, FieldLimit, FieldOffset}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if filter.OwnerID == nil {
				continue
			}
			if fe, ok := checkMin(LocQuery, FieldOwnerID, *filter.OwnerID, 1); !ok {
				errs = append(errs, fe)
			}
		case FieldReplyToID:
			if filter.ReplyToID == nil {
				continue
			}
			if fe, ok := checkMin(LocQuery, FieldReplyToID, *filter.ReplyToID, 1); !ok {
				errs = append(errs, fe)
			}
		case FieldLimit, FieldOffset:
			if err := validatePagination(LocQuery, filter.Pagination, f); err != nil {
				errs = append(errs, err.(ValidationErrors)...)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func (v *PostValidator) validateAction(action models.PostAction, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPostID}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldPostID:
			if fe, ok := checkMin(LocPath, FieldPostID, action.PostID, 1); !ok {
				errs = append(errs, fe)
			}
		case FieldUserID:
			if fe, ok := checkMin(LocPath, FieldUserID, action.UserID, 1); !ok {
				errs = append(errs, fe)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}
