package validators

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field names, also used as the last element of FieldError.Loc.
const (
	FieldUserName        = "user_name"
	FieldPassword        = "password"
	FieldPasswordConfirm = "password_confirm"
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldText            = "text"
	FieldReplyToID       = "reply_to_id"
	FieldOwnerID         = "owner_id"
	FieldLimit           = "limit"
	FieldOffset          = "offset"
	FieldPostID          = "post_id"
	FieldUserID          = "user_id"
)

const (
	minNameLen     = 1
	maxNameLen     = 30
	minPasswordLen = 5
	maxPasswordLen = 30
	minPostLen     = 1
	maxPostLen     = 280

	passwordSpecials = "@$!%*?&"
)

var userNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{5,30}$`)

const (
	msgUserNameFormat  = "Must be alphanumeric or underscore (5-30 characters)"
	msgUserNameLetter  = "Must start with a letter"
	msgPasswordFormat  = "Must contain letter, number and special character (5-30 characters)"
	msgNameLetters     = "Only letters allowed"
	msgPasswordsDiffer = "Passwords does not match"
	msgFieldRequired   = "Field required"
)

// checkRequired reports an empty required string as missing. JSON decoding
// leaves an absent field empty, so both cases land here.
func checkRequired(loc, field, value string) (FieldError, bool) {
	if value == "" {
		return NewFieldError(loc, field, msgFieldRequired, TypeMissing), false
	}
	return FieldError{}, true
}

// checkUserName returns an empty message when name is acceptable.
func checkUserName(name string) string {
	if !userNamePattern.MatchString(name) {
		return msgUserNameFormat
	}
	if name[0] >= '0' && name[0] <= '9' {
		return msgUserNameLetter
	}
	return ""
}

func checkPassword(password string) string {
	n := utf8.RuneCountInString(password)
	if n < minPasswordLen || n > maxPasswordLen || strings.ContainsRune(password, '\n') {
		return msgPasswordFormat
	}

	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}
	if !hasLetter || !hasDigit || !hasSpecial {
		return msgPasswordFormat
	}

	return ""
}

// checkName validates first and last names: letters only, 1 to 30 characters.
func checkName(loc, field, name string) (FieldError, bool) {
	if fe, ok := checkLength(loc, field, name, minNameLen, maxNameLen); !ok {
		return fe, false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return NewFieldError(loc, field, msgNameLetters, TypeValueError), false
		}
	}
	return FieldError{}, true
}

func checkLength(loc, field, value string, minLen, maxLen int) (FieldError, bool) {
	n := utf8.RuneCountInString(value)
	if n < minLen {
		return NewFieldError(loc, field, "String should have at least "+strconv.Itoa(minLen)+" character(s)", TypeTooShort), false
	}
	if n > maxLen {
		return NewFieldError(loc, field, "String should have at most "+strconv.Itoa(maxLen)+" character(s)", TypeTooLong), false
	}
	return FieldError{}, true
}

func checkMin(loc, field string, value, minValue int64) (FieldError, bool) {
	if value < minValue {
		return NewFieldError(loc, field, "Input should be greater than or equal to "+strconv.FormatInt(minValue, 10), TypeGreaterEqual), false
	}
	return FieldError{}, true
}

// ValidatePathID rejects a path identifier below 1.
func ValidatePathID(field string, id int64) error {
	if fe, ok := checkMin(LocPath, field, id, 1); !ok {
		return ValidationErrors{fe}
	}
	return nil
}
