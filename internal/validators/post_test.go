package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/gophertalk/models"
	"github.com/stretchr/testify/assert"
)

func TestPostValidator_UnsupportedType(t *testing.T) {
	err := NewPostValidator().Validate(context.Background(), "post")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestPostValidator_Create(t *testing.T) {
	tests := []struct {
		name string
		req  models.CreatePostRequest
		want []string
	}{
		{name: "valid", req: models.CreatePostRequest{Text: "hello"}},
		{name: "valid reply", req: models.CreatePostRequest{Text: "hi", ReplyToID: ptr(int64(1))}},
		{name: "max length", req: models.CreatePostRequest{Text: strings.Repeat("я", 280)}},
		{name: "empty text", req: models.CreatePostRequest{Text: ""}, want: []string{FieldText}},
		{name: "too long", req: models.CreatePostRequest{Text: strings.Repeat("a", 281)}, want: []string{FieldText}},
		{
			name: "bad reply id",
			req:  models.CreatePostRequest{Text: "hi", ReplyToID: ptr(int64(0))},
			want: []string{FieldReplyToID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewPostValidator().Validate(context.Background(), tt.req)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, requireFieldErrors(t, err))
		})
	}
}

func TestPostValidator_Filter(t *testing.T) {
	valid := models.PostFilter{UserID: 1, Pagination: models.Pagination{Limit: 100}}
	assert.NoError(t, NewPostValidator().Validate(context.Background(), &valid))

	bad := models.PostFilter{
		OwnerID:    ptr(int64(0)),
		ReplyToID:  ptr(int64(-3)),
		Pagination: models.Pagination{Limit: 0, Offset: -1},
	}
	err := NewPostValidator().Validate(context.Background(), bad)
	assert.Equal(t, []string{FieldOwnerID, FieldReplyToID, FieldLimit, FieldOffset}, requireFieldErrors(t, err))
}

func TestPostValidator_Action(t *testing.T) {
	v := NewPostValidator()

	assert.NoError(t, v.Validate(context.Background(), models.PostAction{PostID: 1, UserID: 2}))

	err := v.Validate(context.Background(), models.PostAction{PostID: 0})
	assert.Equal(t, []string{FieldPostID}, requireFieldErrors(t, err))

	err = v.Validate(context.Background(), models.PostAction{PostID: 1}, FieldPostID, FieldUserID)
	assert.Equal(t, []string{FieldUserID}, requireFieldErrors(t, err))
}

func TestValidatePathID(t *testing.T) {
	assert.NoError(t, ValidatePathID(FieldUserID, 1))

	err := ValidatePathID(FieldUserID, 0)
	var verrs ValidationErrors
	if assert.ErrorAs(t, err, &verrs) {
		assert.Equal(t, []string{LocPath, FieldUserID}, verrs[0].Loc)
		assert.Equal(t, TypeGreaterEqual, verrs[0].Type)
	}
}
