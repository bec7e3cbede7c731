package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/mock"
	"github.com/MKhiriev/gophertalk/internal/validators"
	"github.com/MKhiriev/gophertalk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// The decorated services below sit on mocked repositories: a rejected
// request must never reach them, so any unexpected call fails the test.

func requireValidationField(t *testing.T, err error, loc, field string) {
	t.Helper()

	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.NotEmpty(t, verrs)
	assert.Equal(t, []string{loc, field}, verrs[0].Loc)
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestAuthValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthValidationService().Wrap(NewAuthService(repo, testAppConfig(), logger.Nop()))
	ctx := context.Background()

	_, err := svc.Register(ctx, models.RegisterRequest{UserName: "1gopher", Password: "p@ssw0rd", PasswordConfirm: "p@ssw0rd"})
	requireValidationField(t, err, validators.LocBody, validators.FieldUserName)

	_, err = svc.Register(ctx, models.RegisterRequest{UserName: "gopher", Password: "p@ssw0rd", PasswordConfirm: "other"})
	requireValidationField(t, err, validators.LocBody, validators.FieldPasswordConfirm)

	_, err = svc.Login(ctx, models.LoginRequest{UserName: "gopher", Password: "weak"})
	requireValidationField(t, err, validators.LocBody, validators.FieldPassword)

	repo.EXPECT().FindUserByUserName(gomock.Any(), "gopher").Return(models.AuthUser{ID: 1, PasswordHash: "x"}, nil)
	_, err = svc.Login(ctx, models.LoginRequest{UserName: "gopher", Password: "p@ssw0rd"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

// ── users ────────────────────────────────────────────────────────────────────

func TestUserValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewUserValidationService().Wrap(NewUserService(repo, bcrypt.MinCost, logger.Nop()))
	ctx := context.Background()

	_, err := svc.GetUsers(ctx, models.Pagination{Limit: 0})
	requireValidationField(t, err, validators.LocQuery, validators.FieldLimit)

	_, err = svc.GetUserByID(ctx, 0)
	requireValidationField(t, err, validators.LocPath, validators.FieldUserID)

	bad := "x1"
	_, err = svc.UpdateUser(ctx, 1, 1, models.UpdateUserRequest{FirstName: &bad})
	requireValidationField(t, err, validators.LocBody, validators.FieldFirstName)

	err = svc.DeleteUser(ctx, 1, -1)
	requireValidationField(t, err, validators.LocPath, validators.FieldUserID)

	repo.EXPECT().GetUsers(gomock.Any(), models.Pagination{Limit: 10}).Return([]models.User{}, nil)
	_, err = svc.GetUsers(ctx, models.Pagination{Limit: 10})
	assert.NoError(t, err)
}

// ── posts ────────────────────────────────────────────────────────────────────

func TestPostValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPostRepository(ctrl)
	svc := NewPostValidationService().Wrap(NewPostService(repo, logger.Nop()))
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, models.CreatePostRequest{Text: "", UserID: 1})
	requireValidationField(t, err, validators.LocBody, validators.FieldText)

	zero := int64(0)
	_, err = svc.GetPosts(ctx, models.PostFilter{UserID: 1, OwnerID: &zero, Pagination: models.Pagination{Limit: 10}})
	requireValidationField(t, err, validators.LocQuery, validators.FieldOwnerID)

	_, err = svc.GetPostByID(ctx, 0, 1)
	requireValidationField(t, err, validators.LocPath, validators.FieldPostID)

	err = svc.DeletePost(ctx, 0, 1)
	requireValidationField(t, err, validators.LocPath, validators.FieldPostID)

	for _, call := range []func(context.Context, models.PostAction) error{svc.ViewPost, svc.LikePost, svc.UnlikePost} {
		err = call(ctx, models.PostAction{PostID: 0, UserID: 1})
		requireValidationField(t, err, validators.LocPath, validators.FieldPostID)
	}

	repo.EXPECT().LikePost(gomock.Any(), models.PostAction{PostID: 5, UserID: 1}).Return(nil)
	assert.NoError(t, svc.LikePost(ctx, models.PostAction{PostID: 5, UserID: 1}))
}
