package service

import (
	"context"

	"github.com/MKhiriev/gophertalk/internal/validators"
	"github.com/MKhiriev/gophertalk/models"
)

// AuthValidationService rejects malformed credentials before they reach the
// wrapped AuthService. Validation failures are [validators.ValidationErrors].
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{validator: validators.NewUserValidator()}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.TokenPair, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.TokenPair{}, err
	}
	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.TokenPair, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.TokenPair{}, err
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	return v.inner.Refresh(ctx, refreshToken)
}

func (v *AuthValidationService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseAccessToken(ctx, tokenString)
}

// UserValidationService checks pagination, path ids and update bodies.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{validator: validators.NewUserValidator()}
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

func (v *UserValidationService) GetUsers(ctx context.Context, page models.Pagination) ([]models.User, error) {
	if err := v.validator.Validate(ctx, page); err != nil {
		return nil, err
	}
	return v.inner.GetUsers(ctx, page)
}

func (v *UserValidationService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	if err := validators.ValidatePathID(validators.FieldUserID, userID); err != nil {
		return models.User{}, err
	}
	return v.inner.GetUserByID(ctx, userID)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, callerID, userID int64, update models.UpdateUserRequest) (models.User, error) {
	if err := validators.ValidatePathID(validators.FieldUserID, userID); err != nil {
		return models.User{}, err
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.User{}, err
	}
	return v.inner.UpdateUser(ctx, callerID, userID, update)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, callerID, userID int64) error {
	if err := validators.ValidatePathID(validators.FieldUserID, userID); err != nil {
		return err
	}
	return v.inner.DeleteUser(ctx, callerID, userID)
}

// PostValidationService checks post bodies, list filters and path ids.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{validator: validators.NewPostValidator()}
}

func (v *PostValidationService) Wrap(inner PostService) PostService {
	v.inner = inner
	return v
}

func (v *PostValidationService) CreatePost(ctx context.Context, post models.CreatePostRequest) (models.Post, error) {
	if err := v.validator.Validate(ctx, post); err != nil {
		return models.Post{}, err
	}
	return v.inner.CreatePost(ctx, post)
}

func (v *PostValidationService) GetPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, err
	}
	return v.inner.GetPosts(ctx, filter)
}

func (v *PostValidationService) GetPostByID(ctx context.Context, postID, userID int64) (models.Post, error) {
	if err := validators.ValidatePathID(validators.FieldPostID, postID); err != nil {
		return models.Post{}, err
	}
	return v.inner.GetPostByID(ctx, postID, userID)
}

func (v *PostValidationService) DeletePost(ctx context.Context, postID, ownerID int64) error {
	if err := validators.ValidatePathID(validators.FieldPostID, postID); err != nil {
		return err
	}
	return v.inner.DeletePost(ctx, postID, ownerID)
}

func (v *PostValidationService) ViewPost(ctx context.Context, action models.PostAction) error {
	if err := v.validator.Validate(ctx, action); err != nil {
		return err
	}
	return v.inner.ViewPost(ctx, action)
}

func (v *PostValidationService) LikePost(ctx context.Context, action models.PostAction) error {
	if err := v.validator.Validate(ctx, action); err != nil {
		return err
	}
	return v.inner.LikePost(ctx, action)
}

func (v *PostValidationService) UnlikePost(ctx context.Context, action models.PostAction) error {
	if err := v.validator.Validate(ctx, action); err != nil {
		return err
	}
	return v.inner.UnlikePost(ctx, action)
}
