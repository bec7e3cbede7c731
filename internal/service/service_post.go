package service

import (
	"context"

	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/store"
	"github.com/MKhiriev/gophertalk/models"
)

// postService forwards to the repository; the rules live in the store
// queries and in the validation decorator.
type postService struct {
	postRepository store.PostRepository

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{postRepository: postRepository, logger: logger}
}

func (s *postService) CreatePost(ctx context.Context, post models.CreatePostRequest) (models.Post, error) {
	created, err := s.postRepository.CreatePost(ctx, post)
	if err != nil {
		return models.Post{}, err
	}

	logger.FromContext(ctx).Debug().Int64("post_id", created.ID).Int64("user_id", created.UserID).Msg("post created")
	return created, nil
}

func (s *postService) GetPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	return s.postRepository.GetPosts(ctx, filter)
}

func (s *postService) GetPostByID(ctx context.Context, postID, userID int64) (models.Post, error) {
	return s.postRepository.GetPostByID(ctx, postID, userID)
}

func (s *postService) DeletePost(ctx context.Context, postID, ownerID int64) error {
	return s.postRepository.DeletePost(ctx, postID, ownerID)
}

func (s *postService) ViewPost(ctx context.Context, action models.PostAction) error {
	return s.postRepository.ViewPost(ctx, action)
}

func (s *postService) LikePost(ctx context.Context, action models.PostAction) error {
	return s.postRepository.LikePost(ctx, action)
}

func (s *postService) UnlikePost(ctx context.Context, action models.PostAction) error {
	return s.postRepository.UnlikePost(ctx, action)
}
