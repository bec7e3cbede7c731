package service

import (
	"context"

	"github.com/MKhiriev/gophertalk/internal/adapter"
	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/store"
	"github.com/MKhiriev/gophertalk/models"
)

type clientFeedService struct {
	session *clientSession
}

func NewClientFeedService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientFeedService {
	return &clientFeedService{
		session: &clientSession{adapter: serverAdapter, sessions: sessions, logger: logger},
	}
}

func (f *clientFeedService) Feed(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	var posts []models.Post
	err := f.session.withRefresh(ctx, func() (err error) {
		posts, err = f.session.adapter.GetPosts(ctx, filter)
		return err
	})
	return posts, err
}

func (f *clientFeedService) Thread(ctx context.Context, postID int64, page models.Pagination) (models.Post, []models.Post, error) {
	var (
		post    models.Post
		replies []models.Post
	)
	err := f.session.withRefresh(ctx, func() (err error) {
		if post, err = f.session.adapter.GetPost(ctx, postID); err != nil {
			return err
		}
		replies, err = f.session.adapter.GetPosts(ctx, models.PostFilter{ReplyToID: &postID, Pagination: page})
		return err
	})
	return post, replies, err
}

func (f *clientFeedService) Publish(ctx context.Context, text string, replyToID *int64) (models.Post, error) {
	var created models.Post
	err := f.session.withRefresh(ctx, func() (err error) {
		created, err = f.session.adapter.CreatePost(ctx, models.CreatePostRequest{Text: text, ReplyToID: replyToID})
		return err
	})
	return created, err
}

func (f *clientFeedService) View(ctx context.Context, postID int64) error {
	return f.session.withRefresh(ctx, func() error { return f.session.adapter.ViewPost(ctx, postID) })
}

func (f *clientFeedService) Like(ctx context.Context, postID int64) error {
	return f.session.withRefresh(ctx, func() error { return f.session.adapter.LikePost(ctx, postID) })
}

func (f *clientFeedService) Unlike(ctx context.Context, postID int64) error {
	return f.session.withRefresh(ctx, func() error { return f.session.adapter.UnlikePost(ctx, postID) })
}

func (f *clientFeedService) Delete(ctx context.Context, postID int64) error {
	return f.session.withRefresh(ctx, func() error { return f.session.adapter.DeletePost(ctx, postID) })
}

func (f *clientFeedService) ServerVersion(ctx context.Context) (string, error) {
	return f.session.adapter.Version(ctx)
}
