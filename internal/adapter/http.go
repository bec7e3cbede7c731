package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/gophertalk/internal/config"
	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/utils"
	"github.com/MKhiriev/gophertalk/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu     sync.RWMutex
	tokens models.TokenPair

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises and validates cfg.BaseURL and applies cfg.RequestTimeout.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetTokens(pair models.TokenPair) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tokens = models.TokenPair{
		AccessToken:  strings.TrimSpace(pair.AccessToken),
		RefreshToken: strings.TrimSpace(pair.RefreshToken),
	}
}

func (h *httpServerAdapter) Tokens() models.TokenPair {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tokens
}

// Register implements [ServerAdapter]. POST /auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.TokenPair, error) {
	return h.requestTokens(ctx, "/auth/register", req)
}

// Login implements [ServerAdapter]. POST /auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.TokenPair, error) {
	return h.requestTokens(ctx, "/auth/login", req)
}

// Refresh implements [ServerAdapter]. POST /auth/refresh with the refresh
// token as bearer.
func (h *httpServerAdapter) Refresh(ctx context.Context) (models.TokenPair, error) {
	refresh := h.Tokens().RefreshToken
	if refresh == "" {
		return models.TokenPair{}, ErrNoRefreshToken
	}

	var pair models.TokenPair
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(refresh).
		SetResult(&pair).
		Post("/auth/refresh")
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenPair{}, err
	}

	h.SetTokens(pair)
	return pair, nil
}

func (h *httpServerAdapter) requestTokens(ctx context.Context, path string, body any) (models.TokenPair, error) {
	var pair models.TokenPair
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&pair).
		Post(path)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenPair{}, err
	}
	if pair.AccessToken == "" {
		return models.TokenPair{}, fmt.Errorf("%s: empty access token in response", path)
	}

	h.SetTokens(pair)
	return pair, nil
}

// GetPosts implements [ServerAdapter]. GET /posts; filter.UserID is ignored
// since the server takes the caller from the token.
func (h *httpServerAdapter) GetPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	params := map[string]string{
		"limit":  strconv.FormatInt(filter.Limit, 10),
		"offset": strconv.FormatInt(filter.Offset, 10),
	}
	if filter.Search != nil && *filter.Search != "" {
		params["search"] = *filter.Search
	}
	if filter.OwnerID != nil {
		params["owner_id"] = strconv.FormatInt(*filter.OwnerID, 10)
	}
	if filter.ReplyToID != nil {
		params["reply_to_id"] = strconv.FormatInt(*filter.ReplyToID, 10)
	}

	var posts []models.Post
	resp, err := h.authedRequest(ctx).
		SetQueryParams(params).
		SetResult(&posts).
		Get("/posts")
	if err != nil {
		return nil, fmt.Errorf("get posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts, nil
}

func (h *httpServerAdapter) GetPost(ctx context.Context, postID int64) (models.Post, error) {
	var post models.Post
	resp, err := h.authedRequest(ctx).
		SetResult(&post).
		Get(postPath(postID))
	if err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return post, nil
}

func (h *httpServerAdapter) CreatePost(ctx context.Context, post models.CreatePostRequest) (models.Post, error) {
	var created models.Post
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(post).
		SetResult(&created).
		Post("/posts")
	if err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Post{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) DeletePost(ctx context.Context, postID int64) error {
	return h.send(ctx, resty.MethodDelete, postPath(postID))
}

func (h *httpServerAdapter) ViewPost(ctx context.Context, postID int64) error {
	return h.send(ctx, resty.MethodPost, postPath(postID)+"/view")
}

func (h *httpServerAdapter) LikePost(ctx context.Context, postID int64) error {
	return h.send(ctx, resty.MethodPost, postPath(postID)+"/like")
}

func (h *httpServerAdapter) UnlikePost(ctx context.Context, postID int64) error {
	return h.send(ctx, resty.MethodDelete, postPath(postID)+"/like")
}

func (h *httpServerAdapter) GetUser(ctx context.Context, userID int64) (models.User, error) {
	var user models.User
	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/users/" + strconv.FormatInt(userID, 10))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) send(ctx context.Context, method, path string) error {
	resp, err := h.authedRequest(ctx).Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Tokens().AccessToken; token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func postPath(postID int64) string {
	return "/posts/" + strconv.FormatInt(postID, 10)
}
