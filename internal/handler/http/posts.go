package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/gophertalk/internal/utils"
	"github.com/MKhiriev/gophertalk/internal/validators"
	"github.com/MKhiriev/gophertalk/models"
)

// getPosts serves GET /posts?limit&offset&reply_to_id&owner_id&search.
func (h *Handler) getPosts(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r)
	filter := models.PostFilter{
		UserID:     callerID(r),
		Search:     q.optionalString("search"),
		OwnerID:    q.optionalInt(validators.FieldOwnerID),
		ReplyToID:  q.optionalInt(validators.FieldReplyToID),
		Pagination: q.pagination(defaultPostsLimit),
	}
	if err := q.err(); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	posts, err := h.services.PostService.GetPosts(r.Context(), filter)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}
	req.UserID = callerID(r)

	post, err := h.services.PostService.CreatePost(r.Context(), req)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, post, http.StatusCreated)
}

func (h *Handler) getPostByID(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, validators.FieldPostID)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	post, err := h.services.PostService.GetPostByID(r.Context(), postID, callerID(r))
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	postID, err := pathID(r, validators.FieldPostID)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	if err = h.services.PostService.DeletePost(r.Context(), postID, callerID(r)); err != nil {
		writeError(w, r, err, http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) viewPost(w http.ResponseWriter, r *http.Request) {
	h.postAction(w, r, h.services.PostService.ViewPost, http.StatusCreated)
}

func (h *Handler) likePost(w http.ResponseWriter, r *http.Request) {
	h.postAction(w, r, h.services.PostService.LikePost, http.StatusCreated)
}

func (h *Handler) unlikePost(w http.ResponseWriter, r *http.Request) {
	h.postAction(w, r, h.services.PostService.UnlikePost, http.StatusNoContent)
}

// postAction runs a view/like/unlike of the path post by the caller.
func (h *Handler) postAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, action models.PostAction) error, status int) {
	postID, err := pathID(r, validators.FieldPostID)
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	if err = action(r.Context(), models.PostAction{PostID: postID, UserID: callerID(r)}); err != nil {
		writeError(w, r, err, http.StatusNotFound)
		return
	}

	w.WriteHeader(status)
}
