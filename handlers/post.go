package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/akashasahu07/Linkedin-Clone/middleware"
	"github.com/akashasahu07/Linkedin-Clone/store"
)

type CreatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

type UpdatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *Handler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post content is required"})
		return
	}

	user, ok := middleware.AuthedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	ctx, cancel := storeContext(c.Request.Context())
	defer cancel()

	post, err := h.Posts.Create(ctx, user.ID, user.Name, req.Content)
	if errors.Is(err, store.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post content is required"})
		return
	}
	if err != nil {
		log.Printf("CreatePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"post":    post,
	})
}

// ListPosts is the one read that requires no authentication.
func (h *Handler) ListPosts(c *gin.Context) {
	ctx, cancel := storeContext(c.Request.Context())
	defer cancel()

	posts, err := h.Posts.ListRecent(ctx)
	if err != nil {
		log.Printf("ListPosts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) LikePost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	user, ok := middleware.AuthedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	ctx, cancel := storeContext(c.Request.Context())
	defer cancel()

	post, err := h.Posts.ToggleLike(ctx, postID, user.ID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		log.Printf("LikePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) CommentPost(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	user, ok := middleware.AuthedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	ctx, cancel := storeContext(c.Request.Context())
	defer cancel()

	post, err := h.Posts.AddComment(ctx, postID, user.ID, user.Name, req.Text)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if errors.Is(err, store.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}
	if err != nil {
		log.Printf("CommentPost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) UpdatePost(c *gin.Context) {
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post content is required"})
		return
	}

	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	user, ok := middleware.AuthedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	ctx, cancel := storeContext(c.Request.Context())
	defer cancel()

	post, err := h.Posts.UpdateContent(ctx, postID, user.ID, req.Content)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if errors.Is(err, store.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this post"})
		return
	}
	if errors.Is(err, store.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post content is required"})
		return
	}
	if err != nil {
		log.Printf("UpdatePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *Handler) DeletePost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	user, ok := middleware.AuthedUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	ctx, cancel := storeContext(c.Request.Context())
	defer cancel()

	err = h.Posts.Delete(ctx, postID, user.ID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if errors.Is(err, store.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this post"})
		return
	}
	if err != nil {
		log.Printf("DeletePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
