package handlers

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/akashasahu07/Linkedin-Clone/models"
	"github.com/akashasahu07/Linkedin-Clone/token"
)

// UserStore is the credential store surface the handlers need.
// Satisfied by *store.Users.
type UserStore interface {
	Create(ctx context.Context, name, email, rawPassword string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// PostStore is the post store surface the handlers need.
// Satisfied by *store.Posts.
type PostStore interface {
	Create(ctx context.Context, authorID primitive.ObjectID, authorName, content string) (*models.Post, error)
	ListRecent(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	ToggleLike(ctx context.Context, id, userID primitive.ObjectID) (*models.Post, error)
	AddComment(ctx context.Context, id, authorID primitive.ObjectID, authorName, text string) (*models.Post, error)
	UpdateContent(ctx context.Context, id, requesterID primitive.ObjectID, newContent string) (*models.Post, error)
	Delete(ctx context.Context, id, requesterID primitive.ObjectID) error
}

// Handler carries the feed service dependencies. One instance serves all
// routes; it holds no per-request state.
type Handler struct {
	Users  UserStore
	Posts  PostStore
	Tokens *token.Service
}

func New(users UserStore, posts PostStore, tokens *token.Service) *Handler {
	return &Handler{Users: users, Posts: posts, Tokens: tokens}
}

const storeTimeout = 10 * time.Second

func storeContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, storeTimeout)
}
