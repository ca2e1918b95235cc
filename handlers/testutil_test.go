package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/akashasahu07/Linkedin-Clone/handlers"
	"github.com/akashasahu07/Linkedin-Clone/middleware"
	"github.com/akashasahu07/Linkedin-Clone/models"
	"github.com/akashasahu07/Linkedin-Clone/routes"
	"github.com/akashasahu07/Linkedin-Clone/store"
	"github.com/akashasahu07/Linkedin-Clone/token"
)

// fakeUsers is an in-memory stand-in for store.Users with the same error
// contract.
type fakeUsers struct {
	mu   sync.Mutex
	byID map[primitive.ObjectID]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[primitive.ObjectID]*models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, name, email, rawPassword string) (*models.User, error) {
	if name == "" || email == "" || rawPassword == "" {
		return nil, store.ErrValidation
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.byID {
		if u.Email == email {
			return nil, store.ErrDuplicateEmail
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		CreatedAt: time.Now(),
	}
	f.byID[user.ID] = user
	return user, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byID[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) remove(id primitive.ObjectID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
}

// fakePosts mirrors store.Posts semantics, including the feed cap and the
// set behavior of likes.
type fakePosts struct {
	mu    sync.Mutex
	posts map[primitive.ObjectID]*models.Post
	last  time.Time
}

func newFakePosts() *fakePosts {
	return &fakePosts{posts: map[primitive.ObjectID]*models.Post{}}
}

func (f *fakePosts) Create(_ context.Context, authorID primitive.ObjectID, authorName, content string) (*models.Post, error) {
	if content == "" {
		return nil, store.ErrValidation
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	createdAt := time.Now()
	if !createdAt.After(f.last) {
		createdAt = f.last.Add(time.Millisecond)
	}
	f.last = createdAt

	post := &models.Post{
		ID:        primitive.NewObjectID(),
		UserID:    authorID,
		UserName:  authorName,
		Content:   content,
		Likes:     []primitive.ObjectID{},
		Comments:  []models.Comment{},
		CreatedAt: createdAt,
	}
	f.posts[post.ID] = post
	copied := *post
	return &copied, nil
}

func (f *fakePosts) ListRecent(_ context.Context) ([]models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all := make([]models.Post, 0, len(f.posts))
	for _, p := range f.posts {
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if len(all) > store.FeedLimit {
		all = all[:store.FeedLimit]
	}
	return all, nil
}

func (f *fakePosts) GetByID(_ context.Context, id primitive.ObjectID) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.posts[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakePosts) ToggleLike(_ context.Context, id, userID primitive.ObjectID) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	for i, liker := range post.Likes {
		if liker == userID {
			post.Likes = append(post.Likes[:i], post.Likes[i+1:]...)
			copied := *post
			return &copied, nil
		}
	}
	post.Likes = append(post.Likes, userID)
	copied := *post
	return &copied, nil
}

func (f *fakePosts) AddComment(_ context.Context, id, authorID primitive.ObjectID, authorName, text string) (*models.Post, error) {
	if text == "" {
		return nil, store.ErrValidation
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[id]
	if !ok {
		return nil, store.ErrNotFound
	}

	post.Comments = append(post.Comments, models.Comment{
		UserID:    authorID,
		UserName:  authorName,
		Text:      text,
		CreatedAt: time.Now(),
	})
	copied := *post
	return &copied, nil
}

func (f *fakePosts) UpdateContent(_ context.Context, id, requesterID primitive.ObjectID, newContent string) (*models.Post, error) {
	if newContent == "" {
		return nil, store.ErrValidation
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if post.UserID != requesterID {
		return nil, store.ErrForbidden
	}

	post.Content = newContent
	copied := *post
	return &copied, nil
}

func (f *fakePosts) Delete(_ context.Context, id, requesterID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[id]
	if !ok {
		return store.ErrNotFound
	}
	if post.UserID != requesterID {
		return store.ErrForbidden
	}

	delete(f.posts, id)
	return nil
}

// env bundles a router over the fakes, mirroring the wiring in main.go.
type env struct {
	router *gin.Engine
	users  *fakeUsers
	posts  *fakePosts
	tokens *token.Service
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := newFakeUsers()
	posts := newFakePosts()
	tokens := token.NewService("test-secret", time.Hour)

	h := handlers.New(users, posts, tokens)
	router := routes.SetupRouter(h, middleware.RequireAuth(tokens, users), []string{"http://localhost:3000"})

	return &env{router: router, users: users, posts: posts, tokens: tokens}
}

func (e *env) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// signup registers a user and returns the bearer token and public profile.
func (e *env) signup(t *testing.T, name, email, password string) (string, userJSON) {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/signup", "", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("signup %s: expected 201, got %d: %s", email, w.Code, w.Body.String())
	}

	var resp authResponse
	decodeJSON(t, w, &resp)
	return resp.Token, resp.User
}

func mustObjectID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		t.Fatalf("parse object id %q: %v", hex, err)
	}
	return id
}

type userJSON struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    userJSON `json:"user"`
}

type commentJSON struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Text     string `json:"text"`
}

type postJSON struct {
	ID       string        `json:"id"`
	UserID   string        `json:"userId"`
	UserName string        `json:"userName"`
	Content  string        `json:"content"`
	Likes    []string      `json:"likes"`
	Comments []commentJSON `json:"comments"`
}

type postEnvelope struct {
	Message string   `json:"message"`
	Post    postJSON `json:"post"`
}

type errorJSON struct {
	Error string `json:"error"`
}
