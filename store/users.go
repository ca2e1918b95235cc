package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/akashasahu07/Linkedin-Clone/models"
)

// Users persists user accounts in the users collection. Passwords are
// bcrypt-hashed before they touch the database; the raw value is never stored.
type Users struct {
	coll *mongo.Collection
}

func NewUsers(coll *mongo.Collection) *Users {
	return &Users{coll: coll}
}

func (s *Users) Create(ctx context.Context, name, email, rawPassword string) (*models.User, error) {
	if name == "" || email == "" || rawPassword == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrValidation)
	}

	// Fast-path check; the unique index on email is the real guard.
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
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

	if _, err := s.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return user, nil
}

func (s *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Users) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
