package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/akashasahu07/Linkedin-Clone/models"
)

// FeedLimit caps how many posts a single listing returns. Older posts stay
// fetchable by id but fall out of the feed.
const FeedLimit = 100

// Posts persists posts in the posts collection. Likes and comments are
// embedded arrays mutated with atomic $addToSet/$pull/$push updates, so
// concurrent toggles and comments against the same post never lose writes.
type Posts struct {
	coll *mongo.Collection
}

func NewPosts(coll *mongo.Collection) *Posts {
	return &Posts{coll: coll}
}

func (s *Posts) Create(ctx context.Context, authorID primitive.ObjectID, authorName, content string) (*models.Post, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: post content is required", ErrValidation)
	}

	post := &models.Post{
		ID:        primitive.NewObjectID(),
		UserID:    authorID,
		UserName:  authorName,
		Content:   content,
		Likes:     []primitive.ObjectID{},
		Comments:  []models.Comment{},
		CreatedAt: time.Now(),
	}

	if _, err := s.coll.InsertOne(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *Posts) ListRecent(ctx context.Context) ([]models.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(FeedLimit)

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (s *Posts) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var post models.Post
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ToggleLike removes userID from the like set if present, otherwise adds it.
// Each branch is a single atomic update whose filter encodes the membership
// check, so concurrent toggles from different users cannot drop each other.
func (s *Posts) ToggleLike(ctx context.Context, id, userID primitive.ObjectID) (*models.Post, error) {
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post models.Post
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "likes": userID},
		bson.M{"$pull": bson.M{"likes": userID}},
		after,
	).Decode(&post)
	if err == nil {
		return &post, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	// Not currently liked (or the post does not exist): try to add.
	err = s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$addToSet": bson.M{"likes": userID}},
		after,
	).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// AddComment appends to the post's comment list. Existing comments are never
// touched; $push keeps concurrent appends from overwriting each other.
func (s *Posts) AddComment(ctx context.Context, id, authorID primitive.ObjectID, authorName, text string) (*models.Post, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", ErrValidation)
	}

	comment := models.Comment{
		UserID:    authorID,
		UserName:  authorName,
		Text:      text,
		CreatedAt: time.Now(),
	}

	var post models.Post
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"comments": comment}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// UpdateContent replaces the post content. Only the author may update; the
// ownership check is re-applied in the update filter so a concurrent delete
// cannot slip a write through.
func (s *Posts) UpdateContent(ctx context.Context, id, requesterID primitive.ObjectID, newContent string) (*models.Post, error) {
	if newContent == "" {
		return nil, fmt.Errorf("%w: post content is required", ErrValidation)
	}

	post, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.UserID != requesterID {
		return nil, ErrForbidden
	}

	var updated models.Post
	err = s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "userId": requesterID},
		bson.M{"$set": bson.M{"content": newContent}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes the post. Only the author may delete.
func (s *Posts) Delete(ctx context.Context, id, requesterID primitive.ObjectID) error {
	post, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != requesterID {
		return ErrForbidden
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id, "userId": requesterID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
