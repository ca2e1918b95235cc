package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// UserName is a snapshot of the author's display name taken at
	// creation time; it is not updated if the user later renames.
	UserID    primitive.ObjectID   `bson:"userId" json:"userId"`
	UserName  string               `bson:"userName" json:"userName"`
	Content   string               `bson:"content" json:"content"`
	Likes     []primitive.ObjectID `bson:"likes" json:"likes"`
	Comments  []Comment            `bson:"comments" json:"comments"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
}

// Comment is embedded in its post. Comments are append-only and carry the
// same author-name snapshot as posts.
type Comment struct {
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	UserName  string             `bson:"userName" json:"userName"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
