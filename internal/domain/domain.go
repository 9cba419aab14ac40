package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Model types ---

// User is a forum participant. Users are created lazily on their first post;
// there is no password or credential material at this layer.
type User struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
}

type Community struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// Message belongs to one user and one community. A nil ParentID marks a root
// message; replies reference their parent, forming a tree of unbounded depth.
// SentimentScore is computed once at creation time and never updated.
type Message struct {
	ID             uuid.UUID  `db:"id"`
	UserID         uuid.UUID  `db:"user_id"`
	CommunityID    uuid.UUID  `db:"community_id"`
	ParentID       *uuid.UUID `db:"parent_message_id"`
	Content        string     `db:"content"`
	UserIP         string     `db:"user_ip"`
	SentimentScore float64    `db:"sentiment_score"`
	CreatedAt      time.Time  `db:"created_at"`
}

type Reaction struct {
	ID        uuid.UUID    `db:"id"`
	MessageID uuid.UUID    `db:"message_id"`
	UserID    uuid.UUID    `db:"user_id"`
	Kind      ReactionKind `db:"kind"`
	CreatedAt time.Time    `db:"created_at"`
}

// --- Read models ---

// RootMessageStats is a root message with the counts the engagement ranking
// is computed from. ReplyCount covers direct children only, not the subtree.
type RootMessageStats struct {
	Message       Message
	Author        User
	ReactionCount int
	ReplyCount    int
}

// RankedMessage is a root message with its computed engagement score.
type RankedMessage struct {
	Message         Message
	Author          User
	ReactionCount   int
	ReplyCount      int
	EngagementScore float64
}

// PostRecord is the (ip, user) slice of a message used by the suspicious IP
// detector.
type PostRecord struct {
	IP       string
	UserID   uuid.UUID
	Username string
}

// SuspiciousIP is an originating address shared by UserCount distinct users,
// with the full set of usernames that posted from it.
type SuspiciousIP struct {
	IP        string   `json:"ip"`
	UserCount int      `json:"user_count"`
	Usernames []string `json:"usernames"`
}

// NewMessage carries the caller-supplied fields for message creation.
type NewMessage struct {
	Username    string
	CommunityID uuid.UUID
	Content     string
	UserIP      string
	ParentID    *uuid.UUID
}

// NewCommunity carries the caller-supplied fields for community creation.
type NewCommunity struct {
	Name        string
	Description string
}

// --- Interfaces ---

// UserRepository abstracts user persistence.
type UserRepository interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
	FindOrCreate(ctx context.Context, username string) (*User, error)
}

// CommunityRepository abstracts community persistence.
type CommunityRepository interface {
	Create(ctx context.Context, community *Community) error
	GetByID(ctx context.Context, communityID uuid.UUID) (*Community, error)
	List(ctx context.Context) ([]Community, error)
	Delete(ctx context.Context, communityID uuid.UUID) error
}

// MessageRepository abstracts message persistence, including the read models
// consumed by the analytics components.
type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
	GetByID(ctx context.Context, messageID uuid.UUID) (*Message, error)
	// Delete removes the message and all descendant replies. Reactions on the
	// deleted messages go with them.
	Delete(ctx context.Context, messageID uuid.UUID) error
	// ListRootStats returns every root message of a community with its
	// direct reaction and reply counts.
	ListRootStats(ctx context.Context, communityID uuid.UUID) ([]RootMessageStats, error)
	// ListPosts returns one record per (ip, user) pair across all messages.
	ListPosts(ctx context.Context) ([]PostRecord, error)
}

// ReactionRepository abstracts reaction persistence. Create must surface
// ErrDuplicateReaction when the (message, user, kind) uniqueness constraint
// rejects the insert.
type ReactionRepository interface {
	Exists(ctx context.Context, messageID, userID uuid.UUID, kind ReactionKind) (bool, error)
	Create(ctx context.Context, reaction *Reaction) error
	CountByKind(ctx context.Context, messageID uuid.UUID) (map[ReactionKind]int, error)
}

// AnalyticsCache caches computed analytics responses. Implementations may be
// nil-safe no-ops; the app layer treats a nil cache as disabled.
type AnalyticsCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

// ForumService is the application layer contract. Handlers route all
// operations through here.
type ForumService interface {
	CreateMessage(ctx context.Context, in NewMessage) (*Message, *User, error)
	DeleteMessage(ctx context.Context, messageID uuid.UUID) error
	CreateReaction(ctx context.Context, messageID, userID uuid.UUID, kind ReactionKind) (ReactionTotals, error)
	CreateCommunity(ctx context.Context, in NewCommunity) (*Community, error)
	ListCommunities(ctx context.Context) ([]Community, error)
	DeleteCommunity(ctx context.Context, communityID uuid.UUID) error
	TopMessages(ctx context.Context, communityID uuid.UUID, limit int) ([]RankedMessage, error)
	SuspiciousIPs(ctx context.Context, minUsers int) ([]SuspiciousIP, error)
}
