package entity

import "time"

// TargetKind discriminates what a reaction points at.
type TargetKind string

const (
	TargetKindVideo   TargetKind = "video"
	TargetKindComment TargetKind = "comment"
	TargetKindTweet   TargetKind = "tweet"
	TargetKindChannel TargetKind = "channel"
)

// ParseTargetKind returns the kind for s and whether it is known.
func ParseTargetKind(s string) (TargetKind, bool) {
	switch k := TargetKind(s); k {
	case TargetKindVideo, TargetKindComment, TargetKindTweet, TargetKindChannel:
		return k, true
	}
	return "", false
}

// CounterField is the denormalized counter kept on the target document.
func (k TargetKind) CounterField() string {
	if k == TargetKindChannel {
		return "subscriber_count"
	}
	return "like_count"
}

// ReactionKey identifies a reaction. At most one reaction exists per key.
type ReactionKey struct {
	ActorID    string     `bson:"actor_id" json:"actor_id"`
	TargetID   string     `bson:"target_id" json:"target_id"`
	TargetKind TargetKind `bson:"target_kind" json:"target_kind"`
}

// Reaction is a like (video, comment, tweet) or a subscription (channel).
// It is created on toggle-on and deleted on toggle-off, never updated.
type Reaction struct {
	ID         string     `bson:"_id" json:"id"`
	ActorID    string     `bson:"actor_id" json:"actor_id"`
	TargetID   string     `bson:"target_id" json:"target_id"`
	TargetKind TargetKind `bson:"target_kind" json:"target_kind"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
}

func (r *Reaction) Key() ReactionKey {
	return ReactionKey{ActorID: r.ActorID, TargetID: r.TargetID, TargetKind: r.TargetKind}
}

// ToggleState is the membership after a toggle.
type ToggleState string

const (
	ToggleStateAdded   ToggleState = "added"
	ToggleStateRemoved ToggleState = "removed"
)

// CounterRepair marks a target whose counter may disagree with its reaction
// records. Version grows on every mark so a recount can tell whether the
// target was touched again while it ran.
type CounterRepair struct {
	ID         string     `bson:"_id" json:"id"`
	TargetKind TargetKind `bson:"target_kind" json:"target_kind"`
	TargetID   string     `bson:"target_id" json:"target_id"`
	Version    int64      `bson:"version" json:"version"`
	MarkedAt   time.Time  `bson:"marked_at" json:"marked_at"`
}

func CounterRepairID(kind TargetKind, targetID string) string {
	return string(kind) + ":" + targetID
}
