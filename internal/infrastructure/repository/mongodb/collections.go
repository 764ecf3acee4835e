package mongodb

import (
	"fmt"

	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	VideosCollection         = "videos"
	CommentsCollection       = "comments"
	TweetsCollection         = "tweets"
	UsersCollection          = "users"
	PlaylistsCollection      = "playlists"
	ReactionsCollection      = "reactions"
	PublicationsCollection   = "publications"
	CounterRepairsCollection = "counter_repairs"
	WatchHistoryCollection   = "watch_history"
)

// newestFirst orders by creation time with the time-ordered _id as tie-break.
var newestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}

func pageOptions(page contract.Pagination, sort bson.D) *options.FindOptions {
	return options.Find().
		SetSort(sort).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))
}

func notFound(what, id string) error {
	return fmt.Errorf("%w: %s %s", domain.ErrNotFound, what, id)
}
