package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Warnf(string, ...interface{})    {}
func (nopLogger) Warningf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{})   {}
func (nopLogger) Fatalf(string, ...interface{})   {}
func (l nopLogger) WithFields(map[string]interface{}) usecasecontract.IAppLogger {
	return l
}

type testConfig struct {
	maxUpload  int64
	staleAfter time.Duration
}

func (c testConfig) GetMaxUploadBytes() int64            { return c.maxUpload }
func (c testConfig) GetMaxPageSize() int                 { return 100 }
func (c testConfig) GetReconcileInterval() time.Duration { return time.Minute }
func (c testConfig) GetSagaStaleAfter() time.Duration    { return c.staleAfter }

type passTx struct{}

func (passTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func window[T any](items []T, page contract.Pagination) []T {
	skip := int(page.Skip())
	if skip >= len(items) {
		return []T{}
	}
	end := skip + page.Limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-skip)
	copy(out, items[skip:end])
	return out
}

// reactions

type fakeReactions struct {
	mu   sync.Mutex
	rows map[entity.ReactionKey]entity.Reaction
}

func newFakeReactions() *fakeReactions {
	return &fakeReactions{rows: map[entity.ReactionKey]entity.Reaction{}}
}

func (f *fakeReactions) Insert(_ context.Context, r *entity.Reaction) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[r.Key()]; ok {
		return false, nil
	}
	f.rows[r.Key()] = *r
	return true, nil
}

func (f *fakeReactions) DeleteByKey(_ context.Context, key entity.ReactionKey) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[key]; !ok {
		return false, nil
	}
	delete(f.rows, key)
	return true, nil
}

func (f *fakeReactions) Exists(_ context.Context, key entity.ReactionKey) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.rows[key]
	return ok, nil
}

func (f *fakeReactions) filter(keep func(entity.Reaction) bool) []entity.Reaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Reaction
	for _, r := range f.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (f *fakeReactions) CountByTarget(_ context.Context, kind entity.TargetKind, targetID string) (int64, error) {
	return int64(len(f.filter(func(r entity.Reaction) bool { return r.TargetKind == kind && r.TargetID == targetID }))), nil
}

func (f *fakeReactions) CountByActor(_ context.Context, actorID string, kind entity.TargetKind) (int64, error) {
	return int64(len(f.filter(func(r entity.Reaction) bool { return r.TargetKind == kind && r.ActorID == actorID }))), nil
}

func (f *fakeReactions) ListByActor(_ context.Context, actorID string, kind entity.TargetKind, page contract.Pagination) ([]entity.Reaction, error) {
	return window(f.filter(func(r entity.Reaction) bool { return r.TargetKind == kind && r.ActorID == actorID }), page), nil
}

func (f *fakeReactions) ListByTarget(_ context.Context, kind entity.TargetKind, targetID string, page contract.Pagination) ([]entity.Reaction, error) {
	return window(f.filter(func(r entity.Reaction) bool { return r.TargetKind == kind && r.TargetID == targetID }), page), nil
}

func (f *fakeReactions) DeleteByTarget(_ context.Context, kind entity.TargetKind, targetIDs ...string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := map[string]bool{}
	for _, id := range targetIDs {
		ids[id] = true
	}
	var n int64
	for k := range f.rows {
		if k.TargetKind == kind && ids[k.TargetID] {
			delete(f.rows, k)
			n++
		}
	}
	return n, nil
}

// reactable targets

type targetKey struct {
	kind entity.TargetKind
	id   string
}

type fakeTargets struct {
	mu           sync.Mutex
	counters     map[targetKey]int64
	incrementErr error
}

func newFakeTargets() *fakeTargets {
	return &fakeTargets{counters: map[targetKey]int64{}}
}

func (f *fakeTargets) add(kind entity.TargetKind, id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters[targetKey{kind, id}] = 0
}

func (f *fakeTargets) counter(kind entity.TargetKind, id string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counters[targetKey{kind, id}]
}

func (f *fakeTargets) Exists(_ context.Context, kind entity.TargetKind, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.counters[targetKey{kind, id}]
	return ok, nil
}

func (f *fakeTargets) IncrementCounter(_ context.Context, kind entity.TargetKind, id string, delta int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.incrementErr != nil {
		return f.incrementErr
	}
	k := targetKey{kind, id}
	if delta < 0 && f.counters[k] <= 0 {
		return nil
	}
	f.counters[k] += delta
	return nil
}

func (f *fakeTargets) SetCounter(_ context.Context, kind entity.TargetKind, id string, value int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counters[targetKey{kind, id}] = value
	return nil
}

// counter repair log

type fakeRepairs struct {
	mu      sync.Mutex
	marks   map[string]entity.CounterRepair
	markErr error
}

func newFakeRepairs() *fakeRepairs {
	return &fakeRepairs{marks: map[string]entity.CounterRepair{}}
}

func (f *fakeRepairs) Mark(_ context.Context, kind entity.TargetKind, targetID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markErr != nil {
		return f.markErr
	}
	id := entity.CounterRepairID(kind, targetID)
	m := f.marks[id]
	m.ID, m.TargetKind, m.TargetID = id, kind, targetID
	m.Version++
	m.MarkedAt = time.Now().UTC()
	f.marks[id] = m
	return nil
}

func (f *fakeRepairs) ListPending(_ context.Context, limit int64) ([]entity.CounterRepair, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.CounterRepair{}
	for _, m := range f.marks {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepairs) Clear(_ context.Context, repair entity.CounterRepair) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.marks[repair.ID]
	if !ok || m.Version != repair.Version {
		return false, nil
	}
	delete(f.marks, repair.ID)
	return true, nil
}

func (f *fakeRepairs) version(kind entity.TargetKind, targetID string) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.marks[entity.CounterRepairID(kind, targetID)].Version
}

// video cache

type fakeVideoCache struct {
	mu          sync.Mutex
	items       map[string]entity.Video
	invalidated []string
}

func newFakeVideoCache() *fakeVideoCache {
	return &fakeVideoCache{items: map[string]entity.Video{}}
}

func (f *fakeVideoCache) GetVideo(_ context.Context, id string) (*entity.Video, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.items[id]
	if !ok {
		return nil, false, nil
	}
	return &v, true, nil
}

func (f *fakeVideoCache) SetVideo(_ context.Context, v *entity.Video) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[v.ID] = *v
	return nil
}

func (f *fakeVideoCache) InvalidateVideo(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	f.invalidated = append(f.invalidated, id)
	return nil
}

// media host

type fakeMedia struct {
	mu        sync.Mutex
	n         int
	uploaded  []string
	deleted   []string
	uploadErr map[contract.MediaKind]error
	deleteErr error
}

func newFakeMedia() *fakeMedia {
	return &fakeMedia{uploadErr: map[contract.MediaKind]error{}}
}

func (f *fakeMedia) Upload(_ context.Context, file contract.MediaFile, kind contract.MediaKind) (*contract.UploadedAsset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.uploadErr[kind]; err != nil {
		return nil, err
	}
	if file.Body != nil {
		if _, err := io.ReadAll(file.Body); err != nil {
			return nil, err
		}
	}
	f.n++
	id := fmt.Sprintf("%s%d", kind, f.n)
	ext := "jpg"
	var duration *float64
	if kind == contract.MediaKindVideo {
		ext = "mp4"
		d := 12.5
		duration = &d
	}
	f.uploaded = append(f.uploaded, id)
	return &contract.UploadedAsset{
		URL:      fmt.Sprintf("https://media.test/%s/upload/v1/%s.%s", kind, id, ext),
		AssetID:  id,
		Duration: duration,
	}, nil
}

func (f *fakeMedia) Delete(_ context.Context, assetID string, _ contract.MediaKind) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, assetID)
	return nil
}

func (f *fakeMedia) deletedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]string(nil), f.deleted...)
	sort.Strings(out)
	return out
}

// videos

type fakeVideos struct {
	mu        sync.Mutex
	rows      map[string]entity.Video
	createErr error
	updateErr error
}

func newFakeVideos() *fakeVideos {
	return &fakeVideos{rows: map[string]entity.Video{}}
}

func (f *fakeVideos) Create(_ context.Context, v *entity.Video) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.rows[v.ID] = *v
	return nil
}

func (f *fakeVideos) GetByID(_ context.Context, id string) (*entity.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("%w: video %s", domain.ErrNotFound, id)
	}
	return &v, nil
}

func (f *fakeVideos) GetByIDs(_ context.Context, ids []string) ([]entity.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Video
	for _, id := range ids {
		if v, ok := f.rows[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVideos) matching(filter contract.VideoFilter) []entity.Video {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Video
	for _, v := range f.rows {
		if filter.OwnerID != nil && v.OwnerID != *filter.OwnerID {
			continue
		}
		if filter.PublishedOnly && !v.IsPublished {
			continue
		}
		out = append(out, v)
	}
	asc := filter.SortOrder == "asc"
	sort.Slice(out, func(i, j int) bool {
		var less bool
		switch filter.SortBy {
		case "title":
			less = out[i].Title < out[j].Title
			if out[i].Title == out[j].Title {
				return out[i].ID > out[j].ID
			}
		case "views":
			less = out[i].Views < out[j].Views
			if out[i].Views == out[j].Views {
				return out[i].ID > out[j].ID
			}
		default:
			less = out[i].CreatedAt.Before(out[j].CreatedAt)
			if out[i].CreatedAt.Equal(out[j].CreatedAt) {
				return out[i].ID > out[j].ID
			}
		}
		if asc {
			return less
		}
		return !less
	})
	return out
}

func (f *fakeVideos) List(_ context.Context, filter contract.VideoFilter) ([]entity.Video, error) {
	return window(f.matching(filter), filter.Pagination), nil
}

func (f *fakeVideos) Count(_ context.Context, filter contract.VideoFilter) (int64, error) {
	return int64(len(f.matching(filter))), nil
}

func (f *fakeVideos) Update(_ context.Context, id string, u entity.VideoUpdate) (*entity.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	v, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("%w: video %s", domain.ErrNotFound, id)
	}
	if u.Title != nil {
		v.Title = *u.Title
	}
	if u.Description != nil {
		v.Description = *u.Description
	}
	if u.ThumbnailURL != nil {
		v.ThumbnailURL = *u.ThumbnailURL
	}
	if u.ThumbnailID != nil {
		v.ThumbnailAssetID = *u.ThumbnailID
	}
	v.UpdatedAt = time.Now().UTC()
	f.rows[id] = v
	return &v, nil
}

func (f *fakeVideos) SetPublished(_ context.Context, id string, published bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.rows[id]
	if !ok {
		return fmt.Errorf("%w: video %s", domain.ErrNotFound, id)
	}
	v.IsPublished = published
	f.rows[id] = v
	return nil
}

func (f *fakeVideos) IncrementViews(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.rows[id]
	if !ok {
		return fmt.Errorf("%w: video %s", domain.ErrNotFound, id)
	}
	v.Views++
	f.rows[id] = v
	return nil
}

func (f *fakeVideos) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return fmt.Errorf("%w: video %s", domain.ErrNotFound, id)
	}
	delete(f.rows, id)
	return nil
}

// publications

type fakePublications struct {
	mu   sync.Mutex
	rows map[string]entity.Publication
}

func newFakePublications() *fakePublications {
	return &fakePublications{rows: map[string]entity.Publication{}}
}

func (f *fakePublications) Create(_ context.Context, p *entity.Publication) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[p.ID] = *p
	return nil
}

func (f *fakePublications) Update(_ context.Context, id string, u contract.PublicationUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[id]
	if !ok {
		return fmt.Errorf("%w: publication %s", domain.ErrNotFound, id)
	}
	p.State = u.State
	if u.VideoAssetID != "" {
		p.VideoAssetID = u.VideoAssetID
	}
	if u.ThumbnailAssetID != "" {
		p.ThumbnailAssetID = u.ThumbnailAssetID
	}
	if u.VideoID != "" {
		p.VideoID = u.VideoID
	}
	if u.LastError != "" {
		p.LastError = u.LastError
	}
	p.UpdatedAt = time.Now().UTC()
	f.rows[id] = p
	return nil
}

func (f *fakePublications) ListStale(_ context.Context, cutoff time.Time, limit int64) ([]entity.Publication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Publication
	for _, p := range f.rows {
		if !p.State.Terminal() && p.UpdatedAt.Before(cutoff) {
			out = append(out, p)
		}
	}
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakePublications) only() entity.Publication {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.rows {
		return p
	}
	return entity.Publication{}
}

// comments

type fakeComments struct {
	mu   sync.Mutex
	rows []entity.Comment
}

func (f *fakeComments) Create(_ context.Context, c *entity.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, *c)
	return nil
}

func (f *fakeComments) GetByID(_ context.Context, id string) (*entity.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.rows {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: comment %s", domain.ErrNotFound, id)
}

func (f *fakeComments) byVideo(videoID string) []entity.Comment {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Comment
	for _, c := range f.rows {
		if c.VideoID == videoID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (f *fakeComments) ListByVideo(_ context.Context, videoID string, page contract.Pagination) ([]entity.Comment, error) {
	return window(f.byVideo(videoID), page), nil
}

func (f *fakeComments) CountByVideo(_ context.Context, videoID string) (int64, error) {
	return int64(len(f.byVideo(videoID))), nil
}

func (f *fakeComments) UpdateContent(_ context.Context, id, content string) (*entity.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Content = content
			c := f.rows[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("%w: comment %s", domain.ErrNotFound, id)
}

func (f *fakeComments) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: comment %s", domain.ErrNotFound, id)
}

func (f *fakeComments) DeleteByVideo(_ context.Context, videoID string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	kept := f.rows[:0]
	for _, c := range f.rows {
		if c.VideoID == videoID {
			ids = append(ids, c.ID)
			continue
		}
		kept = append(kept, c)
	}
	f.rows = kept
	return ids, nil
}

// tweets

type fakeTweets struct {
	mu   sync.Mutex
	rows map[string]entity.Tweet
}

func newFakeTweets() *fakeTweets {
	return &fakeTweets{rows: map[string]entity.Tweet{}}
}

func (f *fakeTweets) Create(_ context.Context, t *entity.Tweet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[t.ID] = *t
	return nil
}

func (f *fakeTweets) GetByID(_ context.Context, id string) (*entity.Tweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("%w: tweet %s", domain.ErrNotFound, id)
	}
	return &t, nil
}

func (f *fakeTweets) byOwner(ownerID string) []entity.Tweet {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Tweet
	for _, t := range f.rows {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (f *fakeTweets) ListByOwner(_ context.Context, ownerID string, page contract.Pagination) ([]entity.Tweet, error) {
	return window(f.byOwner(ownerID), page), nil
}

func (f *fakeTweets) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	return int64(len(f.byOwner(ownerID))), nil
}

func (f *fakeTweets) UpdateContent(_ context.Context, id, content string) (*entity.Tweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("%w: tweet %s", domain.ErrNotFound, id)
	}
	t.Content = content
	f.rows[id] = t
	return &t, nil
}

func (f *fakeTweets) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

// users

type fakeUsers struct {
	mu        sync.Mutex
	rows      map[string]entity.User
	updateErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{rows: map[string]entity.User{}}
}

func (f *fakeUsers) CreateUser(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[u.ID] = *u
	return nil
}

func (f *fakeUsers) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
	}
	return &u, nil
}

func (f *fakeUsers) GetUsersByIDs(_ context.Context, ids []string) ([]entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.User
	for _, id := range ids {
		if u, ok := f.rows[id]; ok {
			out = append(out, u)
		}
	}
	// reverse to prove callers restore the order themselves
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (f *fakeUsers) find(match func(entity.User) bool) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.rows {
		if match(u) {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: user", domain.ErrNotFound)
}

func (f *fakeUsers) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	return f.find(func(u entity.User) bool { return u.Username == username })
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.find(func(u entity.User) bool { return strings.EqualFold(u.Email, email) })
}

func (f *fakeUsers) UpdateUser(_ context.Context, id string, update entity.UserUpdate) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	u, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&u.FullName, update.FullName)
	set(&u.Email, update.Email)
	set(&u.AvatarAssetID, update.AvatarAssetID)
	set(&u.CoverAssetID, update.CoverAssetID)
	set(&u.PasswordHash, update.PasswordHash)
	if update.AvatarURL != nil {
		u.AvatarURL = update.AvatarURL
	}
	if update.CoverImageURL != nil {
		u.CoverImageURL = update.CoverImageURL
	}
	f.rows[id] = u
	return &u, nil
}

// watch history

type fakeHistory struct {
	mu        sync.Mutex
	clock     int64
	rows      map[string]entity.WatchEntry
	recordErr error
}

func newFakeHistory() *fakeHistory {
	return &fakeHistory{rows: map[string]entity.WatchEntry{}}
}

func (f *fakeHistory) Record(_ context.Context, userID, videoID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.recordErr != nil {
		return f.recordErr
	}
	f.clock++
	id := entity.WatchEntryID(userID, videoID)
	f.rows[id] = entity.WatchEntry{ID: id, UserID: userID, VideoID: videoID, WatchedAt: time.Unix(f.clock, 0)}
	return nil
}

func (f *fakeHistory) byUser(userID string) []entity.WatchEntry {
	var out []entity.WatchEntry
	for _, e := range f.rows {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WatchedAt.After(out[j].WatchedAt) })
	return out
}

func (f *fakeHistory) ListByUser(_ context.Context, userID string, page contract.Pagination) ([]entity.WatchEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return window(f.byUser(userID), page), nil
}

func (f *fakeHistory) CountByUser(_ context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.byUser(userID))), nil
}

func (f *fakeHistory) DeleteByVideo(_ context.Context, videoID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, e := range f.rows {
		if e.VideoID == videoID {
			delete(f.rows, id)
		}
	}
	return nil
}

// playlists

type fakePlaylists struct {
	mu   sync.Mutex
	rows map[string]entity.Playlist
}

func newFakePlaylists() *fakePlaylists {
	return &fakePlaylists{rows: map[string]entity.Playlist{}}
}

func (f *fakePlaylists) Create(_ context.Context, p *entity.Playlist) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[p.ID] = *p
	return nil
}

func (f *fakePlaylists) GetByID(_ context.Context, id string) (*entity.Playlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("%w: playlist %s", domain.ErrNotFound, id)
	}
	return &p, nil
}

func (f *fakePlaylists) byOwner(ownerID string) []entity.Playlist {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Playlist
	for _, p := range f.rows {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (f *fakePlaylists) ListByOwner(_ context.Context, ownerID string, page contract.Pagination) ([]entity.Playlist, error) {
	return window(f.byOwner(ownerID), page), nil
}

func (f *fakePlaylists) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	return int64(len(f.byOwner(ownerID))), nil
}

func (f *fakePlaylists) mutate(id string, fn func(p *entity.Playlist)) (*entity.Playlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.rows[id]
	if !ok {
		return nil, fmt.Errorf("%w: playlist %s", domain.ErrNotFound, id)
	}
	fn(&p)
	f.rows[id] = p
	return &p, nil
}

func (f *fakePlaylists) Update(_ context.Context, id string, name, description *string) (*entity.Playlist, error) {
	return f.mutate(id, func(p *entity.Playlist) {
		if name != nil {
			p.Name = *name
		}
		if description != nil {
			p.Description = *description
		}
	})
}

func (f *fakePlaylists) AddVideo(_ context.Context, id, videoID string) (*entity.Playlist, error) {
	return f.mutate(id, func(p *entity.Playlist) {
		for _, v := range p.VideoIDs {
			if v == videoID {
				return
			}
		}
		p.VideoIDs = append(p.VideoIDs, videoID)
	})
}

func (f *fakePlaylists) RemoveVideo(_ context.Context, id, videoID string) (*entity.Playlist, error) {
	return f.mutate(id, func(p *entity.Playlist) { p.VideoIDs = without(p.VideoIDs, videoID) })
}

func (f *fakePlaylists) RemoveVideoEverywhere(_ context.Context, videoID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, p := range f.rows {
		p.VideoIDs = without(p.VideoIDs, videoID)
		f.rows[id] = p
	}
	return nil
}

func (f *fakePlaylists) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return fmt.Errorf("%w: playlist %s", domain.ErrNotFound, id)
	}
	delete(f.rows, id)
	return nil
}

func without(ids []string, drop string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != drop {
			out = append(out, id)
		}
	}
	return out
}

var errStore = errors.New("store unavailable")
