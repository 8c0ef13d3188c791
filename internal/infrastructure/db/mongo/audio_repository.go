package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindreboot/mindreboot-api/internal/core/domain"
	"github.com/mindreboot/mindreboot-api/internal/core/ports"
)

const collectionAudios = "audios"

type AudioRepository struct {
	col *mongo.Collection
}

func NewAudioRepository(db *mongo.Database) *AudioRepository {
	return &AudioRepository{col: db.Collection(collectionAudios)}
}

type audioDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description,omitempty"`
	AudioURL     string             `bson:"audio_url"`
	Duration     int                `bson:"duration,omitempty"`
	FileSize     int64              `bson:"file_size,omitempty"`
	Format       string             `bson:"format"`
	Tags         []string           `bson:"tags"`
	Category     string             `bson:"category,omitempty"`
	Public       bool               `bson:"is_public"`
	UploadedBy   string             `bson:"uploaded_by,omitempty"`
	ThumbnailURL string             `bson:"thumbnail_url,omitempty"`
	PlayCount    int64              `bson:"play_count"`
	Likes        int64              `bson:"likes"`
	UploadedAt   time.Time          `bson:"uploaded_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func toAudioDoc(a *domain.Audio) audioDoc {
	return audioDoc{
		Title:        a.Title,
		Description:  a.Description,
		AudioURL:     a.AudioURL,
		Duration:     a.Duration,
		FileSize:     a.FileSize,
		Format:       string(a.Format),
		Tags:         a.Tags,
		Category:     a.Category,
		Public:       a.Public,
		UploadedBy:   a.UploadedBy,
		ThumbnailURL: a.ThumbnailURL,
		PlayCount:    a.PlayCount,
		Likes:        a.Likes,
		UploadedAt:   a.UploadedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (d audioDoc) toDomain() *domain.Audio {
	return &domain.Audio{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Description:  d.Description,
		AudioURL:     d.AudioURL,
		Duration:     d.Duration,
		FileSize:     d.FileSize,
		Format:       domain.AudioFormat(d.Format),
		Tags:         d.Tags,
		Category:     d.Category,
		Public:       d.Public,
		UploadedBy:   d.UploadedBy,
		ThumbnailURL: d.ThumbnailURL,
		PlayCount:    d.PlayCount,
		Likes:        d.Likes,
		UploadedAt:   d.UploadedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// Insert stores a new catalog item.
func (r *AudioRepository) Insert(ctx context.Context, a *domain.Audio) (*domain.Audio, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toAudioDoc(a))
	if err != nil {
		return nil, fmt.Errorf("insert audio: %w", err)
	}

	created := *a
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// FindByID retrieves a catalog item by hex object id.
func (r *AudioRepository) FindByID(ctx context.Context, id string) (*domain.Audio, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAudioNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc audioDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAudioNotFound
		}
		return nil, fmt.Errorf("find audio: %w", err)
	}
	return doc.toDomain(), nil
}

// buildListQuery translates the filter into a Mongo query document.
// Search matches title, description or any tag, case-insensitively;
// the text is regex-escaped so user input cannot inject operators.
func buildListQuery(filter ports.ListAudiosFilter) bson.M {
	query := bson.M{}
	if filter.PublicOnly {
		query["is_public"] = true
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
			bson.M{"tags": pattern},
		}
	}
	return query
}

// List returns one page sorted newest-first by upload time with an _id
// tiebreak so equal timestamps keep a stable order, plus the total count.
func (r *AudioRepository) List(ctx context.Context, filter ports.ListAudiosFilter) ([]*domain.Audio, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := buildListQuery(filter)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count audios: %w", err)
	}

	skip := int64(filter.Page-1) * int64(filter.Limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "uploaded_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list audios: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*domain.Audio, 0, filter.Limit)
	for cur.Next(ctx) {
		var doc audioDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode audio: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate audios: %w", err)
	}

	return items, total, nil
}

// Update replaces the stored document for id.
func (r *AudioRepository) Update(ctx context.Context, id string, a *domain.Audio) (*domain.Audio, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAudioNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, toAudioDoc(a))
	if err != nil {
		return nil, fmt.Errorf("update audio: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrAudioNotFound
	}

	updated := *a
	updated.ID = id
	return &updated, nil
}

// Delete removes a catalog item.
func (r *AudioRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAudioNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete audio: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAudioNotFound
	}
	return nil
}

// IncrementPlayCount atomically bumps the play counter and returns the new
// value. Concurrent increments are serialized by the store.
func (r *AudioRepository) IncrementPlayCount(ctx context.Context, id string) (int64, error) {
	return r.incrementCounter(ctx, id, "play_count")
}

// IncrementLikes atomically bumps the like counter and returns the new value.
func (r *AudioRepository) IncrementLikes(ctx context.Context, id string) (int64, error) {
	return r.incrementCounter(ctx, id, "likes")
}

func (r *AudioRepository) incrementCounter(ctx context.Context, id, field string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, domain.ErrAudioNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc audioDoc
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{field: 1}, "$set": bson.M{"updated_at": time.Now().UTC()}},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, domain.ErrAudioNotFound
		}
		return 0, fmt.Errorf("increment %s: %w", field, err)
	}

	if field == "likes" {
		return doc.Likes, nil
	}
	return doc.PlayCount, nil
}

// ReplaceAll wipes the collection and inserts the given items. Used only by
// the admin-gated seed endpoint.
func (r *AudioRepository) ReplaceAll(ctx context.Context, items []*domain.Audio) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, fmt.Errorf("clear audios: %w", err)
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(items))
	for _, a := range items {
		doc := toAudioDoc(a)
		if doc.UploadedAt.IsZero() {
			doc.UploadedAt = now
		}
		if doc.UpdatedAt.IsZero() {
			doc.UpdatedAt = now
		}
		docs = append(docs, doc)
	}

	res, err := r.col.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("seed audios: %w", err)
	}
	return len(res.InsertedIDs), nil
}

// EnsureIndexes creates the indexes catalog queries depend on.
func (r *AudioRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
		{Keys: bson.D{{Key: "is_public", Value: 1}}},
		{Keys: bson.D{{Key: "uploaded_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
