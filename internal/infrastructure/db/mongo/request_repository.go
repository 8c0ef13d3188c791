package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mindreboot/mindreboot-api/internal/core/domain"
	"github.com/mindreboot/mindreboot-api/internal/core/ports"
)

const collectionRequests = "personalized_requests"

type RequestRepository struct {
	col *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{col: db.Collection(collectionRequests)}
}

type requestDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Name               string             `bson:"name"`
	Email              string             `bson:"email"`
	Phone              string             `bson:"phone,omitempty"`
	Issue              string             `bson:"issue"`
	SpecificRequest    string             `bson:"specific_request"`
	Duration           string             `bson:"duration"`
	Urgency            string             `bson:"urgency"`
	PreviousExperience string             `bson:"previous_experience,omitempty"`
	AdditionalNotes    string             `bson:"additional_notes,omitempty"`
	Amount             int                `bson:"amount"`
	PaymentStatus      string             `bson:"payment_status"`
	PaymentID          string             `bson:"payment_id,omitempty"`
	Status             string             `bson:"status"`
	AssignedTherapist  string             `bson:"assigned_therapist,omitempty"`
	AudioURL           string             `bson:"audio_url,omitempty"`
	DeliveredAt        *time.Time         `bson:"delivered_at,omitempty"`
	RequestDate        time.Time          `bson:"request_date"`
	AdminNotes         string             `bson:"admin_notes,omitempty"`
	CreatedAt          time.Time          `bson:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at"`
}

func toRequestDoc(r *domain.PersonalizedRequest) requestDoc {
	return requestDoc{
		Name:               r.Name,
		Email:              r.Email,
		Phone:              r.Phone,
		Issue:              r.Issue,
		SpecificRequest:    r.SpecificRequest,
		Duration:           r.Duration,
		Urgency:            string(r.Urgency),
		PreviousExperience: r.PreviousExperience,
		AdditionalNotes:    r.AdditionalNotes,
		Amount:             r.Amount,
		PaymentStatus:      string(r.PaymentStatus),
		PaymentID:          r.PaymentID,
		Status:             string(r.Status),
		AssignedTherapist:  r.AssignedTherapist,
		AudioURL:           r.AudioURL,
		DeliveredAt:        r.DeliveredAt,
		RequestDate:        r.RequestDate,
		AdminNotes:         r.AdminNotes,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func (d requestDoc) toDomain() *domain.PersonalizedRequest {
	return &domain.PersonalizedRequest{
		ID:                 d.ID.Hex(),
		Name:               d.Name,
		Email:              d.Email,
		Phone:              d.Phone,
		Issue:              d.Issue,
		SpecificRequest:    d.SpecificRequest,
		Duration:           d.Duration,
		Urgency:            domain.Urgency(d.Urgency),
		PreviousExperience: d.PreviousExperience,
		AdditionalNotes:    d.AdditionalNotes,
		Amount:             d.Amount,
		PaymentStatus:      domain.PaymentStatus(d.PaymentStatus),
		PaymentID:          d.PaymentID,
		Status:             domain.RequestStatus(d.Status),
		AssignedTherapist:  d.AssignedTherapist,
		AudioURL:           d.AudioURL,
		DeliveredAt:        d.DeliveredAt,
		RequestDate:        d.RequestDate,
		AdminNotes:         d.AdminNotes,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

// Insert stores a new personalized request.
func (r *RequestRepository) Insert(ctx context.Context, req *domain.PersonalizedRequest) (*domain.PersonalizedRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toRequestDoc(req))
	if err != nil {
		return nil, fmt.Errorf("insert request: %w", err)
	}

	created := *req
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// FindByID retrieves a request by hex object id.
func (r *RequestRepository) FindByID(ctx context.Context, id string) (*domain.PersonalizedRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc requestDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find request: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns one page sorted newest-first by request date together with
// the total matching count.
func (r *RequestRepository) List(ctx context.Context, filter ports.ListRequestsFilter) ([]*domain.PersonalizedRequest, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.Email != "" {
		query["email"] = filter.Email
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count requests: %w", err)
	}

	skip := int64(filter.Page-1) * int64(filter.Limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "request_date", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(filter.Limit))

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list requests: %w", err)
	}
	defer cur.Close(ctx)

	items := make([]*domain.PersonalizedRequest, 0, filter.Limit)
	for cur.Next(ctx) {
		var doc requestDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode request: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate requests: %w", err)
	}

	return items, total, nil
}

// Update replaces the stored document for the request's id.
func (r *RequestRepository) Update(ctx context.Context, req *domain.PersonalizedRequest) error {
	oid, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		return domain.ErrRequestNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, toRequestDoc(req))
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the fulfillment dashboard depends on.
func (r *RequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "payment_status", Value: 1}}},
		{Keys: bson.D{{Key: "request_date", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
