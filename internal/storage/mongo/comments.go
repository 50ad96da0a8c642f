package mongo

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/RajivKhattri/newsportal/internal/models"
	"github.com/RajivKhattri/newsportal/internal/storage"
)

// commentDoc — представление комментария в коллекции.
// UUID хранятся строками: так фильтры читаемы в shell и не зависят
// от бинарного представления драйвера.
type commentDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ArticleID string             `bson:"article_id"`
	UserID    string             `bson:"user_id"`
	Username  string             `bson:"username"`
	Content   string             `bson:"content"`
	IsDeleted bool               `bson:"is_deleted"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d *commentDoc) toModel() (*models.Comment, error) {
	articleID, err := uuid.Parse(d.ArticleID)
	if err != nil {
		return nil, fmt.Errorf("bad article_id %q: %w", d.ArticleID, err)
	}

	userID, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, fmt.Errorf("bad user_id %q: %w", d.UserID, err)
	}

	return &models.Comment{
		ID:        d.ID.Hex(),
		ArticleID: articleID,
		UserID:    userID,
		Username:  d.Username,
		Content:   d.Content,
		IsDeleted: d.IsDeleted,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}, nil
}

// encodeCursor кодирует пару (created_at, _id) в непрозрачный токен для клиента.
func encodeCursor(ts time.Time, id primitive.ObjectID) string {
	raw := fmt.Sprintf("%d|%s", ts.UTC().UnixNano(), id.Hex())

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodeCursor декодирует токен обратно в пару ключей.
func decodeCursor(token string) (time.Time, primitive.ObjectID, error) {
	res, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return time.Time{}, primitive.NilObjectID, err
	}

	parts := strings.SplitN(string(res), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, primitive.NilObjectID, fmt.Errorf("bad parts")
	}

	var nanos int64
	if _, err := fmt.Sscan(parts[0], &nanos); err != nil {
		return time.Time{}, primitive.NilObjectID, err
	}

	oid, err := primitive.ObjectIDFromHex(parts[1])
	if err != nil {
		return time.Time{}, primitive.NilObjectID, err
	}

	return time.Unix(0, nanos).UTC(), oid, nil
}

// CreateComment создаёт новый комментарий.
func (m *Mongo) CreateComment(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	const op = "storage/mongo/CreateComment"

	// MongoDB DateTime хранит миллисекунды.
	now := time.Now().UTC().Truncate(time.Millisecond)

	doc := commentDoc{
		ArticleID: comment.ArticleID.String(),
		UserID:    comment.UserID.String(),
		Username:  comment.Username,
		Content:   comment.Content,
		IsDeleted: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := m.comments.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		// Mongo всегда возвращает ObjectID.
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	out := *comment
	out.ID = oid.Hex()
	out.IsDeleted = false
	out.CreatedAt = now
	out.UpdatedAt = now

	return &out, nil
}

// CommentByID возвращает комментарий по идентификатору.
// Некорректный формат id трактуется как «нет такой записи».
func (m *Mongo) CommentByID(ctx context.Context, id string) (*models.Comment, error) {
	const op = "storage/mongo/CommentByID"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var doc commentDoc
	if err := m.comments.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := doc.toModel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// ListComments возвращает страницу комментариев статьи, новые первыми.
// Сортировка: created_at DESC, _id DESC. Мягко удалённые не попадают в выдачу.
// При некорректном page_token — storage.ErrInvalidCursor.
func (m *Mongo) ListComments(ctx context.Context, articleID uuid.UUID, opts models.ListOptions) ([]models.Comment, string, error) {
	const op = "storage/mongo/ListComments"

	limit := int64(opts.Limit)
	if limit <= 0 {
		limit = 1
	}

	filter := bson.D{
		{Key: "article_id", Value: articleID.String()},
		{Key: "is_deleted", Value: false},
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)

	// Курсор "меньше" для DESC сортировки.
	if strings.TrimSpace(opts.PageToken) != "" {
		t, oid, decErr := decodeCursor(opts.PageToken)
		if decErr != nil {
			return nil, "", fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "created_at", Value: bson.D{{Key: "$lt", Value: t}}}},
			bson.D{
				{Key: "created_at", Value: t},
				{Key: "_id", Value: bson.D{{Key: "$lt", Value: oid}}},
			},
		}})
	}

	cur, err := m.comments.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, "", fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.Comment
	var lastOID primitive.ObjectID
	for cur.Next(ctx) {
		var doc commentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, "", fmt.Errorf("%s: decode: %w", op, err)
		}

		item, convErr := doc.toModel()
		if convErr != nil {
			return nil, "", fmt.Errorf("%s: %w", op, convErr)
		}

		items = append(items, *item)
		lastOID = doc.ID
	}

	if err := cur.Err(); err != nil {
		return nil, "", fmt.Errorf("%s: cursor: %w", op, err)
	}

	var next string
	if n := len(items); n > 0 {
		next = encodeCursor(items[n-1].CreatedAt, lastOID)
	}

	return items, next, nil
}

// DeleteComment помечает комментарий как удалённый (мягкое удаление).
// При отсутствии записи — storage.ErrNotFound.
func (m *Mongo) DeleteComment(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteComment"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.comments.UpdateByID(ctx, oid, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "is_deleted", Value: true},
			{Key: "content", Value: ""},
			{Key: "updated_at", Value: time.Now().UTC()},
		}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
