package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dinehub/restaurant-system/internal/core/domain"
	"github.com/dinehub/restaurant-system/internal/core/ports"
)

const menuItemsCollection = "menu_items"

// MenuRepository implements ports.MenuRepository backed by MongoDB.
type MenuRepository struct {
	coll *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{coll: db.Collection(menuItemsCollection)}
}

type mongoMenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Price       float64            `bson:"price"`
	Image       string             `bson:"image,omitempty"`
	Available   bool               `bson:"available"`
	CategoryID  string             `bson:"category_id,omitempty"`
}

func (mi *mongoMenuItem) toDomain() *domain.MenuItem {
	return &domain.MenuItem{
		ID:          mi.ID.Hex(),
		Name:        mi.Name,
		Description: mi.Description,
		Price:       mi.Price,
		Image:       mi.Image,
		Available:   mi.Available,
		CategoryID:  mi.CategoryID,
	}
}

func (r *MenuRepository) Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	doc := mongoMenuItem{
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Image:       item.Image,
		Available:   item.Available,
		CategoryID:  item.CategoryID,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}

	created := *item
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MenuRepository) FindByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMenuItemNotFound
	}

	var mi mongoMenuItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mi); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("find menu item: %w", err)
	}
	return mi.toDomain(), nil
}

func (r *MenuRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.MenuItem, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}

	out := make(map[string]*domain.MenuItem, len(oids))
	if len(oids) == 0 {
		return out, nil
	}

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find menu items: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var mi mongoMenuItem
		if err := cur.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode menu item: %w", err)
		}
		item := mi.toDomain()
		out[item.ID] = item
	}
	return out, cur.Err()
}

func (r *MenuRepository) List(ctx context.Context) ([]*domain.MenuItem, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.MenuItem
	for cur.Next(ctx) {
		var mi mongoMenuItem
		if err := cur.Decode(&mi); err != nil {
			return nil, fmt.Errorf("decode menu item: %w", err)
		}
		items = append(items, mi.toDomain())
	}
	return items, cur.Err()
}

func (r *MenuRepository) Update(ctx context.Context, id string, update ports.MenuItemUpdate) (*domain.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMenuItemNotFound
	}

	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if update.Available != nil {
		set["available"] = *update.Available
	}
	if update.CategoryID != nil {
		set["category_id"] = *update.CategoryID
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mi mongoMenuItem
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&mi)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("update menu item: %w", err)
	}
	return mi.toDomain(), nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMenuItemNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func (r *MenuRepository) DeleteByCategory(ctx context.Context, categoryID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"category_id": categoryID})
	if err != nil {
		return 0, fmt.Errorf("delete menu items by category: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *MenuRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "category_id", Value: 1}},
	})
	return err
}
