package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dinehub/restaurant-system/internal/core/domain"
)

const rolesCollection = "role_permissions"

// RoleRepository implements ports.RoleRepository backed by MongoDB.
type RoleRepository struct {
	coll *mongo.Collection
}

func NewRoleRepository(db *mongo.Database) *RoleRepository {
	return &RoleRepository{coll: db.Collection(rolesCollection)}
}

type mongoRolePermission struct {
	Role  string   `bson:"role"`
	Pages []string `bson:"pages"`
}

func (r *RoleRepository) FindAll(ctx context.Context) ([]domain.RolePermission, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.RolePermission
	for cur.Next(ctx) {
		var mrp mongoRolePermission
		if err := cur.Decode(&mrp); err != nil {
			return nil, fmt.Errorf("decode role permission: %w", err)
		}
		out = append(out, domain.RolePermission{Role: mrp.Role, Pages: mrp.Pages})
	}
	return out, cur.Err()
}

func (r *RoleRepository) FindByRole(ctx context.Context, role string) (*domain.RolePermission, error) {
	var mrp mongoRolePermission
	if err := r.coll.FindOne(ctx, bson.M{"role": role}).Decode(&mrp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPermissionsNotConfigured
		}
		return nil, fmt.Errorf("find role permission: %w", err)
	}
	return &domain.RolePermission{Role: mrp.Role, Pages: mrp.Pages}, nil
}

// Upsert replaces the entry for perm.Role, creating it when missing.
func (r *RoleRepository) Upsert(ctx context.Context, perm domain.RolePermission) error {
	_, err := r.coll.ReplaceOne(
		ctx,
		bson.M{"role": perm.Role},
		mongoRolePermission{Role: perm.Role, Pages: perm.Pages},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert role permission: %w", err)
	}
	return nil
}

func (r *RoleRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "role", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
