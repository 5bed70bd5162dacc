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

	"github.com/dinehub/restaurant-system/internal/core/domain"
	"github.com/dinehub/restaurant-system/internal/core/ports"
)

const ordersCollection = "orders"

// OrderRepository implements ports.OrderRepository backed by MongoDB,
// including the dashboard aggregation pipelines.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

type mongoOrderItem struct {
	MenuItemID string  `bson:"menu_item_id"`
	Quantity   int     `bson:"quantity"`
	Notes      string  `bson:"notes,omitempty"`
	Name       string  `bson:"name,omitempty"`
	Price      float64 `bson:"price,omitempty"`
	Category   string  `bson:"category,omitempty"`
}

type mongoOrder struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	CustomerName  string             `bson:"customer_name"`
	TableNumber   int                `bson:"table_number"`
	Items         []mongoOrderItem   `bson:"items"`
	Total         float64            `bson:"total"`
	Status        string             `bson:"status"`
	PaymentStatus string             `bson:"payment_status"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func toMongoItems(items []domain.OrderItem) []mongoOrderItem {
	out := make([]mongoOrderItem, len(items))
	for i, it := range items {
		out[i] = mongoOrderItem{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Notes:      it.Notes,
			Name:       it.Name,
			Price:      it.Price,
			Category:   it.Category,
		}
	}
	return out
}

func (mo *mongoOrder) toDomain() *domain.Order {
	items := make([]domain.OrderItem, len(mo.Items))
	for i, it := range mo.Items {
		items[i] = domain.OrderItem{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			Notes:      it.Notes,
			Name:       it.Name,
			Price:      it.Price,
			Category:   it.Category,
		}
	}
	return &domain.Order{
		ID:            mo.ID.Hex(),
		CustomerName:  mo.CustomerName,
		TableNumber:   mo.TableNumber,
		Items:         items,
		Total:         mo.Total,
		Status:        domain.OrderStatus(mo.Status),
		PaymentStatus: domain.PaymentStatus(mo.PaymentStatus),
		CreatedAt:     mo.CreatedAt,
		UpdatedAt:     mo.UpdatedAt,
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	doc := mongoOrder{
		CustomerName:  order.CustomerName,
		TableNumber:   order.TableNumber,
		Items:         toMongoItems(order.Items),
		Total:         order.Total,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}

	created := *order
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	var mo mongoOrder
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mo); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return mo.toDomain(), nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (r *OrderRepository) Recent(ctx context.Context, limit int) ([]*domain.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Order, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cur.Close(ctx)

	var orders []*domain.Order
	for cur.Next(ctx) {
		var mo mongoOrder
		if err := cur.Decode(&mo); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, mo.toDomain())
	}
	return orders, cur.Err()
}

func (r *OrderRepository) Update(ctx context.Context, id string, update ports.OrderUpdate) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.CustomerName != nil {
		set["customer_name"] = *update.CustomerName
	}
	if update.TableNumber != nil {
		set["table_number"] = *update.TableNumber
	}
	if update.Items != nil {
		set["items"] = toMongoItems(update.Items)
	}
	if update.Total != nil {
		set["total"] = *update.Total
	}
	if update.Status != nil {
		set["status"] = string(*update.Status)
	}
	if update.PaymentStatus != nil {
		set["payment_status"] = string(*update.PaymentStatus)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mo mongoOrder
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&mo)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("update order: %w", err)
	}
	return mo.toDomain(), nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOrderNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// Counts computes the headline dashboard numbers for a single day window.
func (r *OrderRepository) Counts(ctx context.Context, dayStart, dayEnd time.Time) (*ports.OrderCounts, error) {
	today := bson.M{"created_at": bson.M{"$gte": dayStart, "$lt": dayEnd}}

	orders, err := r.coll.CountDocuments(ctx, bson.M{
		"created_at": today["created_at"],
		"status":     bson.M{"$ne": string(domain.OrderCancelled)},
	})
	if err != nil {
		return nil, fmt.Errorf("count todays orders: %w", err)
	}

	ready, err := r.coll.CountDocuments(ctx, bson.M{"status": string(domain.OrderReady)})
	if err != nil {
		return nil, fmt.Errorf("count ready orders: %w", err)
	}

	pendingBills, err := r.coll.CountDocuments(ctx, bson.M{
		"status": bson.M{"$in": bson.A{string(domain.OrderPending), string(domain.OrderPreparing)}},
	})
	if err != nil {
		return nil, fmt.Errorf("count pending bills: %w", err)
	}

	cur, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"created_at": today["created_at"],
			"status":     string(domain.OrderServed),
		}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "revenue": bson.M{"$sum": "$total"}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate revenue: %w", err)
	}
	defer cur.Close(ctx)

	var revenue float64
	if cur.Next(ctx) {
		var row struct {
			Revenue float64 `bson:"revenue"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode revenue: %w", err)
		}
		revenue = row.Revenue
	}

	return &ports.OrderCounts{
		TodaysOrders:  orders,
		TodaysRevenue: revenue,
		ReadyOrders:   ready,
		PendingBills:  pendingBills,
	}, cur.Err()
}

// SalesByDay buckets served-order revenue per calendar day since the given time.
func (r *OrderRepository) SalesByDay(ctx context.Context, since time.Time) ([]ports.DayBucket, error) {
	cur, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"created_at": bson.M{"$gte": since},
			"status":     string(domain.OrderServed),
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   "$created_at",
			}},
			"revenue": bson.M{"$sum": "$total"},
			"orders":  bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate sales by day: %w", err)
	}
	defer cur.Close(ctx)

	var buckets []ports.DayBucket
	for cur.Next(ctx) {
		var row struct {
			Date    string  `bson:"_id"`
			Revenue float64 `bson:"revenue"`
			Orders  int64   `bson:"orders"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode day bucket: %w", err)
		}
		buckets = append(buckets, ports.DayBucket{Date: row.Date, Revenue: row.Revenue, Orders: row.Orders})
	}
	return buckets, cur.Err()
}

// TopSelling unwinds order items and sums quantities per menu item across
// served orders. Display names come from the denormalised item snapshot.
func (r *OrderRepository) TopSelling(ctx context.Context, limit int) ([]ports.ItemSales, error) {
	cur, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": string(domain.OrderServed)}}},
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$items.menu_item_id",
			"name":     bson.M{"$last": "$items.name"},
			"quantity": bson.M{"$sum": "$items.quantity"},
		}}},
		{{Key: "$sort", Value: bson.M{"quantity": -1}}},
		{{Key: "$limit", Value: limit}},
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate top selling: %w", err)
	}
	defer cur.Close(ctx)

	var sales []ports.ItemSales
	for cur.Next(ctx) {
		var row struct {
			MenuItemID string `bson:"_id"`
			Name       string `bson:"name"`
			Quantity   int64  `bson:"quantity"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode item sales: %w", err)
		}
		sales = append(sales, ports.ItemSales{MenuItemID: row.MenuItemID, Name: row.Name, Quantity: row.Quantity})
	}
	return sales, cur.Err()
}

// Stats produces the order statistics block in a single $facet aggregation.
func (r *OrderRepository) Stats(ctx context.Context, dayStart, dayEnd time.Time) (*ports.OrderStats, error) {
	cur, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$facet", Value: bson.M{
			"today": bson.A{
				bson.M{"$match": bson.M{"created_at": bson.M{"$gte": dayStart, "$lt": dayEnd}}},
				bson.M{"$group": bson.M{
					"_id":     nil,
					"orders":  bson.M{"$sum": 1},
					"revenue": bson.M{"$sum": "$total"},
					"avg":     bson.M{"$avg": "$total"},
				}},
			},
			"by_status": bson.A{
				bson.M{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
			},
			"by_payment": bson.A{
				bson.M{"$group": bson.M{
					"_id":    "$payment_status",
					"count":  bson.M{"$sum": 1},
					"amount": bson.M{"$sum": "$total"},
				}},
			},
		}}},
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate order stats: %w", err)
	}
	defer cur.Close(ctx)

	var facets struct {
		Today []struct {
			Orders  int64   `bson:"orders"`
			Revenue float64 `bson:"revenue"`
			Avg     float64 `bson:"avg"`
		} `bson:"today"`
		ByStatus []struct {
			Status string `bson:"_id"`
			Count  int64  `bson:"count"`
		} `bson:"by_status"`
		ByPayment []struct {
			Payment string  `bson:"_id"`
			Count   int64   `bson:"count"`
			Amount  float64 `bson:"amount"`
		} `bson:"by_payment"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&facets); err != nil {
			return nil, fmt.Errorf("decode order stats: %w", err)
		}
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	stats := &ports.OrderStats{
		StatusCounts:   make(map[domain.OrderStatus]int64),
		PaymentCounts:  make(map[domain.PaymentStatus]int64),
		PaymentAmounts: make(map[domain.PaymentStatus]float64),
	}
	if len(facets.Today) > 0 {
		stats.TodayOrders = facets.Today[0].Orders
		stats.TodayRevenue = facets.Today[0].Revenue
		stats.AvgOrderValue = facets.Today[0].Avg
	}
	for _, row := range facets.ByStatus {
		stats.StatusCounts[domain.OrderStatus(row.Status)] = row.Count
	}
	for _, row := range facets.ByPayment {
		stats.PaymentCounts[domain.PaymentStatus(row.Payment)] = row.Count
		stats.PaymentAmounts[domain.PaymentStatus(row.Payment)] = row.Amount
	}
	return stats, nil
}

func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "payment_status", Value: 1}}},
	})
	return err
}
