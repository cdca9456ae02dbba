package repository

import (
	"context"
	"fmt"

	"bizadmin/internal/admin/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionNames maps each entity to its collection in the document store.
type CollectionNames struct {
	Projects    string
	Employees   string
	Departments string
	Customers   string
	Suppliers   string
	Products    string
	Returns     string
	Salaries    string
	Documents   string
	UserRoles   string
	Activity    string
}

func DefaultCollectionNames() CollectionNames {
	return CollectionNames{
		Projects:    model.CollectionProjects,
		Employees:   model.CollectionEmployees,
		Departments: model.CollectionDepartments,
		Customers:   model.CollectionCustomers,
		Suppliers:   model.CollectionSuppliers,
		Products:    model.CollectionProducts,
		Returns:     model.CollectionReturns,
		Salaries:    model.CollectionSalaries,
		Documents:   model.CollectionDocuments,
		UserRoles:   model.CollectionUserRoles,
		Activity:    model.CollectionActivity,
	}
}

// NewMongoStore wires every repository to its collection in db.
func NewMongoStore(db *mongo.Database, names CollectionNames) *Store {
	return &Store{
		Projects:    NewMongoCollection[model.Project](db, names.Projects),
		Employees:   NewMongoCollection[model.Employee](db, names.Employees),
		Departments: NewMongoCollection[model.Department](db, names.Departments),
		Customers:   NewMongoCollection[model.Customer](db, names.Customers),
		Suppliers:   NewMongoCollection[model.Supplier](db, names.Suppliers),
		Products:    NewMongoCollection[model.Product](db, names.Products),
		Returns:     NewMongoCollection[model.Return](db, names.Returns),
		Salaries:    NewMongoCollection[model.SalaryRecord](db, names.Salaries),
		Documents:   NewMongoCollection[model.FileDocument](db, names.Documents),
		UserRoles:   NewMongoUserRoleRepository(db, names.UserRoles),
		Activity:    NewMongoActivityRepository(db, names.Activity),
	}
}

// EnsureIndexes creates the indexes the domain collections rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database, names CollectionNames) error {
	live := bson.M{"deleted_at": nil}

	plan := map[string][]mongo.IndexModel{
		names.Products: {
			{
				Keys:    bson.D{{Key: "sku", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_live_sku").SetPartialFilterExpression(live),
			},
			{
				Keys:    bson.D{{Key: "category", Value: 1}},
				Options: options.Index().SetName("idx_category"),
			},
		},
		names.Salaries: {
			{
				Keys:    bson.D{{Key: "employee_id", Value: 1}, {Key: "month", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_live_employee_month").SetPartialFilterExpression(live),
			},
			{
				Keys:    bson.D{{Key: "month", Value: 1}},
				Options: options.Index().SetName("idx_month"),
			},
		},
		names.Employees: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_live_email").SetPartialFilterExpression(live),
			},
			{
				Keys:    bson.D{{Key: "department_id", Value: 1}},
				Options: options.Index().SetName("idx_department"),
			},
		},
		names.Projects: {
			{
				Keys:    bson.D{{Key: "status", Value: 1}, {Key: "start_date", Value: -1}},
				Options: options.Index().SetName("idx_status_start"),
			},
		},
		names.Returns: {
			{
				Keys:    bson.D{{Key: "status", Value: 1}},
				Options: options.Index().SetName("idx_status"),
			},
		},
	}

	for coll, indexes := range plan {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
