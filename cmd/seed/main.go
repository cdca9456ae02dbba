// Command seed fills an empty database with demo data for the console.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"bizadmin/internal/admin/config"
	"bizadmin/internal/admin/model"
	"bizadmin/internal/admin/repository"
	"bizadmin/internal/admin/stats"
	"bizadmin/internal/admin/util"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const seedUser = "seed"

var (
	departmentNames = []string{"Engineering", "Sales", "Finance", "Operations", "People"}
	projectStatuses = []string{model.ProjectPlanned, model.ProjectInProgress, model.ProjectOnHold, model.ProjectCompleted}
	returnStatuses  = []string{model.ReturnPending, model.ReturnApproved, model.ReturnRejected, model.ReturnRefunded}
	units           = []string{"pcs", "box", "kg", "m"}
)

type seeder struct {
	store *repository.Store
	f     *gofakeit.Faker
	now   time.Time

	departments []*model.Department
	employees   []*model.Employee
	customers   []*model.Customer
	suppliers   []*model.Supplier
	products    []*model.Product
}

func main() {
	employees := flag.Int("employees", 40, "number of employees")
	products := flag.Int("products", 60, "number of products")
	customers := flag.Int("customers", 25, "number of customers")
	projects := flag.Int("projects", 15, "number of projects")
	seed := flag.Uint64("seed", 0, "random seed, 0 for a random one")
	flag.Parse()

	util.InitLogger()
	logger := util.GetLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI).SetRegistry(repository.NewRegistry()))
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	s := &seeder{
		store: repository.NewMongoStore(client.Database(cfg.DBName), cfg.Collections),
		f:     gofakeit.New(*seed),
		now:   time.Now().UTC(),
	}

	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"departments", s.seedDepartments},
		{"employees", func(ctx context.Context) error { return s.seedEmployees(ctx, *employees) }},
		{"salaries", s.seedSalaries},
		{"customers", func(ctx context.Context) error { return s.seedCustomers(ctx, *customers) }},
		{"suppliers", s.seedSuppliers},
		{"products", func(ctx context.Context) error { return s.seedProducts(ctx, *products) }},
		{"returns", s.seedReturns},
		{"projects", func(ctx context.Context) error { return s.seedProjects(ctx, *projects) }},
		{"documents", s.seedDocuments},
	}
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			logger.Error("Seeding failed", "step", step.name, "error", err)
			os.Exit(1)
		}
		logger.Info("Seeded", "step", step.name)
	}
}

func (s *seeder) pick(options []string) string {
	return options[s.f.Number(0, len(options)-1)]
}

func (s *seeder) money(lo, hi float64) decimal.Decimal {
	return decimal.NewFromFloat(s.f.Price(lo, hi)).Round(2)
}

func (s *seeder) daysAgo(maxDays int) time.Time {
	return s.now.AddDate(0, 0, -s.f.Number(0, maxDays)).Truncate(24 * time.Hour)
}

func (s *seeder) seedDepartments(ctx context.Context) error {
	for _, name := range departmentNames {
		d := &model.Department{
			Name:        name,
			Description: s.f.Sentence(6),
			Budget:      s.money(50000, 400000),
		}
		d.CreatedBy = seedUser
		if err := s.store.Departments.Insert(ctx, d); err != nil {
			return err
		}
		s.departments = append(s.departments, d)
	}
	return nil
}

func (s *seeder) seedEmployees(ctx context.Context, n int) error {
	statuses := []string{model.EmployeeActive, model.EmployeeActive, model.EmployeeActive, model.EmployeeOnLeave, model.EmployeeTerminated}
	for i := 0; i < n; i++ {
		dept := s.departments[s.f.Number(0, len(s.departments)-1)]
		e := &model.Employee{
			EmployeeCode: fmt.Sprintf("EMP-%04d", i+1),
			FirstName:    s.f.FirstName(),
			LastName:     s.f.LastName(),
			Phone:        s.f.Phone(),
			DepartmentID: dept.ID,
			Department:   dept.Name,
			Position:     s.f.JobTitle(),
			Status:       s.pick(statuses),
			HireDate:     s.daysAgo(5 * 365),
			BaseSalary:   s.money(2500, 9000),
			Skills:       []string{s.f.Word(), s.f.Word()},
		}
		e.Email = fmt.Sprintf("%s.%d@example.com", s.f.Username(), i+1)
		e.CreatedBy = seedUser
		if err := s.store.Employees.Insert(ctx, e); err != nil {
			return err
		}
		s.employees = append(s.employees, e)
	}
	return nil
}

// seedSalaries writes the last three months of payroll; only the current month stays pending.
func (s *seeder) seedSalaries(ctx context.Context) error {
	for back := 2; back >= 0; back-- {
		month := s.now.AddDate(0, -back, 0).Format(model.MonthLayout)
		for _, e := range s.employees {
			if e.StatusOrDefault() == model.EmployeeTerminated {
				continue
			}
			rec := &model.SalaryRecord{
				EmployeeID:   e.ID,
				EmployeeName: e.FirstName + " " + e.LastName,
				DepartmentID: e.DepartmentID,
				Month:        month,
				Allowances: []model.PayItem{
					{Name: model.BaseSalaryItem, Amount: e.BaseSalary},
					{Name: "Transport", Amount: s.money(50, 300)},
				},
				Deductions: []model.PayItem{
					{Name: "Tax", Amount: e.BaseSalary.Mul(decimal.NewFromFloat(0.12)).Round(2)},
				},
				Status: model.SalaryPending,
			}
			rec.NetPay = stats.NetPay(rec)
			if back > 0 {
				paid := s.now.AddDate(0, -back, 0)
				rec.Status = model.SalaryPaid
				rec.PaidAt = &paid
			}
			rec.CreatedBy = seedUser
			if err := s.store.Salaries.Insert(ctx, rec); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *seeder) seedCustomers(ctx context.Context, n int) error {
	statuses := []string{model.CustomerLead, model.CustomerActive, model.CustomerActive, model.CustomerInactive}
	for i := 0; i < n; i++ {
		c := &model.Customer{
			Name:           s.f.Name(),
			Company:        s.f.Company(),
			Email:          s.f.Email(),
			Phone:          s.f.Phone(),
			Address:        s.f.Address().Address,
			Status:         s.pick(statuses),
			TotalPurchases: s.money(0, 80000),
		}
		c.CreatedBy = seedUser
		if err := s.store.Customers.Insert(ctx, c); err != nil {
			return err
		}
		s.customers = append(s.customers, c)
	}
	return nil
}

func (s *seeder) seedSuppliers(ctx context.Context) error {
	for i := 0; i < 8; i++ {
		sup := &model.Supplier{
			Name:        s.f.Company(),
			ContactName: s.f.Name(),
			Email:       s.f.Email(),
			Phone:       s.f.Phone(),
			Address:     s.f.Address().Address,
			Categories:  []string{s.f.ProductCategory()},
			Rating:      float64(s.f.Number(1, 5)),
			Status:      model.StatusActive,
		}
		if i%5 == 4 {
			sup.Status = model.StatusInactive
		}
		sup.CreatedBy = seedUser
		if err := s.store.Suppliers.Insert(ctx, sup); err != nil {
			return err
		}
		s.suppliers = append(s.suppliers, sup)
	}
	return nil
}

func (s *seeder) seedProducts(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		sup := s.suppliers[s.f.Number(0, len(s.suppliers)-1)]
		cost := s.money(2, 400)
		p := &model.Product{
			SKU:        fmt.Sprintf("SKU-%05d", i+1),
			Name:       s.f.ProductName(),
			Category:   sup.Categories[0],
			SupplierID: sup.ID,
			Unit:       s.pick(units),
			CostPrice:  cost,
			UnitPrice:  cost.Mul(decimal.NewFromFloat(1.35)).Round(2),
			// roughly one product in five ends up at or below its minimum
			MinStockLevel: int64(s.f.Number(5, 20)),
			CurrentStock:  int64(s.f.Number(0, 120)),
			Status:        model.StatusActive,
		}
		p.CreatedBy = seedUser
		if err := s.store.Products.Insert(ctx, p); err != nil {
			return err
		}
		s.products = append(s.products, p)
	}
	return nil
}

func (s *seeder) seedReturns(ctx context.Context) error {
	if len(s.products) == 0 || len(s.customers) == 0 {
		return nil
	}
	for i := 0; i < len(s.products)/4; i++ {
		p := s.products[s.f.Number(0, len(s.products)-1)]
		qty := int64(s.f.Number(1, 5))
		r := &model.Return{
			ProductID:   p.ID,
			ProductName: p.Name,
			CustomerID:  s.customers[s.f.Number(0, len(s.customers)-1)].ID,
			Quantity:    qty,
			Reason:      s.f.Sentence(4),
			Status:      s.pick(returnStatuses),
			ReturnDate:  s.daysAgo(90),
		}
		if r.Status == model.ReturnRefunded {
			r.RefundAmount = p.UnitPrice.Mul(decimal.NewFromInt(qty))
		}
		r.CreatedBy = seedUser
		if err := s.store.Returns.Insert(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) seedProjects(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		c := s.customers[s.f.Number(0, len(s.customers)-1)]
		start := s.daysAgo(365)
		budget := s.money(5000, 250000)
		p := &model.Project{
			Name:         s.f.ProductName() + " rollout",
			Description:  s.f.Sentence(10),
			CustomerID:   c.ID,
			CustomerName: c.Name,
			Manager:      s.f.Name(),
			Status:       s.pick(projectStatuses),
			Budget:       budget,
			Spent:        budget.Mul(decimal.NewFromFloat(float64(s.f.Number(0, 110)) / 100)).Round(2),
			StartDate:    start,
		}
		for m := 1; m <= 3; m++ {
			due := start.AddDate(0, m, 0)
			ms := model.Milestone{
				ID:      fmt.Sprintf("m%d", m),
				Title:   s.f.Sentence(3),
				DueDate: due,
			}
			if due.Before(s.now) && s.f.Bool() {
				ms.Completed = true
				ms.CompletedAt = &due
			}
			p.Milestones = append(p.Milestones, ms)
		}
		p.CreatedBy = seedUser
		if err := s.store.Projects.Insert(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) seedDocuments(ctx context.Context) error {
	for i, e := range s.employees {
		if i%3 != 0 {
			continue
		}
		ext := s.f.FileExtension()
		d := &model.FileDocument{
			Title:      "Contract " + e.EmployeeCode,
			Category:   "contract",
			EmployeeID: e.ID,
			OwnerID:    seedUser,
			FileURL:    fmt.Sprintf("%s/%s.%s", s.f.URL(), e.EmployeeCode, ext),
			FileType:   ext,
			SizeBytes:  int64(s.f.Number(10_000, 2_000_000)),
		}
		d.CreatedBy = seedUser
		if err := s.store.Documents.Insert(ctx, d); err != nil {
			return err
		}
	}
	return nil
}
