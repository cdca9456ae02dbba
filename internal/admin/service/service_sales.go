package service

import (
	"context"

	"bizadmin/internal/admin/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var projectList = listSpec{
	searchFields: []string{"name", "customer_name", "manager", "tags"},
	sortFields:   []string{"name", "status", "budget", "start_date", "deadline", "created_at"},
	filter: func(req model.ListReq) model.Filter {
		return eq("status", req.Status, "customer_id", req.CustomerID)
	},
}

var customerList = listSpec{
	searchFields: []string{"name", "company", "email"},
	sortFields:   []string{"name", "company", "total_purchases", "created_at"},
	filter: func(req model.ListReq) model.Filter {
		return eq("status", req.Status)
	},
}

func (s *Service) ListProjects(ctx context.Context, req model.ListReq) (*model.ListResp[model.Project], error) {
	return list(ctx, s.Store.Projects, projectList, req)
}

func (s *Service) GetProject(ctx context.Context, id string) (*model.Project, error) {
	return get(ctx, s.Store.Projects, id)
}

func (s *Service) CreateProject(ctx context.Context, callerID string, req model.ProjectInput) (*model.Project, error) {
	p := &model.Project{}
	req.Apply(p)
	return create(ctx, s, s.Store.Projects, callerID, p, p.Name)
}

func (s *Service) UpdateProject(ctx context.Context, callerID, id string, req model.ProjectInput) (*model.Project, error) {
	return update(ctx, s, s.Store.Projects, callerID, id, model.OpUpdate, func(p *model.Project) (string, error) {
		req.Apply(p)
		return p.Name, nil
	})
}

func (s *Service) DeleteProject(ctx context.Context, callerID, id string) error {
	return remove(ctx, s, s.Store.Projects, callerID, id)
}

// AddMilestone appends a milestone to the project and returns the updated project.
func (s *Service) AddMilestone(ctx context.Context, callerID, projectID string, req model.MilestoneInput) (*model.Project, error) {
	return update(ctx, s, s.Store.Projects, callerID, projectID, model.OpAddMilestone, func(p *model.Project) (string, error) {
		p.Milestones = append(p.Milestones, model.Milestone{
			ID:      primitive.NewObjectID().Hex(),
			Title:   req.Title,
			DueDate: req.DueDate.UTC(),
		})
		return req.Title, nil
	})
}

// SetMilestoneCompletion marks a milestone completed or reopens it.
// Completing an already completed milestone keeps the original completion time.
func (s *Service) SetMilestoneCompletion(ctx context.Context, callerID, projectID, milestoneID string, req model.MilestoneUpdateReq) (*model.Project, error) {
	return update(ctx, s, s.Store.Projects, callerID, projectID, model.OpMilestone, func(p *model.Project) (string, error) {
		for i := range p.Milestones {
			m := &p.Milestones[i]
			if m.ID != milestoneID {
				continue
			}
			switch {
			case req.Completed && !m.Completed:
				now := s.Now()
				m.Completed = true
				m.CompletedAt = &now
			case !req.Completed:
				m.Completed = false
				m.CompletedAt = nil
			}
			if m.Completed {
				return m.Title + ": completed", nil
			}
			return m.Title + ": reopened", nil
		}
		return "", ErrNotFound
	})
}

func (s *Service) ListCustomers(ctx context.Context, req model.ListReq) (*model.ListResp[model.Customer], error) {
	return list(ctx, s.Store.Customers, customerList, req)
}

func (s *Service) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	return get(ctx, s.Store.Customers, id)
}

func (s *Service) CreateCustomer(ctx context.Context, callerID string, req model.CustomerInput) (*model.Customer, error) {
	c := &model.Customer{}
	req.Apply(c)
	return create(ctx, s, s.Store.Customers, callerID, c, c.Name)
}

func (s *Service) UpdateCustomer(ctx context.Context, callerID, id string, req model.CustomerInput) (*model.Customer, error) {
	return update(ctx, s, s.Store.Customers, callerID, id, model.OpUpdate, func(c *model.Customer) (string, error) {
		req.Apply(c)
		return c.Name, nil
	})
}

func (s *Service) DeleteCustomer(ctx context.Context, callerID, id string) error {
	return remove(ctx, s, s.Store.Customers, callerID, id)
}
