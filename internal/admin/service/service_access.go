package service

import (
	"context"
	"errors"
	"log/slog"

	"bizadmin/internal/admin/model"
	"bizadmin/internal/admin/repository"
)

func (s *Service) GetUserRolesMe(ctx context.Context, callerID string) (*model.MyRolesResp, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}
	assigned, err := s.Store.UserRoles.FindUserRoles(ctx, model.UserRoleFilter{UserID: callerID})
	if err != nil {
		return nil, err
	}

	roles := make([]string, 0, len(assigned))
	for _, r := range assigned {
		roles = append(roles, r.Role)
	}
	return &model.MyRolesResp{
		UserID:      callerID,
		Roles:       roles,
		Permissions: s.Policy.PermissionsFor(roles),
	}, nil
}

func (s *Service) GetUserRoles(ctx context.Context, req model.GetUserRolesReq) ([]*model.UserRole, error) {
	// Permission check handled by RBAC middleware
	return s.Store.UserRoles.FindUserRoles(ctx, model.UserRoleFilter{UserID: req.UserID, Role: req.Role})
}

func (s *Service) AssignUserRole(ctx context.Context, callerID string, req model.AssignUserRoleReq) error {
	if callerID == "" {
		return ErrUnauthorized
	}
	if !s.Policy.IsKnownRole(req.Role) {
		return ErrBadRequest
	}

	role := &model.UserRole{
		UserID:    req.UserID,
		Role:      req.Role,
		CreatedAt: s.Now(),
		CreatedBy: callerID,
	}
	if err := s.Store.UserRoles.UpsertUserRole(ctx, role); err != nil {
		return err
	}

	s.auditRole(ctx, model.OpAssignRole, callerID, req.UserID, req.Role)
	return nil
}

// DeleteUserRole removes a role assignment. Admins cannot drop their own admin role
// so that the console always keeps someone able to grant roles.
func (s *Service) DeleteUserRole(ctx context.Context, callerID string, req model.DeleteUserRoleReq) error {
	if callerID == "" {
		return ErrUnauthorized
	}
	if req.UserID == callerID && req.Role == model.RoleAdmin {
		return ErrForbidden
	}

	if err := s.Store.UserRoles.DeleteUserRole(ctx, req.UserID, req.Role); err != nil {
		return mapRepoErr(err)
	}

	s.auditRole(ctx, model.OpDeleteRole, callerID, req.UserID, req.Role)
	return nil
}

func (s *Service) auditRole(ctx context.Context, op, callerID, userID, role string) {
	slog.Info("Audit",
		"operation", op,
		"caller", callerID,
		"target", userID,
		"role", role,
	)
	s.recordActivity(&model.ActivityLog{
		Operation:  op,
		Collection: model.CollectionUserRoles,
		DocumentID: userID,
		CallerID:   callerID,
		Summary:    role,
		RequestID:  requestID(ctx),
		CreatedAt:  s.Now(),
	})
}

// BootstrapAdmin grants the admin role to userID. It is run at startup so a fresh
// installation has someone able to assign roles.
func (s *Service) BootstrapAdmin(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	err := s.Store.UserRoles.UpsertUserRole(ctx, &model.UserRole{
		UserID:    userID,
		Role:      model.RoleAdmin,
		CreatedAt: s.Now(),
		CreatedBy: "bootstrap",
	})
	if err != nil && !errors.Is(err, repository.ErrDuplicate) {
		return err
	}
	slog.Info("Bootstrap admin ensured", "user_id", userID)
	return nil
}

// GetActivityLogs retrieves the activity log with pagination
func (s *Service) GetActivityLogs(ctx context.Context, req model.GetActivityLogsReq) (*model.GetActivityLogsResp, error) {
	// Permission check handled by RBAC middleware
	data, total, err := s.Store.Activity.FindActivity(ctx, req)
	if err != nil {
		return nil, err
	}
	return &model.GetActivityLogsResp{
		Data:       data,
		Page:       req.Page,
		Size:       req.Size,
		TotalCount: total,
	}, nil
}
