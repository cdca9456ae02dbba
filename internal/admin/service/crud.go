package service

import (
	"context"
	"strings"

	"bizadmin/internal/admin/model"
	"bizadmin/internal/admin/repository"
)

// listSpec describes how list requests are translated for one collection.
type listSpec struct {
	searchFields []string
	sortFields   []string
	filter       func(req model.ListReq) model.Filter
}

func (sp listSpec) query(req model.ListReq) (model.ListQuery, error) {
	q := model.ListQuery{
		Search:       req.Q,
		SearchFields: sp.searchFields,
		Page:         req.Page,
		Size:         req.Size,
	}
	if sp.filter != nil {
		q.Filter = sp.filter(req)
	}

	if req.Sort != "" {
		field := strings.TrimPrefix(req.Sort, "-")
		allowed := false
		for _, f := range sp.sortFields {
			if f == field {
				allowed = true
				break
			}
		}
		if !allowed {
			return q, &model.ErrorDetail{Code: "bad_request", Message: "unsupported sort field: " + field}
		}
		q.SortField = field
		q.SortDesc = strings.HasPrefix(req.Sort, "-")
	}
	return q, nil
}

// eq adds non-empty values to an equality filter.
func eq(pairs ...string) model.Filter {
	f := model.Filter{}
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			f[pairs[i]] = pairs[i+1]
		}
	}
	return f
}

func docMeta[T any](doc *T) *model.Base {
	if d, ok := any(doc).(model.Document); ok {
		return d.Meta()
	}
	return nil
}

func list[T any](ctx context.Context, coll repository.Collection[T], ls listSpec, req model.ListReq) (*model.ListResp[T], error) {
	q, err := ls.query(req)
	if err != nil {
		return nil, err
	}
	items, total, err := coll.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return &model.ListResp[T]{Data: items, Page: req.Page, Size: req.Size, TotalCount: total}, nil
}

func get[T any](ctx context.Context, coll repository.Collection[T], id string) (*T, error) {
	doc, err := coll.Get(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return doc, nil
}

func create[T any](ctx context.Context, s *Service, coll repository.Collection[T], callerID string, doc *T, summary string) (*T, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}
	meta := docMeta(doc)
	meta.CreatedBy = callerID
	meta.UpdatedBy = callerID

	if err := coll.Insert(ctx, doc); err != nil {
		return nil, mapRepoErr(err)
	}
	s.afterWrite(ctx, model.OpCreate, coll.Name(), meta.ID, callerID, summary)
	return doc, nil
}

// update loads the document, lets mutate change it and writes it back.
func update[T any](ctx context.Context, s *Service, coll repository.Collection[T], callerID, id, op string, mutate func(doc *T) (string, error)) (*T, error) {
	if callerID == "" {
		return nil, ErrUnauthorized
	}
	doc, err := coll.Get(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	summary, err := mutate(doc)
	if err != nil {
		return nil, err
	}
	docMeta(doc).UpdatedBy = callerID

	if err := coll.Replace(ctx, doc); err != nil {
		return nil, mapRepoErr(err)
	}
	s.afterWrite(ctx, op, coll.Name(), id, callerID, summary)
	return doc, nil
}

func remove[T any](ctx context.Context, s *Service, coll repository.Collection[T], callerID, id string) error {
	if callerID == "" {
		return ErrUnauthorized
	}
	if err := coll.SoftDelete(ctx, id, callerID); err != nil {
		return mapRepoErr(err)
	}
	s.afterWrite(ctx, model.OpDelete, coll.Name(), id, callerID, "")
	return nil
}
