package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-todo-lists/internal/logger"
	"github.com/sbilibin2017/gw-todo-lists/internal/models"
)

//go:generate mockgen -source=lists.go -destination=lists_mock.go -package=services

// ErrListNotFound is returned for missing lists and for lists owned by someone else.
var ErrListNotFound = errors.New("list not found")

// ListRepository persists lists. Lookups are scoped to the owner.
type ListRepository interface {
	Create(ctx context.Context, ownerID int64, l models.ListCreate) (*models.List, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.List, error)
	ListByOwner(ctx context.Context, filter models.ListFilter) ([]models.List, int64, error)
	UpdateByOwner(ctx context.Context, id, ownerID int64, l models.ListUpdate) (*models.List, error)
	SetArchived(ctx context.Context, id, ownerID int64, archived bool) (*models.List, error)
	DeleteByOwner(ctx context.Context, id, ownerID int64) (bool, error)
}

// ItemLister reads the items of a list.
type ItemLister interface {
	ListByList(ctx context.Context, listID int64) ([]models.ListItem, error)
}

// ListService manages the lists of the authenticated user.
type ListService struct {
	lists  ListRepository
	items  ItemLister
	events EventPublisher
}

// NewListService creates a new ListService. events may be nil.
func NewListService(lists ListRepository, items ItemLister, events EventPublisher) *ListService {
	return &ListService{lists: lists, items: items, events: events}
}

// Create stores a list owned by ownerID.
func (s *ListService) Create(ctx context.Context, ownerID int64, in models.ListCreate) (*models.List, error) {
	list, err := s.lists.Create(ctx, ownerID, in)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to create list", "owner_id", ownerID, "error", err)
		return nil, err
	}

	emit(ctx, s.events, models.EventListCreated, ownerID, list.ID)
	return list, nil
}

// Get returns the list with its items in display order.
func (s *ListService) Get(ctx context.Context, listID, ownerID int64) (*models.ListDetail, error) {
	list, err := s.owned(ctx, listID, ownerID)
	if err != nil {
		return nil, err
	}

	items, err := s.items.ListByList(ctx, listID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get list items", "list_id", listID, "error", err)
		return nil, err
	}
	return &models.ListDetail{List: *list, Items: items}, nil
}

// List returns a page of the owner's lists, optionally filtered by archive state.
func (s *ListService) List(ctx context.Context, ownerID int64, skip, limit uint64, archived *bool) (*models.ListPage, error) {
	filter := models.ListFilter{OwnerID: ownerID, Skip: skip, Limit: limit, IsArchived: archived}

	lists, total, err := s.lists.ListByOwner(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list lists", "owner_id", ownerID, "error", err)
		return nil, err
	}
	return &models.ListPage{Total: total, Skip: skip, Limit: limit, Items: lists}, nil
}

func (s *ListService) Update(ctx context.Context, listID, ownerID int64, in models.ListUpdate) (*models.List, error) {
	list, err := s.lists.UpdateByOwner(ctx, listID, ownerID, in)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update list", "list_id", listID, "error", err)
		return nil, err
	}
	if list == nil {
		return nil, ErrListNotFound
	}

	emit(ctx, s.events, models.EventListUpdated, ownerID, listID)
	return list, nil
}

// Delete removes the list and its items.
func (s *ListService) Delete(ctx context.Context, listID, ownerID int64) error {
	deleted, err := s.lists.DeleteByOwner(ctx, listID, ownerID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete list", "list_id", listID, "error", err)
		return err
	}
	if !deleted {
		return ErrListNotFound
	}

	emit(ctx, s.events, models.EventListDeleted, ownerID, listID)
	return nil
}

// Archive marks the list archived. Archiving an archived list is a no-op.
func (s *ListService) Archive(ctx context.Context, listID, ownerID int64) (*models.List, error) {
	return s.setArchived(ctx, listID, ownerID, true, models.EventListArchived)
}

// Unarchive clears the archive flag. Unarchiving an active list is a no-op.
func (s *ListService) Unarchive(ctx context.Context, listID, ownerID int64) (*models.List, error) {
	return s.setArchived(ctx, listID, ownerID, false, models.EventListRestored)
}

func (s *ListService) setArchived(ctx context.Context, listID, ownerID int64, archived bool, eventType string) (*models.List, error) {
	list, err := s.lists.SetArchived(ctx, listID, ownerID, archived)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to set archive flag", "list_id", listID, "archived", archived, "error", err)
		return nil, err
	}
	if list == nil {
		return nil, ErrListNotFound
	}

	emit(ctx, s.events, eventType, ownerID, listID)
	return list, nil
}

func (s *ListService) owned(ctx context.Context, listID, ownerID int64) (*models.List, error) {
	list, err := s.lists.GetByIDAndOwner(ctx, listID, ownerID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get list", "list_id", listID, "error", err)
		return nil, err
	}
	if list == nil {
		return nil, ErrListNotFound
	}
	return list, nil
}
