package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-todo-lists/internal/logger"
	"github.com/sbilibin2017/gw-todo-lists/internal/models"
)

//go:generate mockgen -source=items.go -destination=items_mock.go -package=services

var (
	ErrItemNotFound = errors.New("item not found")
	// ErrItemForbidden is returned when the item exists but its list belongs to someone else.
	ErrItemForbidden = errors.New("access denied")
)

// ListItemRepository persists list items.
type ListItemRepository interface {
	Create(ctx context.Context, listID int64, it models.ListItemCreate) (*models.ListItem, error)
	GetByID(ctx context.Context, id int64) (*models.ListItem, error)
	ListByList(ctx context.Context, listID int64) ([]models.ListItem, error)
	Update(ctx context.Context, id int64, it models.ListItemUpdate) (*models.ListItem, error)
	Toggle(ctx context.Context, id int64) (*models.ListItem, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ListOwnerReader looks up a list on behalf of its owner.
type ListOwnerReader interface {
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*models.List, error)
}

// ListItemService manages items. Access is granted through the parent list.
type ListItemService struct {
	items  ListItemRepository
	lists  ListOwnerReader
	events EventPublisher
}

// NewListItemService creates a new ListItemService. events may be nil.
func NewListItemService(items ListItemRepository, lists ListOwnerReader, events EventPublisher) *ListItemService {
	return &ListItemService{items: items, lists: lists, events: events}
}

// Create adds an item to a list the caller owns.
func (s *ListItemService) Create(ctx context.Context, listID, ownerID int64, in models.ListItemCreate) (*models.ListItem, error) {
	if err := s.checkList(ctx, listID, ownerID); err != nil {
		return nil, err
	}

	item, err := s.items.Create(ctx, listID, in)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to create item", "list_id", listID, "error", err)
		return nil, err
	}

	emit(ctx, s.events, models.EventItemCreated, ownerID, item.ID)
	return item, nil
}

// ListByList returns the items of a list the caller owns.
func (s *ListItemService) ListByList(ctx context.Context, listID, ownerID int64) ([]models.ListItem, error) {
	if err := s.checkList(ctx, listID, ownerID); err != nil {
		return nil, err
	}

	items, err := s.items.ListByList(ctx, listID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list items", "list_id", listID, "error", err)
		return nil, err
	}
	return items, nil
}

func (s *ListItemService) Get(ctx context.Context, itemID, ownerID int64) (*models.ListItem, error) {
	return s.authorize(ctx, itemID, ownerID)
}

func (s *ListItemService) Update(ctx context.Context, itemID, ownerID int64, in models.ListItemUpdate) (*models.ListItem, error) {
	if _, err := s.authorize(ctx, itemID, ownerID); err != nil {
		return nil, err
	}

	item, err := s.items.Update(ctx, itemID, in)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update item", "item_id", itemID, "error", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	emit(ctx, s.events, models.EventItemUpdated, ownerID, itemID)
	return item, nil
}

// Toggle flips the completion flag.
func (s *ListItemService) Toggle(ctx context.Context, itemID, ownerID int64) (*models.ListItem, error) {
	if _, err := s.authorize(ctx, itemID, ownerID); err != nil {
		return nil, err
	}

	item, err := s.items.Toggle(ctx, itemID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to toggle item", "item_id", itemID, "error", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	emit(ctx, s.events, models.EventItemToggled, ownerID, itemID)
	return item, nil
}

func (s *ListItemService) Delete(ctx context.Context, itemID, ownerID int64) error {
	if _, err := s.authorize(ctx, itemID, ownerID); err != nil {
		return err
	}

	deleted, err := s.items.Delete(ctx, itemID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete item", "item_id", itemID, "error", err)
		return err
	}
	if !deleted {
		return ErrItemNotFound
	}

	emit(ctx, s.events, models.EventItemDeleted, ownerID, itemID)
	return nil
}

// authorize loads the item and requires the caller to own its list.
// A missing item is ErrItemNotFound, a foreign one ErrItemForbidden.
func (s *ListItemService) authorize(ctx context.Context, itemID, ownerID int64) (*models.ListItem, error) {
	log := logger.FromContext(ctx)

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		log.Errorw("failed to get item", "item_id", itemID, "error", err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	list, err := s.lists.GetByIDAndOwner(ctx, item.ListID, ownerID)
	if err != nil {
		log.Errorw("failed to get item list", "list_id", item.ListID, "error", err)
		return nil, err
	}
	if list == nil {
		log.Infow("item access denied", "item_id", itemID, "user_id", ownerID)
		return nil, ErrItemForbidden
	}
	return item, nil
}

func (s *ListItemService) checkList(ctx context.Context, listID, ownerID int64) error {
	list, err := s.lists.GetByIDAndOwner(ctx, listID, ownerID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get list", "list_id", listID, "error", err)
		return err
	}
	if list == nil {
		return ErrListNotFound
	}
	return nil
}
