package models

import (
	"time"
)

// ListItem is a line entry of a list.
type ListItem struct {
	ID          int64     `json:"id" db:"id"`
	ListID      int64     `json:"list_id" db:"list_id"`
	Content     string    `json:"content" db:"content"`
	IsCompleted bool      `json:"is_completed" db:"is_completed"`
	Order       int       `json:"order" db:"order"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ListItemCreate carries the fields needed to insert an item.
type ListItemCreate struct {
	Content     string
	IsCompleted bool
	Order       int
}

// ListItemUpdate is a partial update; nil fields are left untouched.
type ListItemUpdate struct {
	Content     *string
	IsCompleted *bool
	Order       *int
}

// ListItemCreateRequest is the JSON body for item creation
// swagger:model ListItemCreateRequest
type ListItemCreateRequest struct {
	// Item content
	// required: true
	Content string `json:"content" validate:"required,min=1,max=1000" example:"Buy groceries"`

	// Whether the item is completed
	IsCompleted bool `json:"is_completed" example:"false"`

	// Position in the list, ties allowed
	Order int `json:"order" validate:"gte=0,max=2147483647" example:"0"`
}

// ToCreate converts the request into a service payload.
func (r ListItemCreateRequest) ToCreate() ListItemCreate {
	return ListItemCreate{Content: r.Content, IsCompleted: r.IsCompleted, Order: r.Order}
}

// ListItemUpdateRequest is the JSON body for a partial item update
// swagger:model ListItemUpdateRequest
type ListItemUpdateRequest struct {
	Content     *string `json:"content,omitempty" validate:"omitempty,min=1,max=1000"`
	IsCompleted *bool   `json:"is_completed,omitempty" example:"true"`
	Order       *int    `json:"order,omitempty" validate:"omitempty,gte=0,max=2147483647"`
}

// ToUpdate converts the request into a typed partial update.
func (r ListItemUpdateRequest) ToUpdate() ListItemUpdate {
	return ListItemUpdate{Content: r.Content, IsCompleted: r.IsCompleted, Order: r.Order}
}
