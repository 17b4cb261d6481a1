package models

import (
	"time"
)

// List is a named collection of items owned by exactly one user.
type List struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description" db:"description"`
	OwnerID     int64     `json:"owner_id" db:"owner_id"`
	IsArchived  bool      `json:"is_archived" db:"is_archived"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ListDetail is a list together with its items in display order.
// swagger:model ListDetail
type ListDetail struct {
	List
	Items []ListItem `json:"items"`
}

// ListCreate carries the fields needed to insert a list.
type ListCreate struct {
	Title       string
	Description *string
	IsArchived  bool
}

// ListUpdate is a partial update; nil fields are left untouched.
type ListUpdate struct {
	Title       *string
	Description *string
	IsArchived  *bool
}

// ListFilter selects a page of one owner's lists.
type ListFilter struct {
	OwnerID    int64
	Skip       uint64
	Limit      uint64
	IsArchived *bool
}

// ListPage is a page of lists plus the total matching count.
// swagger:model ListPage
type ListPage struct {
	Total int64  `json:"total"`
	Skip  uint64 `json:"skip"`
	Limit uint64 `json:"limit"`
	Items []List `json:"items"`
}

// ListCreateRequest is the JSON body for list creation
// swagger:model ListCreateRequest
type ListCreateRequest struct {
	// List title
	// required: true
	Title string `json:"title" validate:"required,min=1,max=255" example:"Shopping"`

	// List description
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000" example:"Weekly shopping list"`

	// Whether the list starts archived
	IsArchived bool `json:"is_archived" example:"false"`
}

// ToCreate converts the request into a service payload.
func (r ListCreateRequest) ToCreate() ListCreate {
	return ListCreate{Title: r.Title, Description: r.Description, IsArchived: r.IsArchived}
}

// ListUpdateRequest is the JSON body for a partial list update
// swagger:model ListUpdateRequest
type ListUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=255" example:"Updated Shopping"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	IsArchived  *bool   `json:"is_archived,omitempty"`
}

// ToUpdate converts the request into a typed partial update.
func (r ListUpdateRequest) ToUpdate() ListUpdate {
	return ListUpdate{Title: r.Title, Description: r.Description, IsArchived: r.IsArchived}
}
