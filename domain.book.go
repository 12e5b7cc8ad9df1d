package main

import "context"

// Book represents a book record as stored and served by the api.
// The ID is assigned by the service at creation time and is never
// accepted from callers.
type Book struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Author      string  `json:"author"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Read        bool    `json:"read"`
}

// CreateBookRequest is the payload expected when creating a book.
// Price and Read are pointers so a missing field can be told apart
// from a zero value.
type CreateBookRequest struct {
	Name        string   `json:"name"`
	Author      string   `json:"author"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	Read        *bool    `json:"read"`
}

// Validate checks the creation payload against the book schema
// required fields. It reports the first offending field.
func (req *CreateBookRequest) Validate() error {
	if len(req.Name) == 0 {
		return missingFieldError("name")
	}

	if len(req.Author) == 0 {
		return missingFieldError("author")
	}

	if req.Price == nil {
		return missingFieldError("price")
	}

	if len(req.Description) == 0 {
		return missingFieldError("description")
	}

	return nil
}

// Book builds the record to be persisted. Read defaults to false
// when absent from the payload.
func (req *CreateBookRequest) Book() Book {
	book := Book{
		Name:        req.Name,
		Author:      req.Author,
		Price:       *req.Price,
		Description: req.Description,
	}
	if req.Read != nil {
		book.Read = *req.Read
	}
	return book
}

// UpdateBookRequest is the payload expected when updating a book.
// All fields are optional. Absent fields keep their stored values.
type UpdateBookRequest struct {
	Name        *string  `json:"name"`
	Author      *string  `json:"author"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Read        *bool    `json:"read"`
}

// Merge applies the supplied fields onto an existing record and
// returns the result. The record ID is left untouched.
func (req *UpdateBookRequest) Merge(book Book) Book {
	if req.Name != nil {
		book.Name = *req.Name
	}
	if req.Author != nil {
		book.Author = *req.Author
	}
	if req.Price != nil {
		book.Price = *req.Price
	}
	if req.Description != nil {
		book.Description = *req.Description
	}
	if req.Read != nil {
		book.Read = *req.Read
	}
	return book
}

// BookStorage defines possible operations on book entity.
type BookStorage interface {
	Add(ctx context.Context, id string, book Book) error
	GetOne(ctx context.Context, id string) (Book, error)
	Delete(ctx context.Context, id string) error
	Update(ctx context.Context, id string, book Book) (Book, error)
	GetAll(ctx context.Context) ([]Book, error)
}
