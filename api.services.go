package main

import (
	"context"

	"go.uber.org/zap"
)

// BookServiceProvider is the persistence gateway contract. It is the
// only component allowed to assign ids, apply schema defaults and
// talk to the backing store.
type BookServiceProvider interface {
	Create(ctx context.Context, req CreateBookRequest) (Book, error)
	GetOne(ctx context.Context, id string) (Book, error)
	Delete(ctx context.Context, id string) error
	Update(ctx context.Context, id string, req UpdateBookRequest) (Book, error)
	GetAll(ctx context.Context) ([]Book, error)
}

type BookService struct {
	logger  *zap.Logger
	config  *Config
	ids     UIDHandler
	storage BookStorage
}

func NewBookService(logger *zap.Logger, config *Config, ids UIDHandler, storage BookStorage) BookServiceProvider {
	return &BookService{
		logger:  logger,
		config:  config,
		ids:     ids,
		storage: storage,
	}
}

// Create validates the payload, builds the record with a fresh id and
// persists it. An invalid payload never reaches the storage.
func (bs *BookService) Create(ctx context.Context, req CreateBookRequest) (Book, error) {
	if err := req.Validate(); err != nil {
		return Book{}, err
	}

	book := req.Book()
	book.ID = bs.ids.Generate(BookIDPrefix)
	if err := bs.storage.Add(ctx, book.ID, book); err != nil {
		return Book{}, err
	}
	return book, nil
}

func (bs *BookService) GetOne(ctx context.Context, id string) (Book, error) {
	book, err := bs.storage.GetOne(ctx, id)
	return book, err
}

// Delete removes the record. Deleting an id with no record behind it
// is a benign success so the call stays idempotent.
func (bs *BookService) Delete(ctx context.Context, id string) error {
	return bs.storage.Delete(ctx, id)
}

// Update merges the supplied fields onto the stored record then persists
// and returns the post-update snapshot. Fields absent from the request
// keep their prior values.
func (bs *BookService) Update(ctx context.Context, id string, req UpdateBookRequest) (Book, error) {
	book, err := bs.storage.GetOne(ctx, id)
	if err != nil {
		return Book{}, err
	}

	book = req.Merge(book)
	return bs.storage.Update(ctx, id, book)
}

func (bs *BookService) GetAll(ctx context.Context) ([]Book, error) {
	books, err := bs.storage.GetAll(ctx)
	return books, err
}
