package repositories

import (
	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerBlogRepository implements BlogRepository using BadgerDB
type BadgerBlogRepository struct {
	db *badger.DB
}

// NewBadgerBlogRepository creates a new BadgerBlogRepository
func NewBadgerBlogRepository(db *badger.DB) *BadgerBlogRepository {
	return &BadgerBlogRepository{db: db}
}

// Insert persists a new blog. The repository assigns the ID and the
// creation timestamps; a blog with any required field empty is rejected
// before anything is written.
func (r *BadgerBlogRepository) Insert(blog *models.Blog) error {
	if err := blog.Validate(); err != nil {
		return err
	}
	blog.BeforeCreate()

	data, err := marshalEntity(blog)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(blogKey(blog.ID), data)
	})
}

// FindByID retrieves a blog by ID
func (r *BadgerBlogRepository) FindByID(id string) (*models.Blog, error) {
	var blog models.Blog

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(blogKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &blog)
		})
	})

	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindAll retrieves blogs newest-first. A limit of zero or less returns the
// whole collection.
func (r *BadgerBlogRepository) FindAll(limit int) ([]*models.Blog, error) {
	blogs, err := r.scan(func(*models.Blog) bool { return true })
	if err != nil {
		return nil, err
	}
	sortNewestFirst(blogs)
	if limit > 0 && limit < len(blogs) {
		blogs = blogs[:limit]
	}
	return blogs, nil
}

// FindByOwner retrieves the blogs belonging to userID, newest-first.
func (r *BadgerBlogRepository) FindByOwner(userID string) ([]*models.Blog, error) {
	blogs, err := r.scan(func(b *models.Blog) bool { return b.UserID == userID })
	if err != nil {
		return nil, err
	}
	sortNewestFirst(blogs)
	return blogs, nil
}

// DeleteByID removes a blog and returns the deleted record
func (r *BadgerBlogRepository) DeleteByID(id string) (*models.Blog, error) {
	var blog models.Blog

	err := r.db.Update(func(txn *badger.Txn) error {
		key := blogKey(id)
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &blog)
		}); err != nil {
			return err
		}

		return txn.Delete(key)
	})

	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// scan walks the blog keyspace and collects every record the filter accepts.
func (r *BadgerBlogRepository) scan(keep func(*models.Blog) bool) ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(BlogKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var blog models.Blog
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &blog)
			})
			if err != nil {
				return err
			}
			if keep(&blog) {
				blogs = append(blogs, &blog)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return blogs, nil
}
