package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"inkwell/app/models"
)

var (
	ErrNotFound = errors.New("record not found")
)

// BlogKeyPrefix namespaces blog records inside the Badger keyspace.
const BlogKeyPrefix = "blog:"

func blogKey(id string) []byte {
	return []byte(BlogKeyPrefix + id)
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}

// sortNewestFirst orders blogs by CreatedAt descending. Ties break on ID so
// listings stay deterministic regardless of iteration order.
func sortNewestFirst(blogs []*models.Blog) {
	sort.Slice(blogs, func(i, j int) bool {
		if blogs[i].CreatedAt.Equal(blogs[j].CreatedAt) {
			return blogs[i].ID < blogs[j].ID
		}
		return blogs[i].CreatedAt.After(blogs[j].CreatedAt)
	})
}
