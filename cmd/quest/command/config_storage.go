package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-quest/internal/catalog"
	"github.com/pixil98/go-quest/internal/storage"
)

type StorageConfig struct {
	Regions       AssetConfig[*catalog.Region]      `json:"regions"`
	Avatars       AssetConfig[*catalog.Avatar]      `json:"avatars"`
	Personalities AssetConfig[*catalog.Personality] `json:"personalities"`
}

// BuildCatalog loads every content store and assembles the validated
// catalog. Any content fault fails here, before a listener ever opens.
func (c *StorageConfig) BuildCatalog() (*catalog.Catalog, error) {
	regions, err := c.Regions.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating region store: %w", err)
	}
	avatars, err := c.Avatars.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating avatar store: %w", err)
	}
	personalities, err := c.Personalities.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating personality store: %w", err)
	}

	return catalog.New(regions, avatars, personalities)
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Regions.Validate("regions"))
	el.Add(c.Avatars.Validate("avatars"))
	el.Add(c.Personalities.Validate("personalities"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
