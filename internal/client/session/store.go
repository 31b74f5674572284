// Package session keeps the signed-in resident's token and profile across
// restarts. There is at most one session; it lives under a single key of the
// metadata table.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/models"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/client/repositories/metadata"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/common"
)

type Store interface {
	Save(ctx context.Context, s models.Session) error
	// Get returns (nil, nil) when no session is stored.
	Get(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
}

type MetadataStore struct {
	repo metadata.Repository
}

func NewMetadataStore(repo metadata.Repository) *MetadataStore {
	return &MetadataStore{repo: repo}
}

func (s *MetadataStore) Save(ctx context.Context, sess models.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.repo.Set(ctx, common.SessionStorageKey, data); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *MetadataStore) Get(ctx context.Context) (*models.Session, error) {
	data, err := s.repo.Get(ctx, common.SessionStorageKey)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

func (s *MetadataStore) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.SessionStorageKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
