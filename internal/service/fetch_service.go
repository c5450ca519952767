package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"ocrbatch/internal/config"
	"ocrbatch/internal/domain"
	"ocrbatch/internal/port"
)

// FetchService discovers remote documents and materializes them locally.
type FetchService interface {
	// DiscoverAndFetch lists the configured bucket prefix, filters to
	// documents, and downloads each one that is not already present
	// locally. The returned references preserve listing order. A listing
	// failure returns no references along with the error; a download
	// failure only excludes that one document.
	DiscoverAndFetch(ctx context.Context) ([]domain.DocumentReference, error)
}

type fetchService struct {
	storage port.ObjectStorage
	s3Cfg   *config.S3Config
	paths   *config.PathsConfig
}

// NewFetchService creates a new FetchService implementation.
func NewFetchService(storage port.ObjectStorage, s3Cfg *config.S3Config, paths *config.PathsConfig) FetchService {
	return &fetchService{
		storage: storage,
		s3Cfg:   s3Cfg,
		paths:   paths,
	}
}

func (s *fetchService) DiscoverAndFetch(ctx context.Context) ([]domain.DocumentReference, error) {
	if err := os.MkdirAll(s.paths.InputDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating input directory %s: %v", domain.ErrDiscoveryFailed, s.paths.InputDir, err)
	}

	log.Printf("fetchService.DiscoverAndFetch: listing bucket %q prefix %q", s.s3Cfg.Bucket, s.s3Cfg.Prefix)
	objects, err := s.storage.ListObjects(ctx, s.s3Cfg.Bucket, s.s3Cfg.Prefix)
	if err != nil {
		log.Printf("fetchService.DiscoverAndFetch: listing failed: %v", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrDiscoveryFailed, err)
	}

	var refs []domain.DocumentReference
	for _, obj := range objects {
		if !strings.EqualFold(filepath.Ext(obj.Key), domain.DocumentExtension) {
			continue
		}

		ref := domain.DocumentReference{
			Key:       obj.Key,
			LocalPath: filepath.Join(s.paths.InputDir, filepath.Base(obj.Key)),
		}

		if _, statErr := os.Stat(ref.LocalPath); statErr == nil {
			log.Printf("fetchService.DiscoverAndFetch: %s already exists, skipping download", ref.LocalPath)
			refs = append(refs, ref)
			continue
		}

		log.Printf("fetchService.DiscoverAndFetch: downloading %s to %s", obj.Key, ref.LocalPath)
		if err := s.storage.DownloadToFile(ctx, s.s3Cfg.Bucket, obj.Key, ref.LocalPath); err != nil {
			log.Printf("fetchService.DiscoverAndFetch: downloading %s failed: %v", obj.Key, err)
			continue
		}
		refs = append(refs, ref)
	}

	if len(refs) == 0 {
		log.Printf("fetchService.DiscoverAndFetch: no documents found under prefix %q", s.s3Cfg.Prefix)
	}
	return refs, nil
}
