package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"ocrbatch/internal/domain"
)

// BatchService sequences discovery, conversion, and memory reclamation over
// one run.
type BatchService interface {
	// Run drives one full batch: discover, then convert each document in
	// listing order with a guard check after each. A document's failure
	// never stops the batch; the returned error is non-nil only when
	// discovery itself failed.
	Run(ctx context.Context) (domain.BatchSummary, error)
	// State reports the orchestrator's current lifecycle state.
	State() domain.BatchState
}

type batchService struct {
	fetcher   FetchService
	converter ConvertService
	guard     GuardService
	state     domain.BatchState
}

// NewBatchService creates a BatchService. The service is single-use per Run
// and strictly sequential: the engine's accelerator state is not safe for
// concurrent conversions.
func NewBatchService(fetcher FetchService, converter ConvertService, guard GuardService) BatchService {
	return &batchService{
		fetcher:   fetcher,
		converter: converter,
		guard:     guard,
		state:     domain.BatchStateIdle,
	}
}

func (s *batchService) State() domain.BatchState {
	return s.state
}

func (s *batchService) Run(ctx context.Context) (domain.BatchSummary, error) {
	summary := domain.BatchSummary{RunID: uuid.New()}

	s.state = domain.BatchStateDiscovering
	log.Printf("batchService.Run: run %s discovering documents", summary.RunID)

	refs, err := s.fetcher.DiscoverAndFetch(ctx)
	if err != nil {
		s.state = domain.BatchStateDone
		return summary, err
	}
	summary.Discovered = len(refs)

	if len(refs) == 0 {
		s.state = domain.BatchStateDone
		log.Printf("batchService.Run: run %s found no documents to process", summary.RunID)
		return summary, nil
	}

	s.state = domain.BatchStateProcessing
	for i, ref := range refs {
		log.Printf("batchService.Run: run %s document %d/%d: %s", summary.RunID, i+1, len(refs), ref.Key)

		outcome := s.converter.ConvertAndPersist(ctx, ref)
		if outcome.OK() {
			summary.Processed++
		} else {
			summary.Failed++
			log.Printf("batchService.Run: run %s document %s failed (%s): %v",
				summary.RunID, ref.Key, outcome.Kind, outcome.Err)
		}

		// Conversions are what accumulate accelerator residency, so the
		// guard runs after every document, success or not.
		s.guard.CheckAndReclaim()
	}

	s.state = domain.BatchStateDone
	log.Printf("batchService.Run: run %s done: %d processed, %d failed",
		summary.RunID, summary.Processed, summary.Failed)
	return summary, nil
}
