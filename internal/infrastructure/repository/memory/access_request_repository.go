package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/accessrequest"
)

type AccessRequestRepository struct {
	mu       sync.RWMutex
	requests []accessrequest.Request
}

func NewAccessRequestRepository() *AccessRequestRepository {
	return &AccessRequestRepository{}
}

func (r *AccessRequestRepository) ListPending(_ context.Context) ([]accessrequest.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]accessrequest.Request, 0)
	for _, item := range r.requests {
		if item.Status == accessrequest.StatusPending {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *AccessRequestRepository) GetByID(_ context.Context, requestID string) (accessrequest.Request, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.requests {
		if item.ID == requestID {
			return item, true, nil
		}
	}
	return accessrequest.Request{}, false, nil
}

func (r *AccessRequestRepository) Insert(_ context.Context, req accessrequest.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = append(r.requests, req)
	return nil
}

func (r *AccessRequestRepository) UpdateStatus(_ context.Context, requestID string, status accessrequest.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.requests {
		if r.requests[i].ID == requestID {
			r.requests[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("access request %s not found", requestID)
}
