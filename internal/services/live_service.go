package services

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"doonconnect/internal/catalog"
	"doonconnect/internal/domain/models"
)

// LiveService owns the simulated fleet positions. All mutation happens
// through Tick; readers get copies. The mutex exists because the HTTP layer
// reads concurrently with the ticker.
type LiveService struct {
	mu    sync.RWMutex
	buses []models.LiveBus
	rng   *rand.Rand

	subMu sync.Mutex
	subs  map[chan []models.LiveBus]struct{}
}

func NewLiveService(buses []models.LiveBus) *LiveService {
	return &LiveService{
		buses: buses,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		subs:  make(map[chan []models.LiveBus]struct{}),
	}
}

// Snapshot returns a copy of every bus.
func (s *LiveService) Snapshot() []models.LiveBus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.LiveBus, len(s.buses))
	copy(out, s.buses)
	return out
}

// BusesForStop lists buses on routes serving the stop, nearest first.
func (s *LiveService) BusesForStop(cat *catalog.Catalog, stopID string) ([]models.LiveBus, error) {
	stop, err := cat.StopByID(stopID)
	if err != nil {
		return nil, err
	}
	serving := map[string]bool{}
	for _, routeID := range stop.Routes {
		serving[routeID] = true
	}

	out := []models.LiveBus{}
	for _, bus := range s.Snapshot() {
		if serving[bus.RouteID] {
			out = append(out, bus)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].EstimatedArrival < out[j].EstimatedArrival
	})
	return out, nil
}

// Tick advances the simulation one step: every arrival estimate drops by a
// minute and re-rolls to 5-19 minutes at zero.
func (s *LiveService) Tick() []models.LiveBus {
	s.mu.Lock()
	for i := range s.buses {
		s.buses[i].EstimatedArrival--
		if s.buses[i].EstimatedArrival <= 0 {
			s.buses[i].EstimatedArrival = s.rng.Intn(15) + 5
		}
	}
	out := make([]models.LiveBus, len(s.buses))
	copy(out, s.buses)
	s.mu.Unlock()

	s.broadcast(out)
	return out
}

// Run drives the decay ticker until ctx is done. Independent of the ticket
// expiry sweep; no ordering between the two is guaranteed or needed.
func (s *LiveService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Subscribe registers a feed of position updates. The returned cancel func
// must be called when the consumer goes away.
func (s *LiveService) Subscribe() (<-chan []models.LiveBus, func()) {
	ch := make(chan []models.LiveBus, 4)
	s.subMu.Lock()
	s.subs[ch] = struct{}{}
	s.subMu.Unlock()

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if _, ok := s.subs[ch]; ok {
			delete(s.subs, ch)
			close(ch)
		}
	}
	return ch, cancel
}

// Slow subscribers miss updates rather than stalling the ticker.
func (s *LiveService) broadcast(buses []models.LiveBus) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for ch := range s.subs {
		select {
		case ch <- buses:
		default:
		}
	}
}
