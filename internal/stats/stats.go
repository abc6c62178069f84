package stats

import "sync"

// Record holds a player's cumulative counters. Records are created lazily
// on the first referencing event and survive disconnects.
type Record struct {
	ShotsFired  int
	ShotsHit    int
	GamesPlayed int
	TotalScore  int
}

type Store struct {
	mu      sync.Mutex
	records map[string]*Record
}

func NewStore() *Store {
	return &Store{
		records: make(map[string]*Record),
	}
}

func (s *Store) ensure(playerID string) *Record {
	rec, ok := s.records[playerID]
	if !ok {
		rec = &Record{}
		s.records[playerID] = rec
	}
	return rec
}

// AddShot counts one fired shot, and one hit when hit is true. Returns the
// updated counters.
func (s *Store) AddShot(playerID string, hit bool) Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.ensure(playerID)
	rec.ShotsFired++
	if hit {
		rec.ShotsHit++
	}
	return *rec
}

// RecordGame counts one completed game and adds its final score.
func (s *Store) RecordGame(playerID string, finalScore int) Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.ensure(playerID)
	rec.GamesPlayed++
	rec.TotalScore += finalScore
	return *rec
}

func (s *Store) Get(playerID string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[playerID]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// Accuracy is hits over shots fired, 0 before the first shot.
func (s *Store) Accuracy(playerID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[playerID]
	if !ok || rec.ShotsFired == 0 {
		return 0
	}
	return float64(rec.ShotsHit) / float64(rec.ShotsFired)
}
