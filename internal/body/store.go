package body

// Store keys bodies by id and iterates them in insertion order, so a
// field steps its bodies in a stable, reproducible sequence.
type Store struct {
	order []uint32
	byID  map[uint32]*Body
	maxID uint32
}

func NewStore() *Store {
	return &Store{byID: make(map[uint32]*Body)}
}

// Insert adds a body. It rejects ids already present and bodies with
// non-positive mass, leaving the store unchanged.
func (s *Store) Insert(b Body) error {
	if b.Mass <= 0 {
		return ErrNonPositiveMass
	}
	if _, ok := s.byID[b.ID]; ok {
		return ErrDuplicateID
	}
	s.order = append(s.order, b.ID)
	s.byID[b.ID] = &b
	if b.ID > s.maxID {
		s.maxID = b.ID
	}
	return nil
}

// Get returns the stored body for id. The pointer aliases store state;
// callers may mutate it in place.
func (s *Store) Get(id uint32) (*Body, error) {
	b, ok := s.byID[id]
	if !ok {
		return nil, ErrUnknownBody
	}
	return b, nil
}

// Each visits every body in insertion order.
func (s *Store) Each(fn func(*Body)) {
	for _, id := range s.order {
		fn(s.byID[id])
	}
}

func (s *Store) Len() int {
	return len(s.order)
}

// MaxID returns the largest id inserted so far. ok is false while the
// store is empty.
func (s *Store) MaxID() (uint32, bool) {
	if len(s.order) == 0 {
		return 0, false
	}
	return s.maxID, true
}
