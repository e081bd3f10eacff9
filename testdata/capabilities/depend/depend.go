package depend

type Saver interface {
	Save(string)
}

type Store struct{}

func (s *Store) Save(string) {}

// Service builds on the concrete Store and should be flagged.
type Service struct {
	store *Store
	name  string
}

func (s *Service) Do() { s.store.Save(s.name) }

// Record has no behavior of its own, so its Store field is data.
type Record struct {
	Store Store
}

type Injected struct {
	saver Saver
}

func (i *Injected) Do() { i.saver.Save("x") }

type Composite struct {
	Store
}

func (c *Composite) Do() { c.Save("x") }
