package decl

import "testing"

func TestStoreNewDoesNotRecord(t *testing.T) {
	s := NewStore(0)
	id := s.New(Decl{Name: "f", Kind: KindFunc, HasBody: true})
	if !id.IsValid() {
		t.Fatalf("expected valid ID")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 allocated decl, got %d", s.Len())
	}
	if s.RecordedLen() != 0 {
		t.Fatalf("allocation must not record, got %d recorded", s.RecordedLen())
	}
}

func TestStoreRecordDeduplicates(t *testing.T) {
	s := NewStore(0)
	id := s.New(Decl{Name: "f", Kind: KindFunc})
	if !s.Record(id) {
		t.Fatalf("first record must append")
	}
	if s.Record(id) {
		t.Fatalf("second record must be a no-op")
	}
	if s.RecordedLen() != 1 {
		t.Fatalf("expected 1 recorded, got %d", s.RecordedLen())
	}
}

func TestStoreRecordSkipsContainerMethods(t *testing.T) {
	s := NewStore(0)
	m := s.New(Decl{Name: "init", Kind: KindMethod, Container: true})
	if s.Record(m) {
		t.Fatalf("container method must not record via the per-decl path")
	}

	s.RecordContainer(m)
	if s.RecordedLen() != 1 {
		t.Fatalf("container path must record, got %d", s.RecordedLen())
	}

	// A second container callback for the same grouping must not double-count.
	s.RecordContainer(m)
	if s.RecordedLen() != 1 {
		t.Fatalf("expected dedup across container callbacks, got %d", s.RecordedLen())
	}
}

func TestStoreRecordOrderIsInsertionOrder(t *testing.T) {
	s := NewStore(0)
	a := s.New(Decl{Name: "a", Kind: KindFunc})
	b := s.New(Decl{Name: "b", Kind: KindFunc})
	c := s.New(Decl{Name: "c", Kind: KindBlock})
	s.Record(b)
	s.Record(a)
	s.Record(c)

	want := []ID{b, a, c}
	for i, id := range want {
		if got := s.RecordedAt(i); got != id {
			t.Fatalf("recorded[%d] = %d, want %d", i, got, id)
		}
	}
	if s.RecordedAt(3) != NoID {
		t.Fatalf("out-of-range access must return NoID")
	}
}

func TestStoreGrowsDuringIndexTraversal(t *testing.T) {
	s := NewStore(0)
	a := s.New(Decl{Name: "a", Kind: KindFunc, HasBody: true})
	b := s.New(Decl{Name: "b", Kind: KindFunc, HasBody: true})
	s.Record(a)

	// Simulate graph construction recording b while iterating.
	var walked []ID
	for i := 0; i < s.RecordedLen(); i++ {
		id := s.RecordedAt(i)
		walked = append(walked, id)
		if id == a {
			s.Record(b)
		}
	}
	if len(walked) != 2 || walked[1] != b {
		t.Fatalf("index traversal must observe late records, walked %v", walked)
	}
}

func TestStoreGetInvalid(t *testing.T) {
	s := NewStore(0)
	if s.Get(NoID) != nil {
		t.Fatalf("NoID must not resolve")
	}
	if s.Get(99) != nil {
		t.Fatalf("out-of-range ID must not resolve")
	}
}
