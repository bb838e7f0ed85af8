package domain

// Snapshot is the full persisted state: one JSON document with three
// top-level arrays. Every mutation reads the whole snapshot, changes an
// in-memory copy, and writes the whole snapshot back. No partial writes.
type Snapshot struct {
	Products []Product `json:"products"`
	Users    []User    `json:"users"`
	Orders   []Order   `json:"orders"`
}

// UserByEmail returns the user with the given email, or nil.
func (s *Snapshot) UserByEmail(email string) *User {
	for i := range s.Users {
		if s.Users[i].Email == email {
			return &s.Users[i]
		}
	}
	return nil
}

// UserByID returns the user with the given id, or nil.
func (s *Snapshot) UserByID(id string) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// ProductByID returns the product with the given id, or nil. The pointer
// aliases the snapshot's backing array so callers can mutate in place during
// a store update.
func (s *Snapshot) ProductByID(id string) *Product {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i]
		}
	}
	return nil
}

// OrderByID returns the order with the given id, or nil.
func (s *Snapshot) OrderByID(id string) *Order {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			return &s.Orders[i]
		}
	}
	return nil
}
