package racha

// Racha is one tenant: a recurring pickup-soccer group.
type Racha struct {
	ID        string
	Slug      string
	Name      string
	City      string
	IsDefault bool
}
