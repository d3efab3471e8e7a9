package model

// Scope carries the authenticated identity a request acts on behalf of.
// Every repository operation is confined to this user's documents.
type Scope struct {
	UserID string
	Email  string
}
