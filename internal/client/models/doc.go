// Package models defines the records exchanged with the SME Mentor REST
// backend. Records are passed through as the backend sends them; the only
// client-side rules are display defaults for optional fields.
package models
