// Package identity generates synthetic user records. Generation is
// deterministic: the same options and offset always yield the same record.
package identity

// User is one generated record. It is never mutated after generation.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}
