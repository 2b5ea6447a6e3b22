// Package todo holds the todo entity and the immutable query filter used to
// build todo collection URLs.
package todo

// Todo is a backend-owned todo record. The service only transports
// instances; the backend assigns ID on creation.
type Todo struct {
	ID       string
	Owner    string
	Status   bool
	Body     string
	Category string
}

// StatusLabel renders Status for display in CLI tables and the detail view.
// The backend query API uses status=true|false, never these labels.
func (t *Todo) StatusLabel() string {
	if t.Status {
		return "complete"
	}
	return "incomplete"
}
