package customer

// Customer is a named account identified by an operator-assigned id.
type Customer struct {
	ID    int
	Name  string
	Email string
}
