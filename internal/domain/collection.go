package domain

// Collection is the envelope every input dataset is stored in. Results is a
// pointer so a missing "results" key can be told apart from an empty list.
type Collection[T any] struct {
	Results *[]T `json:"results"`
}

func (c Collection[T]) Items() []T {
	if c.Results == nil {
		return nil
	}

	return *c.Results
}

func NewCollection[T any](items []T) Collection[T] {
	if items == nil {
		items = []T{}
	}

	return Collection[T]{Results: &items}
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
