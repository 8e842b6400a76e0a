package gateway

import (
	"context"
	"fmt"
	"net/http"
)

// Resource is a typed handle on one plain CRUD collection of the
// remote API (users, medicines, feedback, contact messages,
// rare-medicine requests). The generic panels drive their screens
// through these three operations.
type Resource[T any] struct {
	g    *Gateway
	name string
	base string
}

func NewResource[T any](g *Gateway, name, base string) *Resource[T] {
	return &Resource[T]{g: g, name: name, base: base}
}

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.g.get(ctx, "list "+r.name, r.base, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Resource[T]) Update(ctx context.Context, id int64, value T) error {
	path := fmt.Sprintf("%s/%d", r.base, id)
	return r.g.write(ctx, "update "+r.name, http.MethodPut, path, value)
}

func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("%s/%d", r.base, id)
	return r.g.write(ctx, "delete "+r.name, http.MethodDelete, path, nil)
}
