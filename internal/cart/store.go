package cart

import (
	"context"
	"fmt"
	"sync"

	"shopora/internal/backend"
	"shopora/internal/logger"

	"go.uber.org/zap"
)

// Backend is the slice of the storefront backend the cart store depends on.
type Backend interface {
	FetchCart(ctx context.Context, userID string) ([]backend.CartItem, error)
	ListProducts(ctx context.Context) ([]backend.Product, error)
	AddCartItem(ctx context.Context, req backend.AddCartItemRequest) (*backend.CartItem, error)
	DeleteCartItem(ctx context.Context, cartItemID string) error
}

// Store is the authoritative local view of one user's cart, kept in sync
// with the backend cart resource. It is session-scoped: one store per user.
type Store struct {
	userID  string
	backend Backend

	mu      sync.Mutex
	lines   []Line
	catalog map[string]backend.Product
}

func NewStore(userID string, b Backend) *Store {
	return &Store{
		userID:  userID,
		backend: b,
		catalog: make(map[string]backend.Product),
	}
}

func (s *Store) UserID() string {
	return s.userID
}

// Lines returns a copy of the current local state.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Load fetches the remote cart and resolves every line's product snapshot
// against the catalog. Prior local state is left untouched if either remote
// call fails.
func (s *Store) Load(ctx context.Context) ([]Line, error) {
	items, err := s.backend.FetchCart(ctx, s.userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedFetchCart, err)
	}

	products, err := s.backend.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedFetchCatalog, err)
	}

	catalog := make(map[string]backend.Product, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}

	lines := make([]Line, 0, len(items))
	for _, item := range items {
		line := Line{
			ID:        item.ID,
			UserID:    item.UserID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		if p, ok := catalog[item.ProductID]; ok {
			line.Product = &Snapshot{
				Name:      p.Name,
				UnitPrice: p.Price,
				Image:     p.Image,
				Stock:     p.Stock,
			}
		} else {
			logger.WithLayer(ctx, "cart").Warn("cart line references unknown product",
				zap.String("cart_line_id", item.ID),
				zap.String("product_id", item.ProductID),
			)
		}
		lines = append(lines, line)
	}

	s.mu.Lock()
	s.lines = lines
	s.catalog = catalog
	s.mu.Unlock()

	return lines, nil
}

// Add asks the backend to add or increment the product line and merges the
// acknowledged line into local state. Local state is unchanged on failure.
func (s *Store) Add(ctx context.Context, productID string, quantity int) (*Line, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.backend.AddCartItem(ctx, backend.AddCartItemRequest{
		UserID:    s.userID,
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedAddLine, err)
	}

	// Delta as acknowledged by the backend; requested quantity otherwise.
	delta := item.Quantity
	if delta < 1 {
		delta = quantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity += delta
			line := s.lines[i]
			return &line, nil
		}
	}

	line := Line{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
		Quantity:  delta,
	}
	if p, ok := s.catalog[productID]; ok {
		line.Product = &Snapshot{
			Name:      p.Name,
			UnitPrice: p.Price,
			Image:     p.Image,
			Stock:     p.Stock,
		}
	}
	s.lines = append(s.lines, line)

	return &line, nil
}

// Remove deletes the remote line first and drops it from local state only
// after the backend confirms. Removing before confirmation would lose the
// line on a transient failure.
func (s *Store) Remove(ctx context.Context, lineID string) error {
	s.mu.Lock()
	idx := -1
	for i := range s.lines {
		if s.lines[i].ID == lineID {
			idx = i
			break
		}
	}
	s.mu.Unlock()

	if idx < 0 {
		return ErrLineNotFound
	}

	if err := s.backend.DeleteCartItem(ctx, lineID); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedRemoveLine, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ID == lineID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	return nil
}

// Clear empties local state. Used only after a fully successful checkout;
// the created order supersedes the cart, no per-line backend deletes.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}
