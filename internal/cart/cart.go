// Package cart maintains the customer's cart in durable storage. Every
// operation is a read-modify-write cycle against the single stored
// blob; nothing in memory is authoritative between calls.
package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Harshchoudhary07/Greenly/internal/config"
	"github.com/Harshchoudhary07/Greenly/internal/domain"
	"github.com/Harshchoudhary07/Greenly/internal/storage"
)

const schemaVersion = 1

var (
	// ErrCapacityExceeded means the add would push the total quantity
	// over the configured maximum. Stored state is left untouched.
	ErrCapacityExceeded = errors.New("cart is full")

	// ErrInvalidQuantity rejects add calls with quantity below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Summary is the payload delivered to change subscribers after every
// successful mutation.
type Summary struct {
	ItemCount   int
	Total       float64
	VendorCount int
	DeliveryFee float64
	GrandTotal  float64
}

// Store exposes the cart operations. UI layers subscribe for change
// notifications instead of the store calling into rendering directly.
type Store struct {
	store       storage.Store
	maxItems    int
	deliveryFee float64
	log         *zap.Logger

	mu   sync.Mutex
	subs []func(Summary)
}

func NewStore(store storage.Store, cfg config.Config, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		store:       store,
		maxItems:    cfg.MaxCartItems,
		deliveryFee: cfg.DeliveryFeePerVendor,
		log:         log,
	}
}

// Subscribe registers a change listener. Listeners run synchronously
// after each successful mutation, in registration order.
func (s *Store) Subscribe(fn func(Summary)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Add merges the product into the cart: an existing line gets its
// quantity incremented, otherwise a new line snapshots the product's
// current fields. Fails with ErrCapacityExceeded before anything is
// written if the resulting total quantity would exceed the maximum.
func (s *Store) Add(product domain.Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	cart, err := s.load()
	if err != nil {
		return err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == product.ID {
			cart.Items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID:  product.ID,
			Name:       product.Name,
			Price:      product.Price,
			Unit:       product.Unit,
			Image:      product.Image,
			VendorID:   product.VendorID,
			VendorName: product.VendorName,
			Quantity:   quantity,
			AddedAt:    time.Now().UTC(),
		})
	}

	total := 0
	for _, item := range cart.Items {
		total += item.Quantity
	}
	if total > s.maxItems {
		return ErrCapacityExceeded
	}

	return s.save(cart)
}

// Remove deletes the matching line. Absent product is a no-op.
func (s *Store) Remove(productID string) error {
	cart, err := s.load()
	if err != nil {
		return err
	}

	kept := cart.Items[:0]
	removed := false
	for _, item := range cart.Items {
		if item.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return nil
	}

	cart.Items = kept
	return s.save(cart)
}

// SetQuantity overwrites a line's quantity. Zero or negative quantity
// removes the line. Absent product is a no-op.
func (s *Store) SetQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		return s.Remove(productID)
	}

	cart, err := s.load()
	if err != nil {
		return err
	}

	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			return s.save(cart)
		}
	}
	return nil
}

// Clear deletes all items.
func (s *Store) Clear() error {
	if err := s.store.Delete(config.KeyCart); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	s.notify(domain.Cart{})
	return nil
}

// Items returns the current cart lines in insertion order.
func (s *Store) Items() ([]domain.CartItem, error) {
	cart, err := s.load()
	if err != nil {
		return nil, err
	}
	return cart.Items, nil
}

// Total is the sum of price times quantity over all lines.
func (s *Store) Total() (float64, error) {
	cart, err := s.load()
	if err != nil {
		return 0, err
	}
	return cartTotal(cart), nil
}

// ItemCount is the sum of quantities over all lines.
func (s *Store) ItemCount() (int, error) {
	cart, err := s.load()
	if err != nil {
		return 0, err
	}
	return itemCount(cart), nil
}

// GroupByVendor partitions the cart by vendor. Group order follows the
// first occurrence of each vendor; item order within a group follows
// cart order.
func (s *Store) GroupByVendor() ([]domain.VendorGroup, error) {
	cart, err := s.load()
	if err != nil {
		return nil, err
	}
	return groupByVendor(cart), nil
}

// Contains reports whether the product has a line in the cart.
func (s *Store) Contains(productID string) (bool, error) {
	qty, err := s.QuantityOf(productID)
	return qty > 0, err
}

// QuantityOf returns the product's line quantity, 0 when absent.
func (s *Store) QuantityOf(productID string) (int, error) {
	cart, err := s.load()
	if err != nil {
		return 0, err
	}
	for _, item := range cart.Items {
		if item.ProductID == productID {
			return item.Quantity, nil
		}
	}
	return 0, nil
}

// Summary computes the order summary, including the per-vendor
// delivery fee.
func (s *Store) Summary() (Summary, error) {
	cart, err := s.load()
	if err != nil {
		return Summary{}, err
	}
	return s.summarize(cart), nil
}

func (s *Store) load() (domain.Cart, error) {
	data, err := s.store.Get(config.KeyCart)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.Cart{SchemaVersion: schemaVersion}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return domain.Cart{}, fmt.Errorf("decode cart: %w", err)
	}
	return cart, nil
}

func (s *Store) save(cart domain.Cart) error {
	cart.SchemaVersion = schemaVersion
	cart.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := s.store.Set(config.KeyCart, data); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}

	s.notify(cart)
	return nil
}

func (s *Store) notify(cart domain.Cart) {
	summary := s.summarize(cart)

	s.mu.Lock()
	subs := make([]func(Summary), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(summary)
	}
}

func (s *Store) summarize(cart domain.Cart) Summary {
	groups := groupByVendor(cart)
	total := cartTotal(cart)
	fee := float64(len(groups)) * s.deliveryFee
	return Summary{
		ItemCount:   itemCount(cart),
		Total:       total,
		VendorCount: len(groups),
		DeliveryFee: fee,
		GrandTotal:  total + fee,
	}
}

func cartTotal(cart domain.Cart) float64 {
	total := 0.0
	for _, item := range cart.Items {
		total += item.Subtotal()
	}
	return total
}

func itemCount(cart domain.Cart) int {
	count := 0
	for _, item := range cart.Items {
		count += item.Quantity
	}
	return count
}

func groupByVendor(cart domain.Cart) []domain.VendorGroup {
	var groups []domain.VendorGroup
	index := make(map[string]int)

	for _, item := range cart.Items {
		i, ok := index[item.VendorID]
		if !ok {
			i = len(groups)
			index[item.VendorID] = i
			groups = append(groups, domain.VendorGroup{
				VendorID:   item.VendorID,
				VendorName: item.VendorName,
			})
		}
		groups[i].Items = append(groups[i].Items, item)
		groups[i].Total += item.Subtotal()
	}
	return groups
}
