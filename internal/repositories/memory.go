package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sbilibin2017/inventory-tracker/internal/models"
)

// MemoryStore is an in-process alternative to the PostgreSQL repositories,
// selected at startup via STORAGE_DRIVER=memory. Tables are mutex-guarded
// maps iterated in sorted key order so listings are deterministic. The
// per-entity repositories below share one store so the cascade delete stays
// atomic under the single lock.
type MemoryStore struct {
	mu       sync.RWMutex
	nextID   int64
	accounts map[string]*models.AccountDB          // keyed by name
	products map[string]models.ProductDB           // keyed by product_sn
	rentals  map[string]map[string]models.RentalDB // keyed by product_sn, then start_date
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:   1,
		accounts: make(map[string]*models.AccountDB),
		products: make(map[string]models.ProductDB),
		rentals:  make(map[string]map[string]models.RentalDB),
	}
}

// MemoryUserRepository implements the account reader and writer contracts.
type MemoryUserRepository struct {
	s *MemoryStore
}

func NewMemoryUserRepository(s *MemoryStore) *MemoryUserRepository {
	return &MemoryUserRepository{s: s}
}

func (r *MemoryUserRepository) GetByName(ctx context.Context, name string) (*models.AccountDB, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	account, ok := r.s.accounts[name]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

func (r *MemoryUserRepository) Save(ctx context.Context, name, passwordHash string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.accounts[name]; ok {
		return 0, fmt.Errorf("duplicate key value: accounts.name %q", name)
	}

	id := r.s.nextID
	r.s.nextID++
	r.s.accounts[name] = &models.AccountDB{
		ID:           id,
		Name:         name,
		PasswordHash: passwordHash,
	}
	return id, nil
}

func (r *MemoryUserRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, account := range r.s.accounts {
		if account.ID == id {
			t := at
			account.LastLoginAt = &t
			return nil
		}
	}
	// Zero matched rows, same as the SQL UPDATE.
	return nil
}

// MemoryProductRepository implements the product reader and writer contracts.
type MemoryProductRepository struct {
	s *MemoryStore
}

func NewMemoryProductRepository(s *MemoryStore) *MemoryProductRepository {
	return &MemoryProductRepository{s: s}
}

func (r *MemoryProductRepository) List(ctx context.Context) ([]models.ProductDB, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	keys := make([]string, 0, len(r.s.products))
	for sn := range r.s.products {
		keys = append(keys, sn)
	}
	sort.Strings(keys)

	products := make([]models.ProductDB, 0, len(keys))
	for _, sn := range keys {
		products = append(products, r.s.products[sn])
	}
	return products, nil
}

func (r *MemoryProductRepository) Exists(ctx context.Context, productSN string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.products[productSN]
	return ok, nil
}

func (r *MemoryProductRepository) Save(ctx context.Context, p models.ProductDB) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[p.ProductSN]; ok {
		return fmt.Errorf("duplicate key value: products.product_sn %q", p.ProductSN)
	}
	r.s.products[p.ProductSN] = p
	return nil
}

func (r *MemoryProductRepository) Update(ctx context.Context, productSN string, p models.ProductDB) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[productSN]; !ok {
		// Zero matched rows, same as the SQL UPDATE.
		return nil
	}
	p.ProductSN = productSN
	r.s.products[productSN] = p
	return nil
}

func (r *MemoryProductRepository) DeleteCascade(ctx context.Context, productSN string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.products, productSN)
	delete(r.s.rentals, productSN)
	return nil
}

// MemoryRentalRepository implements the rental reader and writer contracts.
type MemoryRentalRepository struct {
	s *MemoryStore
}

func NewMemoryRentalRepository(s *MemoryStore) *MemoryRentalRepository {
	return &MemoryRentalRepository{s: s}
}

func (r *MemoryRentalRepository) ListByProduct(ctx context.Context, productSN string) ([]models.RentalDB, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	table := r.s.rentals[productSN]
	keys := make([]string, 0, len(table))
	for startDate := range table {
		keys = append(keys, startDate)
	}
	sort.Strings(keys)

	rentals := make([]models.RentalDB, 0, len(keys))
	for _, startDate := range keys {
		rentals = append(rentals, table[startDate])
	}
	return rentals, nil
}

func (r *MemoryRentalRepository) Save(ctx context.Context, rental models.RentalDB) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	table, ok := r.s.rentals[rental.ProductSN]
	if !ok {
		table = make(map[string]models.RentalDB)
		r.s.rentals[rental.ProductSN] = table
	}
	if _, ok := table[rental.StartDate]; ok {
		return fmt.Errorf("duplicate key value: rentals (%q, %q)", rental.ProductSN, rental.StartDate)
	}
	table[rental.StartDate] = rental
	return nil
}

func (r *MemoryRentalRepository) Update(ctx context.Context, productSN, startDate string, rental models.RentalDB) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	table := r.s.rentals[productSN]
	existing, ok := table[startDate]
	if !ok {
		// Zero matched rows, same as the SQL UPDATE.
		return nil
	}

	// Only the mutable attributes move; the key and surrogate ID do not.
	existing.TransactionType = rental.TransactionType
	existing.EndDate = rental.EndDate
	existing.Qty = rental.Qty
	existing.Description = rental.Description
	table[startDate] = existing
	return nil
}

func (r *MemoryRentalRepository) Delete(ctx context.Context, productSN, startDate string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.rentals[productSN], startDate)
	return nil
}
