package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"arenaserver/internal/models"
)

// MemoryStore is an in-memory backend honouring the same uniqueness and
// cascade rules as the GORM repositories. A single lock guards every map so
// that each check-and-insert is atomic. Inventory and equipped relations are
// not tracked; detail lookups report them as empty.
type MemoryStore struct {
	mu         sync.RWMutex
	nextID     uint
	accounts   map[string]models.Account // keyed by userID
	emails     map[string]string         // email -> userID
	characters map[string]models.Character
	items      map[int]models.Item
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts:   make(map[string]models.Account),
		emails:     make(map[string]string),
		characters: make(map[string]models.Character),
		items:      make(map[int]models.Item),
	}
}

// Accounts returns the account repository view of the store.
func (s *MemoryStore) Accounts() AccountRepository { return memoryAccounts{s} }

// Characters returns the character repository view of the store.
func (s *MemoryStore) Characters() CharacterRepository { return memoryCharacters{s} }

// Items returns the item repository view of the store.
func (s *MemoryStore) Items() ItemRepository { return memoryItems{s} }

// id must be called with mu held for writing.
func (s *MemoryStore) id() uint {
	s.nextID++
	return s.nextID
}

type memoryAccounts struct{ s *MemoryStore }

func (r memoryAccounts) Create(_ context.Context, account *models.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.accounts[account.UserID]; ok {
		return fmt.Errorf("failed to create account: %w", &DuplicateKeyError{Constraint: ConstraintAccountUserID})
	}
	if _, ok := r.s.emails[account.Email]; ok {
		return fmt.Errorf("failed to create account: %w", &DuplicateKeyError{Constraint: ConstraintAccountEmail})
	}

	now := time.Now()
	account.ID = r.s.id()
	account.CreatedAt = now
	account.UpdatedAt = now
	r.s.accounts[account.UserID] = *account
	r.s.emails[account.Email] = account.UserID
	return nil
}

func (r memoryAccounts) GetByUserID(_ context.Context, userID string) (*models.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	account, ok := r.s.accounts[userID]
	if !ok {
		return nil, fmt.Errorf("account with userID %s: %w", userID, ErrNotFound)
	}
	return &account, nil
}

func (r memoryAccounts) Delete(_ context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	account, ok := r.s.accounts[userID]
	if !ok {
		return fmt.Errorf("account with userID %s: %w", userID, ErrNotFound)
	}
	for name, character := range r.s.characters {
		if character.UserID == userID {
			delete(r.s.characters, name)
		}
	}
	delete(r.s.emails, account.Email)
	delete(r.s.accounts, userID)
	return nil
}

type memoryCharacters struct{ s *MemoryStore }

func (r memoryCharacters) Create(_ context.Context, character *models.Character) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.characters[character.Name]; ok {
		return fmt.Errorf("failed to create character: %w", &DuplicateKeyError{Constraint: ConstraintCharacterName})
	}

	now := time.Now()
	character.ID = r.s.id()
	character.CreatedAt = now
	character.UpdatedAt = now
	stored := *character
	stored.Inventory, stored.Equipped = nil, nil
	r.s.characters[character.Name] = stored
	return nil
}

func (r memoryCharacters) GetByName(_ context.Context, name string) (*models.Character, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	character, ok := r.s.characters[name]
	if !ok {
		return nil, fmt.Errorf("character with name %s: %w", name, ErrNotFound)
	}
	return &character, nil
}

func (r memoryCharacters) GetDetailByName(ctx context.Context, name string) (*models.Character, error) {
	character, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	character.Inventory = []models.Item{}
	character.Equipped = []models.Item{}
	return character, nil
}

func (r memoryCharacters) Delete(_ context.Context, name string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.characters[name]; !ok {
		return fmt.Errorf("character with name %s: %w", name, ErrNotFound)
	}
	delete(r.s.characters, name)
	return nil
}

type memoryItems struct{ s *MemoryStore }

func (r memoryItems) Create(_ context.Context, item *models.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.items[item.Code]; ok {
		return fmt.Errorf("failed to create item: %w", &DuplicateKeyError{Constraint: ConstraintItemCode})
	}

	now := time.Now()
	item.ID = r.s.id()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.s.items[item.Code] = *item
	return nil
}

func (r memoryItems) GetByCode(_ context.Context, code int) (*models.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	item, ok := r.s.items[code]
	if !ok {
		return nil, fmt.Errorf("item with code %d: %w", code, ErrNotFound)
	}
	return &item, nil
}

func (r memoryItems) Update(_ context.Context, item *models.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.items[item.Code]; !ok {
		return fmt.Errorf("item with code %d: %w", item.Code, ErrNotFound)
	}
	item.UpdatedAt = time.Now()
	r.s.items[item.Code] = *item
	return nil
}

func (r memoryItems) Delete(_ context.Context, code int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.items[code]; !ok {
		return fmt.Errorf("item with code %d: %w", code, ErrNotFound)
	}
	delete(r.s.items, code)
	return nil
}
