// File: internal/services/fakes_test.go
package services

import (
	"context"
	"sort"
	"time"

	"github.com/dcastano/go-shopchat/internal/domain"
)

// fakeChatRepo is an in-memory transcript store mirroring the gorm
// adapter's contract.
type fakeChatRepo struct {
	messages  []domain.ChatMessage
	nextID    uint
	appendErr error
	readErr   error
	purgeErr  error
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{nextID: 1}
}

func (f *fakeChatRepo) Append(_ context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error) {
	if f.appendErr != nil {
		return nil, f.appendErr
	}
	if err := message.Validate(); err != nil {
		return nil, err
	}
	message.ID = f.nextID
	f.nextID++
	f.messages = append(f.messages, *message)
	return message, nil
}

func (f *fakeChatRepo) sessionMessages(sessionID string) []domain.ChatMessage {
	var out []domain.ChatMessage
	for _, m := range f.messages {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out
}

func (f *fakeChatRepo) FindBySession(_ context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	msgs := f.sessionMessages(sessionID)
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[:limit]
	}
	return msgs, nil
}

func (f *fakeChatRepo) FindRecent(_ context.Context, sessionID string, count int) ([]domain.ChatMessage, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	msgs := f.sessionMessages(sessionID)
	if len(msgs) > count {
		msgs = msgs[len(msgs)-count:]
	}
	return msgs, nil
}

func (f *fakeChatRepo) PurgeSession(_ context.Context, sessionID string) (int64, error) {
	if f.purgeErr != nil {
		return 0, f.purgeErr
	}
	var kept []domain.ChatMessage
	var deleted int64
	for _, m := range f.messages {
		if m.SessionID == sessionID {
			deleted++
			continue
		}
		kept = append(kept, m)
	}
	f.messages = kept
	return deleted, nil
}

// fakeProductRepo is an in-memory catalog store.
type fakeProductRepo struct {
	products []domain.Product
	nextID   uint
	failAll  error
}

func newFakeProductRepo(initial ...domain.Product) *fakeProductRepo {
	repo := &fakeProductRepo{nextID: 1}
	for _, p := range initial {
		p.ID = repo.nextID
		repo.nextID++
		repo.products = append(repo.products, p)
	}
	return repo
}

func (f *fakeProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	out := make([]domain.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, productID uint) (*domain.Product, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	for _, p := range f.products {
		if p.ID == productID {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindByBrand(_ context.Context, brand string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.Brand == brand {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindByCategory(_ context.Context, category string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Upsert(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if f.failAll != nil {
		return nil, f.failAll
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	if product.ID == 0 {
		product.ID = f.nextID
		f.nextID++
		f.products = append(f.products, *product)
		return product, nil
	}
	for i, p := range f.products {
		if p.ID == product.ID {
			f.products[i] = *product
			return product, nil
		}
	}
	f.products = append(f.products, *product)
	return product, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, productID uint) (bool, error) {
	for i, p := range f.products {
		if p.ID == productID {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

// fakeGenerator implements ai.ResponseProvider with a programmable reply.
type fakeGenerator struct {
	reply      string
	err        error
	calls      int
	lastPrompt struct {
		userMessage string
		products    []domain.Product
		chatContext *domain.ChatContext
	}
}

func (f *fakeGenerator) GenerateResponse(_ context.Context, userMessage string, products []domain.Product, chatContext *domain.ChatContext) (string, error) {
	f.calls++
	f.lastPrompt.userMessage = userMessage
	f.lastPrompt.products = products
	f.lastPrompt.chatContext = chatContext
	if f.err != nil {
		return "", f.err
	}
	if f.reply != "" {
		return f.reply, nil
	}
	return "AI response to: " + userMessage, nil
}

func sampleCatalog() []domain.Product {
	return []domain.Product{
		{Name: "Nike Air", Brand: "Nike", Category: "Running", Size: "42", Color: "Black", Price: 120.0, Stock: 10, Description: "Running shoes"},
		{Name: "Adidas Ultraboost", Brand: "Adidas", Category: "Running", Size: "43", Color: "White", Price: 150.0, Stock: 5, Description: "Comfortable shoes"},
		{Name: "Puma Suede", Brand: "Puma", Category: "Casual", Size: "41", Color: "Red", Price: 80.0, Stock: 0, Description: "Classic shoes"},
	}
}

// stamp returns deterministic, strictly increasing timestamps for fixtures.
func stamp(minutes int) time.Time {
	return time.Date(2025, 3, 1, 10, minutes, 0, 0, time.UTC)
}
