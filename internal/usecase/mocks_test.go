package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"birthday-botique/internal/domain"
	"birthday-botique/internal/domain/model"
	"birthday-botique/internal/domain/ports/repository"

	"github.com/jackc/pgx/v4"
	"github.com/rs/zerolog"
)

func newTestLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// MockUserRepo is an in-memory UserRepository. Each method can be overridden
// via its function field; by default it behaves like a real store.
type MockUserRepo struct {
	mu   sync.Mutex
	byID map[int64]*model.User

	SaveFunc           func(ctx context.Context, tx repository.Tx, u *model.User) error
	FindByChatIDFunc   func(ctx context.Context, tx repository.Tx, chatID int64) (*model.User, error)
	DeleteFunc         func(ctx context.Context, tx repository.Tx, chatID int64) error
	ListAllFunc        func(ctx context.Context, tx repository.Tx) ([]*model.User, error)
	FindByMonthDayFunc func(ctx context.Context, tx repository.Tx, month time.Month, day int) ([]*model.User, error)
}

func NewMockUserRepo() *MockUserRepo {
	return &MockUserRepo{byID: map[int64]*model.User{}}
}

func (m *MockUserRepo) Save(ctx context.Context, tx repository.Tx, u *model.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, tx, u)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *u
	m.byID[u.ChatID] = &cp
	return nil
}

func (m *MockUserRepo) FindByChatID(ctx context.Context, tx repository.Tx, chatID int64) (*model.User, error) {
	if m.FindByChatIDFunc != nil {
		return m.FindByChatIDFunc(ctx, tx, chatID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[chatID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *MockUserRepo) Delete(ctx context.Context, tx repository.Tx, chatID int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, chatID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, chatID)
	return nil
}

func (m *MockUserRepo) ListAll(ctx context.Context, tx repository.Tx) ([]*model.User, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, tx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var users []*model.User
	for _, u := range m.byID {
		cp := *u
		users = append(users, &cp)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ChatID < users[j].ChatID })
	return users, nil
}

func (m *MockUserRepo) FindByMonthDay(ctx context.Context, tx repository.Tx, month time.Month, day int) ([]*model.User, error) {
	if m.FindByMonthDayFunc != nil {
		return m.FindByMonthDayFunc(ctx, tx, month, day)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var users []*model.User
	for _, u := range m.byID {
		if u.DateOfBirth.Month() == month && u.DateOfBirth.Day() == day {
			cp := *u
			users = append(users, &cp)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ChatID < users[j].ChatID })
	return users, nil
}

// MockActivityLogRepo records appended entries for assertions.
type MockActivityLogRepo struct {
	mu         sync.Mutex
	Entries    []*model.ActivityLog
	AppendFunc func(ctx context.Context, tx repository.Tx, entry *model.ActivityLog) error
}

func NewMockActivityLogRepo() *MockActivityLogRepo { return &MockActivityLogRepo{} }

func (m *MockActivityLogRepo) Append(ctx context.Context, tx repository.Tx, entry *model.ActivityLog) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, entry)
	return nil
}

func (m *MockActivityLogRepo) Actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	actions := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		actions = append(actions, e.Action)
	}
	return actions
}

// MockTxManager runs the callback directly without a real transaction.
type MockTxManager struct{}

func NewMockTxManager() *MockTxManager { return &MockTxManager{} }

func (m *MockTxManager) WithTx(ctx context.Context, _ pgx.TxOptions, fn func(ctx context.Context, tx repository.Tx) error) error {
	return fn(ctx, repository.NoTX)
}

// MockMessenger records outbound sends and can simulate per-chat failures.
type MockMessenger struct {
	mu       sync.Mutex
	Sent     map[int64][]string
	SendFunc func(ctx context.Context, chatID int64, text string) error
}

func NewMockMessenger() *MockMessenger {
	return &MockMessenger{Sent: map[int64][]string{}}
}

func (m *MockMessenger) SendMessage(ctx context.Context, chatID int64, text string) error {
	if m.SendFunc != nil {
		if err := m.SendFunc(ctx, chatID, text); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent[chatID] = append(m.Sent[chatID], text)
	return nil
}
