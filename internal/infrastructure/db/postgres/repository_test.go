package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bancaplus/backoffice/internal/core/domain"
)

// --- stubs ---

type stubRow struct {
	values []any
	err    error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return fmt.Errorf("scan: want %d targets, got %d", len(r.values), len(dest))
	}
	for i, d := range dest {
		switch target := d.(type) {
		case *int64:
			*target = r.values[i].(int64)
		case *bool:
			*target = r.values[i].(bool)
		case **int:
			if r.values[i] == nil {
				*target = nil
				continue
			}
			v := r.values[i].(int)
			*target = &v
		default:
			return fmt.Errorf("scan: unsupported target %T", d)
		}
	}
	return nil
}

type stubQuerier struct {
	row     stubRow
	tag     pgconn.CommandTag
	execErr error

	lastSQL  string
	lastArgs []any
}

func (q *stubQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.lastSQL = sql
	q.lastArgs = args
	return q.row
}

func (q *stubQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.lastSQL = sql
	q.lastArgs = args
	return q.tag, q.execErr
}

// --- AccountRepository ---

func TestAccountRepository_FindByExternalID(t *testing.T) {
	q := &stubQuerier{row: stubRow{values: []any{int64(7), 2}}}
	repo := &AccountRepository{db: q}

	account, err := repo.FindByExternalID(context.Background(), "ext-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.ID != 7 || account.ExternalID != "ext-7" || account.Role != domain.RoleBanker {
		t.Errorf("unexpected account: %+v", account)
	}
	if len(q.lastArgs) != 1 || q.lastArgs[0] != "ext-7" {
		t.Errorf("expected external id as the only argument, got %v", q.lastArgs)
	}
}

func TestAccountRepository_NullRole(t *testing.T) {
	repo := &AccountRepository{db: &stubQuerier{row: stubRow{values: []any{int64(8), nil}}}}

	account, err := repo.FindByExternalID(context.Background(), "ext-8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !account.Role.IsZero() {
		t.Errorf("expected zero role, got %s", account.Role)
	}
}

func TestAccountRepository_NotFound(t *testing.T) {
	repo := &AccountRepository{db: &stubQuerier{row: stubRow{err: pgx.ErrNoRows}}}

	_, err := repo.FindByExternalID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountRepository_QueryFailure(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &AccountRepository{db: &stubQuerier{row: stubRow{err: boom}}}

	_, err := repo.FindByExternalID(context.Background(), "ext-1")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
	if errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatal("driver failure must not be reported as not found")
	}
}

func TestAccountRepository_UnknownRoleID(t *testing.T) {
	repo := &AccountRepository{db: &stubQuerier{row: stubRow{values: []any{int64(9), 42}}}}

	_, err := repo.FindByExternalID(context.Background(), "ext-9")
	if !errors.Is(err, domain.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

// --- GrantRepository ---

func TestGrantRepository_HasGrant(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
	}{
		{"granted", true},
		{"absent", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := &stubQuerier{row: stubRow{values: []any{tc.exists}}}
			repo := &GrantRepository{db: q}

			ok, err := repo.HasGrant(context.Background(), domain.RoleManager, domain.CapCreateSeller)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.exists {
				t.Errorf("expected %v, got %v", tc.exists, ok)
			}
			if q.lastArgs[0] != domain.RoleManager.ID() || q.lastArgs[1] != "CREATE_SELLER" {
				t.Errorf("unexpected arguments: %v", q.lastArgs)
			}
		})
	}
}

func TestGrantRepository_Failure(t *testing.T) {
	repo := &GrantRepository{db: &stubQuerier{row: stubRow{err: errors.New("timeout")}}}

	if _, err := repo.HasGrant(context.Background(), domain.RoleSeller, domain.CapCreateTicket); err == nil {
		t.Fatal("expected error")
	}
}

// --- ErrorRecordRepository ---

func TestErrorRecordRepository_Insert(t *testing.T) {
	q := &stubQuerier{row: stubRow{values: []any{int64(55)}}}
	repo := &ErrorRecordRepository{db: q}

	record := &domain.ErrorRecord{
		Message:   "boom",
		Stack:     "goroutine 1",
		URL:       "/v1/banks",
		Status:    domain.ErrorStatusOpened,
		Body:      `{"name":"x"}`,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := repo.Insert(context.Background(), record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.ID != "55" {
		t.Errorf("expected id 55, got %q", record.ID)
	}
	if q.lastArgs[3] != "OPENED" {
		t.Errorf("expected status OPENED, got %v", q.lastArgs[3])
	}
}

func TestErrorRecordRepository_InsertFailure(t *testing.T) {
	repo := &ErrorRecordRepository{db: &stubQuerier{row: stubRow{err: errors.New("disk full")}}}

	record := &domain.ErrorRecord{Message: "boom", Status: domain.ErrorStatusOpened}
	if err := repo.Insert(context.Background(), record); err == nil {
		t.Fatal("expected error")
	}
	if record.ID != "" {
		t.Errorf("id must stay empty on failure, got %q", record.ID)
	}
}

// --- BankRepository ---

func TestBankRepository_Create(t *testing.T) {
	repo := &BankRepository{db: &stubQuerier{row: stubRow{values: []any{int64(3)}}}}

	bank, err := repo.Create(context.Background(), &domain.Bank{Name: "Norte", Code: "NRT", OwnerID: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bank.ID != "3" || bank.Code != "NRT" {
		t.Errorf("unexpected bank: %+v", bank)
	}
}

func TestBankRepository_CreateDuplicate(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	repo := &BankRepository{db: &stubQuerier{row: stubRow{err: dup}}}

	_, err := repo.Create(context.Background(), &domain.Bank{Name: "Norte", Code: "NRT"})
	if !errors.Is(err, domain.ErrBankExists) {
		t.Fatalf("expected ErrBankExists, got %v", err)
	}
}

func TestBankRepository_Delete(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		tag     string
		wantErr error
	}{
		{"deleted", "3", "DELETE 1", nil},
		{"missing row", "4", "DELETE 0", domain.ErrBankNotFound},
		{"non numeric id", "abc", "DELETE 1", domain.ErrBankNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &BankRepository{db: &stubQuerier{tag: pgconn.NewCommandTag(tc.tag)}}

			err := repo.Delete(context.Background(), tc.id)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestBankRepository_DeleteFailure(t *testing.T) {
	boom := errors.New("connection refused")
	repo := &BankRepository{db: &stubQuerier{execErr: boom}}

	if err := repo.Delete(context.Background(), "3"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
