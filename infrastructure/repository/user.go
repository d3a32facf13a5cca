package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	usersTable = "users"

	uniqueViolationCode = "23505"
)

var userColumns = []string{"id", "telegram_id", "username", "first_name", "created_at", "is_demo"}

type UserRepository interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type userRepository struct {
	conn postgres.Conn
}

func NewUserRepository(conn postgres.Conn) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

// GetByTelegramID retorna nil quando o usuário não existe
func (r *userRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	query, args, err := userByTelegramIDQuery(telegramID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	user, err := scanUser(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar usuário %d: %w", telegramID, err)
	}

	return user, nil
}

// Create insere o usuário; se outro request criou o mesmo telegram_id antes, devolve o existente
func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query, args, err := squirrel.
		Insert(usersTable).
		Columns("telegram_id", "username", "first_name", "is_demo").
		Values(user.TelegramID, user.Username, user.FirstName, user.IsDemo).
		Suffix("ON CONFLICT (telegram_id) DO NOTHING RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r.existingAfterConflict(ctx, user.TelegramID)
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return r.existingAfterConflict(ctx, user.TelegramID)
		}
		return nil, fmt.Errorf("erro ao criar usuário: %w", err)
	}

	return user, nil
}

// existingAfterConflict busca o usuário que venceu o conflito; ausente aqui é erro, nunca (nil, nil)
func (r *userRepository) existingAfterConflict(ctx context.Context, telegramID int64) (*domain.User, error) {
	existing, err := r.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("usuário %d não encontrado após conflito na criação", telegramID)
	}

	return existing, nil
}

func userByTelegramIDQuery(telegramID int64) squirrel.SelectBuilder {
	return squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(squirrel.Eq{"telegram_id": telegramID}).
		PlaceholderFormat(squirrel.Dollar)
}

func scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}
	var username, firstName sql.NullString

	err := row.Scan(
		&user.ID,
		&user.TelegramID,
		&username,
		&firstName,
		&user.CreatedAt,
		&user.IsDemo,
	)
	if err != nil {
		return nil, err
	}

	if username.Valid {
		user.Username = &username.String
	}
	if firstName.Valid {
		user.FirstName = &firstName.String
	}

	return user, nil
}
