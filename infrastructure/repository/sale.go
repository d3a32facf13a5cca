package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	salesTable = "sales"
)

var saleColumns = []string{"id", "user_id", "product_name", "amount", "quantity", "date", "status"}

type SaleRepository interface {
	ListByUser(ctx context.Context, userID int, limit int) ([]*domain.Sale, error)
	ListCompletedSince(ctx context.Context, userID int, since time.Time) ([]*domain.Sale, error)
	TopProducts(ctx context.Context, userID int, limit int) ([]domain.TopProduct, error)
	ReplaceForUser(ctx context.Context, userID int, sales []*domain.Sale) (int, error)
}

type saleRepository struct {
	conn postgres.Conn
}

func NewSaleRepository(conn postgres.Conn) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// ListByUser lista as vendas mais recentes primeiro; limit <= 0 retorna todas
func (r *saleRepository) ListByUser(ctx context.Context, userID int, limit int) ([]*domain.Sale, error) {
	query, args, err := salesByUserQuery(userID, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySales(ctx, query, args...)
}

func (r *saleRepository) ListCompletedSince(ctx context.Context, userID int, since time.Time) ([]*domain.Sale, error) {
	query, args, err := completedSalesSinceQuery(userID, since).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySales(ctx, query, args...)
}

// TopProducts agrupa as vendas concluídas por produto, da maior para a menor receita
func (r *saleRepository) TopProducts(ctx context.Context, userID int, limit int) ([]domain.TopProduct, error) {
	query, args, err := topProductsQuery(userID, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]domain.TopProduct, 0)
	for rows.Next() {
		var p domain.TopProduct
		if err := rows.Scan(&p.ProductName, &p.TotalAmount, &p.TotalQuantity, &p.SalesCount); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

// ReplaceForUser apaga todas as vendas do usuário e insere as novas na mesma transação
func (r *saleRepository) ReplaceForUser(ctx context.Context, userID int, sales []*domain.Sale) (int, error) {
	deleteSQL, deleteArgs, err := deleteSalesByUserQuery(userID).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var insertSQL string
	var insertArgs []any
	if len(sales) > 0 {
		insertSQL, insertArgs, err = insertSalesQuery(userID, sales).ToSql()
		if err != nil {
			return 0, fmt.Errorf("erro ao construir a query: %w", err)
		}
	}

	inserted := 0
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao apagar vendas antigas: %w", err)
		}

		if insertSQL == "" {
			return nil
		}

		result, err := tx.ExecContext(ctx, insertSQL, insertArgs...)
		if err != nil {
			return fmt.Errorf("erro ao inserir vendas: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
		}
		inserted = int(affected)

		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func (r *saleRepository) querySales(ctx context.Context, query string, args ...any) ([]*domain.Sale, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale := &domain.Sale{}
		var status string
		if err := rows.Scan(
			&sale.ID,
			&sale.UserID,
			&sale.ProductName,
			&sale.Amount,
			&sale.Quantity,
			&sale.Date,
			&status,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sale.Status = domain.SaleStatus(status)
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func salesByUserQuery(userID int, limit int) squirrel.SelectBuilder {
	builder := squirrel.
		Select(saleColumns...).
		From(salesTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder
}

func completedSalesSinceQuery(userID int, since time.Time) squirrel.SelectBuilder {
	return squirrel.
		Select(saleColumns...).
		From(salesTable).
		Where(squirrel.Eq{"user_id": userID, "status": string(domain.SaleStatusCompleted)}).
		Where(squirrel.GtOrEq{"date": since}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func topProductsQuery(userID int, limit int) squirrel.SelectBuilder {
	builder := squirrel.
		Select(
			"product_name",
			"SUM(amount * quantity) AS total_amount",
			"SUM(quantity) AS total_quantity",
			"COUNT(id) AS sales_count",
		).
		From(salesTable).
		Where(squirrel.Eq{"user_id": userID, "status": string(domain.SaleStatusCompleted)}).
		GroupBy("product_name").
		OrderBy("total_amount DESC", "product_name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	return builder
}

func deleteSalesByUserQuery(userID int) squirrel.DeleteBuilder {
	return squirrel.
		Delete(salesTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)
}

func insertSalesQuery(userID int, sales []*domain.Sale) squirrel.InsertBuilder {
	builder := squirrel.
		Insert(salesTable).
		Columns("user_id", "product_name", "amount", "quantity", "date", "status").
		PlaceholderFormat(squirrel.Dollar)

	for _, s := range sales {
		builder = builder.Values(userID, s.ProductName, s.Amount, s.Quantity, s.Date, string(s.Status))
	}

	return builder
}
