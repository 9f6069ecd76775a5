package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dulceria/sweetshop-api/internal/domain/entity"
	"github.com/dulceria/sweetshop-api/internal/domain/repository"
)

var _ repository.SweetRepository = (*SweetRepo)(nil)

const sweetColumns = "id, name, category, price, quantity, created_at, updated_at"

// SweetRepo implementación del puerto SweetRepository sobre PostgreSQL.
type SweetRepo struct {
	pool *pgxpool.Pool
}

// NewSweetRepository construye el adaptador de persistencia para dulces.
func NewSweetRepository(pool *pgxpool.Pool) *SweetRepo {
	return &SweetRepo{pool: pool}
}

// Create persiste un nuevo dulce y asigna el ID generado.
func (r *SweetRepo) Create(sweet *entity.Sweet) error {
	query := `
		INSERT INTO sweets (name, category, price, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		sweet.Name, sweet.Category, sweet.Price, sweet.Quantity, sweet.CreatedAt, sweet.UpdatedAt,
	).Scan(&sweet.ID)
	if err != nil {
		return fmt.Errorf("insert sweet: %w", err)
	}
	return nil
}

// GetByID obtiene un dulce por ID. Devuelve (nil, nil) si no existe.
func (r *SweetRepo) GetByID(id int64) (*entity.Sweet, error) {
	query := `SELECT ` + sweetColumns + ` FROM sweets WHERE id = $1`
	var s entity.Sweet
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sweet: %w", err)
	}
	return &s, nil
}

// List devuelve todos los dulces en el orden nativo del store.
func (r *SweetRepo) List() ([]*entity.Sweet, error) {
	rows, err := r.pool.Query(context.Background(), `SELECT `+sweetColumns+` FROM sweets`)
	if err != nil {
		return nil, fmt.Errorf("list sweets: %w", err)
	}
	defer rows.Close()
	return scanSweets(rows)
}

// Search aplica los filtros presentes combinados con AND; sin filtros devuelve todo.
func (r *SweetRepo) Search(filter repository.SweetFilter) ([]*entity.Sweet, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("LOWER(category) = LOWER($%d)", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}

	query := `SELECT ` + sweetColumns + ` FROM sweets`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search sweets: %w", err)
	}
	defer rows.Close()
	return scanSweets(rows)
}

// Update reemplaza los campos del dulce. Devuelve (nil, nil) si el id no existe.
func (r *SweetRepo) Update(sweet *entity.Sweet) (*entity.Sweet, error) {
	query := `
		UPDATE sweets SET name = $2, category = $3, price = $4, quantity = $5, updated_at = $6
		WHERE id = $1
		RETURNING ` + sweetColumns
	var s entity.Sweet
	err := r.pool.QueryRow(context.Background(), query,
		sweet.ID, sweet.Name, sweet.Category, sweet.Price, sweet.Quantity, sweet.UpdatedAt,
	).Scan(&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update sweet: %w", err)
	}
	return &s, nil
}

// Delete elimina un dulce por ID. Devuelve false si ninguna fila fue eliminada.
func (r *SweetRepo) Delete(id int64) (bool, error) {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM sweets WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete sweet: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DecrementQuantity resta qty solo si hay stock suficiente, en una única
// sentencia condicional: la atomicidad a nivel de fila del store es la única
// garantía frente a compras concurrentes. Devuelve (nil, nil) si ninguna fila
// fue afectada.
func (r *SweetRepo) DecrementQuantity(id int64, qty int64) (*entity.Sweet, error) {
	query := `
		UPDATE sweets SET quantity = quantity - $2, updated_at = now()
		WHERE id = $1 AND quantity >= $2
		RETURNING ` + sweetColumns
	var s entity.Sweet
	err := r.pool.QueryRow(context.Background(), query, id, qty).Scan(
		&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("decrement sweet quantity: %w", err)
	}
	return &s, nil
}

// IncrementQuantity suma qty de forma incondicional. Devuelve (nil, nil) si el id no existe.
func (r *SweetRepo) IncrementQuantity(id int64, qty int64) (*entity.Sweet, error) {
	query := `
		UPDATE sweets SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + sweetColumns
	var s entity.Sweet
	err := r.pool.QueryRow(context.Background(), query, id, qty).Scan(
		&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("increment sweet quantity: %w", err)
	}
	return &s, nil
}

func scanSweets(rows pgx.Rows) ([]*entity.Sweet, error) {
	var list []*entity.Sweet
	for rows.Next() {
		var s entity.Sweet
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sweet: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
