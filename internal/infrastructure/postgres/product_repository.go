package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL
// (usable con pool o tx). El desglose por ubicación vive en la columna
// JSONB location_stock; representaciones heterogéneas heredadas se
// normalizan al escanear (entity.LocationStock tolera valores malformados).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, sku, name, category, category_name, supplier, supplier_name,
		stock, min_stock, reserved_stock, available_stock, location, location_stock, price, cost, created_at`

// GetByID obtiene un producto por ID (nil si no existe).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByIDForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción.
func (r *ProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// List lista productos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListAll devuelve el snapshot completo del catálogo (para el motor de
// filtros y las derivaciones del ledger).
func (r *ProductRepo) ListAll() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListCategories devuelve las categorías distintas del catálogo.
func (r *ProductRepo) ListCategories() ([]string, error) {
	query := `SELECT DISTINCT category FROM products WHERE category <> '' ORDER BY category`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// UpdateStockBreakdown persiste el desglose por ubicación tras aplicar un
// delta de traslado.
func (r *ProductRepo) UpdateStockBreakdown(productID string, breakdown entity.LocationStock) error {
	raw, err := json.Marshal(breakdown)
	if err != nil {
		return fmt.Errorf("marshal location_stock: %w", err)
	}
	query := `UPDATE products SET location_stock = $2 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, productID, raw)
	if err != nil {
		return fmt.Errorf("update stock breakdown: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update stock breakdown: producto %s no existe", productID)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *ProductRepo) scanAll(rows pgx.Rows) ([]*entity.Product, error) {
	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var categoryName, supplierName *string
	var rawStock []byte
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Category, &categoryName, &p.Supplier, &supplierName,
		&p.Stock, &p.MinStock, &p.ReservedStock, &p.AvailableStock, &p.Location,
		&rawStock, &p.Price, &p.Cost, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if categoryName != nil {
		p.CategoryName = *categoryName
	}
	if supplierName != nil {
		p.SupplierName = *supplierName
	}
	if len(rawStock) > 0 {
		// UnmarshalJSON de LocationStock degrada entradas malformadas a 0.
		_ = json.Unmarshal(rawStock, &p.LocationStock)
	}
	return &p, nil
}
