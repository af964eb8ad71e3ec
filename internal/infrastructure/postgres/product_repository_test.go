package postgres

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// capturingQuerier registra el SQL y los argumentos de la última llamada;
// sirve para verificar la construcción de consultas sin una base de datos.
type capturingQuerier struct {
	sql  string
	args []any
}

func (q *capturingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql, q.args = sql, args
	return pgconn.CommandTag{}, nil
}

func (q *capturingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql, q.args = sql, args
	return emptyRows{}, nil
}

func (q *capturingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql, q.args = sql, args
	return noRow{}
}

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(...any) error                            { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

type noRow struct{}

func (noRow) Scan(...any) error { return pgx.ErrNoRows }

// ──────────────────────────────────────────────────────────────────────────────
// Search — mismo contrato de plegado que el adaptador en memoria
// ──────────────────────────────────────────────────────────────────────────────

// TestProductRepo_SearchPliegaKeyword la palabra clave llega a la consulta ya
// plegada (minúsculas, sin acentos) y la comparación se hace contra las
// columnas normalizadas: "Café" encuentra "café molido" también en PostgreSQL.
func TestProductRepo_SearchPliegaKeyword(t *testing.T) {
	q := &capturingQuerier{}
	repo := NewProductRepository(q)

	_, err := repo.Search("Café", 20)
	require.NoError(t, err)

	require.Len(t, q.args, 2)
	assert.Equal(t, "cafe", q.args[0], "la keyword debe viajar plegada")
	assert.Equal(t, 20, q.args[1])
	assert.Contains(t, q.sql, "name_norm")
	assert.Contains(t, q.sql, "sku_norm")
	assert.False(t, strings.Contains(q.sql, "ILIKE"),
		"la insensibilidad viene del plegado, no de ILIKE")
}

// TestProductRepo_CreateGuardaColumnasNormalizadas el INSERT lleva nombre y
// SKU plegados para que la búsqueda posterior los encuentre.
func TestProductRepo_CreateGuardaColumnasNormalizadas(t *testing.T) {
	q := &capturingQuerier{}
	repo := NewProductRepository(q)

	err := repo.Create(&entity.Product{
		SKU:  "CAF-001",
		Name: "Café Molido",
	})
	require.NoError(t, err)

	require.Len(t, q.args, 11)
	assert.Equal(t, "cafe molido", q.args[9])
	assert.Equal(t, "caf-001", q.args[10])
	assert.NotEmpty(t, q.args[0], "Create asigna ID cuando no viene uno")
}
