// Package money implementa la aritmética monetaria exacta del sistema.
// Los montos usan decimal de punto fijo (shopspring/decimal), nunca float64:
// la igualdad y el orden entre montos son exactos.
package money

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-api/internal/domain"
)

// Scale es la cantidad de decimales de los montos almacenados.
const Scale = 2

// ValidateUnitPrice verifica que el precio unitario sea positivo y tenga
// como máximo dos decimales.
func ValidateUnitPrice(p decimal.Decimal) error {
	if !p.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidPrice
	}
	// Round(2) no debe alterar el valor: más de dos decimales es inválido.
	if !p.Equal(p.Round(Scale)) {
		return domain.ErrInvalidPrice
	}
	return nil
}

// Total calcula cantidad * precio unitario con redondeo half-up a dos
// decimales. Con un precio válido (<= 2 decimales) el producto ya es exacto
// y el redondeo no altera el resultado.
func Total(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(quantity)).Round(Scale)
}
