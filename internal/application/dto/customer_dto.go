package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
)

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
	Name        string          `json:"nombre"`
	TaxID       string          `json:"dni_cuit"`
	Email       string          `json:"email"`
	Phone       string          `json:"telefono"`
	Address     string          `json:"direccion"`
	CreditLimit decimal.Decimal `json:"limite_credito"`
}

// UpdateCustomerRequest edición de cliente. No permite tocar el saldo:
// solo las ventas y anulaciones lo mueven.
type UpdateCustomerRequest struct {
	Name        *string          `json:"nombre"`
	TaxID       *string          `json:"dni_cuit"`
	Email       *string          `json:"email"`
	Phone       *string          `json:"telefono"`
	Address     *string          `json:"direccion"`
	CreditLimit *decimal.Decimal `json:"limite_credito"`
}

// CustomerResponse cliente con su saldo de cuenta corriente.
type CustomerResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"nombre"`
	TaxID       string          `json:"dni_cuit"`
	Email       string          `json:"email"`
	Phone       string          `json:"telefono"`
	Address     string          `json:"direccion"`
	CreditLimit decimal.Decimal `json:"limite_credito"`
	Balance     decimal.Decimal `json:"saldo_cuenta_corriente"`
	CreatedAt   time.Time       `json:"fecha_creacion"`
}

// CustomerHistoryResponse historial de compras de un cliente. El total
// gastado excluye las ventas anuladas.
type CustomerHistoryResponse struct {
	Sales      []SaleResponse  `json:"ventas"`
	Count      int             `json:"cantidad"`
	TotalSpent decimal.Decimal `json:"total_gastado"`
}

// ToCustomerResponse convierte la entidad a respuesta del API.
func ToCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		TaxID:       c.TaxID,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		CreditLimit: c.CreditLimit,
		Balance:     c.Balance,
		CreatedAt:   c.CreatedAt,
	}
}
