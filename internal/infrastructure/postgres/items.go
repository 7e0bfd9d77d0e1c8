package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
)

// Las líneas de ventas, presupuestos y compras se guardan como documento JSONB
// dentro de la fila del documento padre: se leen y escriben siempre juntas.

func marshalItems(items []entity.LineItem) ([]byte, error) {
	if items == nil {
		items = []entity.LineItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}
	return b, nil
}

func unmarshalItems(raw []byte) ([]entity.LineItem, error) {
	var items []entity.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("unmarshal items: %w", err)
	}
	return items, nil
}
