package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/rubengianelli8/Sistema-gestion/internal/application/audit"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
)

var _ audit.Publisher = (*AuditPublisher)(nil)

// AuditPublisher espeja las entradas de auditoría a un topic de Kafka para
// consumidores externos (SIEM, data warehouse). Si Kafka no está configurado
// el sistema corre igual sin espejo.
type AuditPublisher struct {
	cl    *kgo.Client
	topic string
}

// NewAuditPublisher construye el cliente y verifica la conexión con un ping.
func NewAuditPublisher(ctx context.Context, brokers []string, topic string) (*AuditPublisher, error) {
	cl, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := cl.Ping(pingCtx); err != nil {
		cl.Close()
		return nil, fmt.Errorf("ping kafka: %w", err)
	}
	return &AuditPublisher{cl: cl, topic: topic}, nil
}

// auditMessage es el documento que viaja por el topic.
type auditMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"usuario_id"`
	UserName  string    `json:"usuario_nombre"`
	Action    string    `json:"accion"`
	Module    string    `json:"modulo"`
	Detail    string    `json:"detalle,omitempty"`
	Timestamp time.Time `json:"fecha"`
}

// Publish envía la entrada y espera la confirmación del broker.
// Particiona por usuario para conservar el orden por actor.
func (p *AuditPublisher) Publish(entry *entity.AuditEntry) error {
	payload, err := json.Marshal(auditMessage{
		ID:        entry.ID,
		UserID:    entry.UserID,
		UserName:  entry.UserName,
		Action:    entry.Action,
		Module:    entry.Module,
		Detail:    entry.Detail,
		Timestamp: entry.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("marshal audit message: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	record := &kgo.Record{Topic: p.topic, Key: []byte(entry.UserID), Value: payload}
	p.cl.Produce(ctx, record, func(_ *kgo.Record, err error) {
		done <- err
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("produce audit message: %w", err)
		}
		return nil
	}
}

// Close cierra la conexión con el broker.
func (p *AuditPublisher) Close() {
	p.cl.Close()
}
