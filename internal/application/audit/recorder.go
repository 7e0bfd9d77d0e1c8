package audit

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/repository"
	"github.com/rubengianelli8/Sistema-gestion/pkg/logger"
)

// Publisher espeja entradas de auditoría hacia un sistema externo (Kafka).
// Opcional: nil desactiva el espejo.
type Publisher interface {
	Publish(entry *entity.AuditEntry) error
}

// DropHandler recibe la cuenta de entradas descartadas o fallidas (métricas).
type DropHandler func()

// Recorder registra auditoría en segundo plano: Record encola y vuelve
// enseguida, un worker persiste. La auditoría nunca bloquea ni hace fallar
// la operación que la origina; si el buffer está lleno la entrada se
// descarta y se deja constancia en el log.
type Recorder struct {
	repo      repository.AuditRepository
	publisher Publisher
	log       *logger.Logger
	onDrop    DropHandler

	ch   chan *entity.AuditEntry
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

// NewRecorder construye el recorder y arranca su worker.
// publisher y onDrop pueden ser nil.
func NewRecorder(repo repository.AuditRepository, publisher Publisher, log *logger.Logger, onDrop DropHandler) *Recorder {
	r := &Recorder{
		repo:      repo,
		publisher: publisher,
		log:       log,
		onDrop:    onDrop,
		ch:        make(chan *entity.AuditEntry, 256),
	}
	r.wg.Add(1)
	go r.worker()
	return r
}

// Record encola una entrada. No devuelve error: auditoría es best-effort.
func (r *Recorder) Record(actor entity.Actor, action, module, detail string) {
	entry := &entity.AuditEntry{
		ID:        uuid.New().String(),
		UserID:    actor.ID,
		UserName:  actor.Name,
		Action:    action,
		Module:    module,
		Detail:    detail,
		Timestamp: time.Now(),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		// Un Record tardío durante el apagado se descarta, no paniquea.
		r.log.Warn().Str("action", action).Msg("auditoría: recorder cerrado, entrada descartada")
		if r.onDrop != nil {
			r.onDrop()
		}
		return
	}
	select {
	case r.ch <- entry:
	default:
		r.log.Warn().Str("action", action).Msg("auditoría: buffer lleno, entrada descartada")
		if r.onDrop != nil {
			r.onDrop()
		}
	}
}

// Close deja de aceptar entradas y espera a que el worker drene la cola.
// Los Record posteriores cuentan como descartes.
func (r *Recorder) Close() {
	r.once.Do(func() {
		r.mu.Lock()
		r.closed = true
		r.mu.Unlock()
		close(r.ch)
	})
	r.wg.Wait()
}

func (r *Recorder) worker() {
	defer r.wg.Done()
	for entry := range r.ch {
		if err := r.repo.Insert(entry); err != nil {
			r.log.Warn().Err(err).Msg("auditoría: no se pudo persistir la entrada")
			if r.onDrop != nil {
				r.onDrop()
			}
			continue
		}
		if r.publisher != nil {
			if err := r.publisher.Publish(entry); err != nil {
				// El espejo es secundario: la entrada ya quedó en la base.
				r.log.Warn().Err(err).Msg("auditoría: fallo publicando al espejo")
			}
		}
	}
}
