package audit_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rubengianelli8/Sistema-gestion/internal/application/audit"
	"github.com/rubengianelli8/Sistema-gestion/internal/domain/entity"
	"github.com/rubengianelli8/Sistema-gestion/internal/infrastructure/memstore"
	"github.com/rubengianelli8/Sistema-gestion/pkg/logger"
)

var testActor = entity.Actor{ID: "u-1", Name: "Admin Test", Role: entity.RoleAdmin}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

// failingRepo siempre falla al insertar.
type failingRepo struct{}

func (failingRepo) Insert(*entity.AuditEntry) error { return errors.New("db caída") }
func (failingRepo) List(int) ([]*entity.AuditEntry, error) {
	return nil, nil
}

// blockingRepo bloquea el primer Insert hasta que el test lo libere, para
// poder llenar el buffer del recorder de forma determinista.
type blockingRepo struct {
	started sync.Once
	ready   chan struct{}
	release chan struct{}

	mu      sync.Mutex
	entries []*entity.AuditEntry
}

func newBlockingRepo() *blockingRepo {
	return &blockingRepo{ready: make(chan struct{}), release: make(chan struct{})}
}

func (r *blockingRepo) Insert(e *entity.AuditEntry) error {
	r.started.Do(func() { close(r.ready) })
	<-r.release
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return nil
}

func (r *blockingRepo) List(int) ([]*entity.AuditEntry, error) { return nil, nil }

func (r *blockingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// capturePublisher acumula lo publicado al espejo.
type capturePublisher struct {
	mu      sync.Mutex
	entries []*entity.AuditEntry
	err     error
}

func (p *capturePublisher) Publish(e *entity.AuditEntry) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.entries = append(p.entries, e)
	return nil
}

func (p *capturePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

func TestRecorder_PersisteEntradasEnOrden(t *testing.T) {
	store := memstore.New()
	repo := memstore.NewAuditRepository(store)
	rec := audit.NewRecorder(repo, nil, testLogger(), nil)

	rec.Record(testActor, "crear", "productos", "producto p-1")
	rec.Record(testActor, "anular", "ventas", "venta v-1")
	rec.Close()

	entries, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, testActor.ID, e.UserID)
		assert.Equal(t, testActor.Name, e.UserName)
		assert.NotEmpty(t, e.ID)
		assert.False(t, e.Timestamp.IsZero())
	}
}

func TestRecorder_RecordDespuesDeClose_DescartaSinPanico(t *testing.T) {
	store := memstore.New()
	repo := memstore.NewAuditRepository(store)
	var drops atomic.Int64
	rec := audit.NewRecorder(repo, nil, testLogger(), func() { drops.Add(1) })

	rec.Record(testActor, "crear", "productos", "antes del cierre")
	rec.Close()

	require.NotPanics(t, func() {
		rec.Record(testActor, "crear", "productos", "después del cierre")
	})
	assert.Equal(t, int64(1), drops.Load())

	entries, err := repo.List(10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRecorder_BufferLleno_DescartaYAvisa(t *testing.T) {
	repo := newBlockingRepo()
	var drops atomic.Int64
	rec := audit.NewRecorder(repo, nil, testLogger(), func() { drops.Add(1) })

	// La primera entrada deja al worker bloqueado dentro de Insert.
	rec.Record(testActor, "crear", "productos", "entrada 0")
	<-repo.ready

	// Las siguientes 256 llenan el buffer; una más no entra.
	for i := 0; i < 256; i++ {
		rec.Record(testActor, "crear", "productos", "relleno")
	}
	rec.Record(testActor, "crear", "productos", "descartada")

	assert.Equal(t, int64(1), drops.Load(), "la entrada que no entra al buffer debe descartarse")

	close(repo.release)
	rec.Close()
	assert.Equal(t, 257, repo.count(), "todo lo encolado debe drenarse al cerrar")
}

func TestRecorder_RepoFalla_CuentaComoDescarte(t *testing.T) {
	var drops atomic.Int64
	rec := audit.NewRecorder(failingRepo{}, nil, testLogger(), func() { drops.Add(1) })

	rec.Record(testActor, "crear", "productos", "p-1")
	rec.Record(testActor, "crear", "productos", "p-2")
	rec.Close()

	assert.Equal(t, int64(2), drops.Load())
}

func TestRecorder_EspejaAlPublisher(t *testing.T) {
	store := memstore.New()
	repo := memstore.NewAuditRepository(store)
	pub := &capturePublisher{}
	rec := audit.NewRecorder(repo, pub, testLogger(), nil)

	rec.Record(testActor, "convertir", "presupuestos", "presupuesto q-1")
	rec.Close()

	assert.Equal(t, 1, pub.count(), "la entrada debe espejarse al publisher")
}

func TestRecorder_PublisherFalla_LaEntradaQuedaEnBase(t *testing.T) {
	store := memstore.New()
	repo := memstore.NewAuditRepository(store)
	pub := &capturePublisher{err: errors.New("broker caído")}
	var drops atomic.Int64
	rec := audit.NewRecorder(repo, pub, testLogger(), func() { drops.Add(1) })

	rec.Record(testActor, "crear", "ventas", "venta v-9")
	rec.Close()

	entries, err := repo.List(10)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "el fallo del espejo no debe afectar la persistencia")
	assert.Equal(t, int64(0), drops.Load(), "el fallo del espejo no cuenta como descarte")
}
