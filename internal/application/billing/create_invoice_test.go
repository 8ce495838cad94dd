package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/facturio/internal/application/dto"
	"github.com/tu-usuario/facturio/internal/domain"
	"github.com/tu-usuario/facturio/internal/domain/entity"
	"github.com/tu-usuario/facturio/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice // por ID
	numbers  map[string]bool            // índice único simulado sobre invoice_number
	// conflictsLeft fuerza ErrSequenceConflict en los próximos N Create,
	// simulando una carrera con otra transacción.
	conflictsLeft int
	creates       int
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: make(map[string]*entity.Invoice),
		numbers:  make(map[string]bool),
	}
}

func (f *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	f.creates++
	if f.conflictsLeft > 0 {
		f.conflictsLeft--
		return domain.ErrSequenceConflict
	}
	if f.numbers[inv.Number] {
		return domain.ErrSequenceConflict
	}
	f.numbers[inv.Number] = true
	cp := *inv
	f.invoices[inv.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) GetByID(_ context.Context, ownerID, id string) (*entity.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok || inv.OwnerID != ownerID {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeInvoiceRepo) ListByOwner(_ context.Context, ownerID string) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range f.invoices {
		if inv.OwnerID == ownerID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) CountByOwnerBetween(_ context.Context, ownerID string, start, end time.Time) (int, error) {
	n := 0
	for _, inv := range f.invoices {
		if inv.OwnerID != ownerID || inv.IssueDate == nil {
			continue
		}
		if !inv.IssueDate.Before(start) && !inv.IssueDate.After(end) {
			n++
		}
	}
	return n, nil
}

func (f *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	cp := *inv
	f.invoices[inv.ID] = &cp
	return nil
}

func (f *fakeInvoiceRepo) UpdateStatus(_ context.Context, ownerID, id, status string) error {
	inv, ok := f.invoices[id]
	if !ok || inv.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	inv.Status = status
	return nil
}

func (f *fakeInvoiceRepo) Delete(_ context.Context, ownerID, id string) error {
	delete(f.invoices, id)
	return nil
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func (f *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	f.clients[c.ID] = c
	return nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, ownerID, id string) (*entity.Client, error) {
	c, ok := f.clients[id]
	if !ok || c.OwnerID != ownerID {
		return nil, nil
	}
	return c, nil
}

func (f *fakeClientRepo) ListByOwner(_ context.Context, ownerID string) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range f.clients {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClientRepo) Update(_ context.Context, c *entity.Client) error { return nil }
func (f *fakeClientRepo) Delete(_ context.Context, ownerID, id string) error {
	delete(f.clients, id)
	return nil
}

// fakeTxRunner ejecuta la función directamente sobre los repos en memoria.
type fakeTxRunner struct {
	invoiceRepo repository.InvoiceRepository
	clientRepo  repository.ClientRepository
}

func (f *fakeTxRunner) RunBilling(_ context.Context, fn func(
	repository.InvoiceRepository, repository.ClientRepository) error) error {
	return fn(f.invoiceRepo, f.clientRepo)
}

// ──────────────────────────────────────────────────────────────────────────────

const (
	testOwner  = "owner-1"
	testClient = "client-1"
)

func newTestUseCase(t *testing.T) (*InvoiceUseCase, *fakeInvoiceRepo) {
	t.Helper()
	invRepo := newFakeInvoiceRepo()
	clientRepo := &fakeClientRepo{clients: map[string]*entity.Client{
		testClient: {ID: testClient, OwnerID: testOwner, CompanyName: "ACME Conseil"},
	}}
	uc := NewInvoiceUseCase(&fakeTxRunner{invRepo, clientRepo}, invRepo, clientRepo)
	uc.now = func() time.Time {
		return time.Date(2026, time.May, 20, 10, 0, 0, 0, time.UTC)
	}
	return uc, invRepo
}

func validRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		ClientID: testClient,
		Items: []dto.InvoiceItemRequest{{
			Title:     "Prestation de conseil",
			Quantity:  decimal.NewFromInt(2),
			UnitPrice: decimal.NewFromInt(450),
		}},
	}
}

func TestCreateInvoice_NumeracionAutomatica(t *testing.T) {
	uc, _ := newTestUseCase(t)

	resp, err := uc.CreateInvoice(context.Background(), testOwner, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "26-05-001", resp.Number, "primera factura de mayo 2026")
	assert.Equal(t, entity.StatusDraft, resp.Status)
	assert.Equal(t, "2026-05-20", resp.IssueDate)
	assert.Equal(t, "2026-06-20", resp.DueDate, "vencimiento por defecto: emisión + 1 mes")
	assert.True(t, decimal.NewFromInt(900).Equal(resp.Subtotal))

	resp2, err := uc.CreateInvoice(context.Background(), testOwner, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "26-05-002", resp2.Number, "la secuencia avanza con el recuento del mes")
}

func TestCreateInvoice_ReintentaTrasConflicto(t *testing.T) {
	uc, invRepo := newTestUseCase(t)
	invRepo.conflictsLeft = 2 // dos carreras simuladas, el tercer intento entra

	resp, err := uc.CreateInvoice(context.Background(), testOwner, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "26-05-001", resp.Number)
	assert.Equal(t, 3, invRepo.creates, "dos conflictos + un intento con éxito")
}

func TestCreateInvoice_AgotaReintentos(t *testing.T) {
	uc, invRepo := newTestUseCase(t)
	invRepo.conflictsLeft = maxNumberRetries + 1

	_, err := uc.CreateInvoice(context.Background(), testOwner, validRequest())
	assert.ErrorIs(t, err, domain.ErrSequenceConflict)
	assert.Equal(t, maxNumberRetries, invRepo.creates)
}

func TestCreateInvoice_NumeroExplicito(t *testing.T) {
	uc, invRepo := newTestUseCase(t)

	in := validRequest()
	in.Number = "26-05-042"
	resp, err := uc.CreateInvoice(context.Background(), testOwner, in)
	require.NoError(t, err)
	assert.Equal(t, "26-05-042", resp.Number)

	// Duplicado explícito: sin reintento, error directo al usuario.
	_, err = uc.CreateInvoice(context.Background(), testOwner, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 2, invRepo.creates)
}

func TestCreateInvoice_NumeroExplicitoInvalido(t *testing.T) {
	uc, _ := newTestUseCase(t)

	in := validRequest()
	in.Number = "2026-05-001"
	_, err := uc.CreateInvoice(context.Background(), testOwner, in)
	var fields domain.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "invoice_number")
}

func TestCreateInvoice_ClienteAjeno(t *testing.T) {
	uc, _ := newTestUseCase(t)

	in := validRequest()
	in.ClientID = "client-de-otro"
	_, err := uc.CreateInvoice(context.Background(), testOwner, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateInvoice_CantidadNegativa(t *testing.T) {
	uc, _ := newTestUseCase(t)

	in := validRequest()
	in.Items[0].Quantity = decimal.NewFromInt(-1)
	_, err := uc.CreateInvoice(context.Background(), testOwner, in)
	var fields domain.FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "items")
}

// ── Cambio de estado y borrado ────────────────────────────────────────────────

func createDraft(t *testing.T, uc *InvoiceUseCase) string {
	t.Helper()
	resp, err := uc.CreateInvoice(context.Background(), testOwner, validRequest())
	require.NoError(t, err)
	return resp.ID
}

func TestChangeStatus_CicloCompleto(t *testing.T) {
	uc, _ := newTestUseCase(t)
	id := createDraft(t, uc)

	resp, err := uc.ChangeStatus(context.Background(), testOwner, id, entity.StatusSent)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSent, resp.Status)

	resp, err = uc.ChangeStatus(context.Background(), testOwner, id, entity.StatusPaid)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, resp.Status)
}

func TestChangeStatus_TransicionIlegal(t *testing.T) {
	uc, invRepo := newTestUseCase(t)
	id := createDraft(t, uc)

	// draft → paid directo: rechazado y sin efecto.
	_, err := uc.ChangeStatus(context.Background(), testOwner, id, entity.StatusPaid)
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
	assert.Equal(t, entity.StatusDraft, invRepo.invoices[id].Status)
}

func TestDeleteInvoice_PagadaNoSeBorra(t *testing.T) {
	uc, _ := newTestUseCase(t)
	id := createDraft(t, uc)

	_, err := uc.ChangeStatus(context.Background(), testOwner, id, entity.StatusSent)
	require.NoError(t, err)
	_, err = uc.ChangeStatus(context.Background(), testOwner, id, entity.StatusPaid)
	require.NoError(t, err)

	err = uc.DeleteInvoice(context.Background(), testOwner, id)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateInvoice_TerminalRechazada(t *testing.T) {
	uc, _ := newTestUseCase(t)
	id := createDraft(t, uc)
	_, err := uc.ChangeStatus(context.Background(), testOwner, id, entity.StatusSent)
	require.NoError(t, err)
	_, err = uc.ChangeStatus(context.Background(), testOwner, id, entity.StatusPaid)
	require.NoError(t, err)

	in := dto.UpdateInvoiceRequest{
		ClientID: testClient,
		Items: []dto.InvoiceItemRequest{{
			Title:     "Otra prestación",
			Quantity:  decimal.NewFromInt(1),
			UnitPrice: decimal.NewFromInt(100),
		}},
	}
	_, err = uc.UpdateInvoice(context.Background(), testOwner, id, in)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
