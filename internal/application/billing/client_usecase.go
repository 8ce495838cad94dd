package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/facturio/internal/application/dto"
	"github.com/tu-usuario/facturio/internal/domain"
	"github.com/tu-usuario/facturio/internal/domain/entity"
	"github.com/tu-usuario/facturio/internal/domain/repository"
	"github.com/tu-usuario/facturio/pkg/contact"
)

// ClientUseCase casos de uso de la cartera de clientes, con sus
// sub-colecciones de emails y teléfonos.
type ClientUseCase struct {
	clientRepo repository.ClientRepository
	now        func() time.Time
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo, now: time.Now}
}

// CreateClient da de alta un cliente. Emails, teléfonos y SIRET se normalizan
// a su forma canónica antes de persistir.
func (uc *ClientUseCase) CreateClient(ctx context.Context, ownerID string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	client, errs := uc.fromRequest(ownerID, in)
	if errs.HasErrors() {
		return nil, errs
	}
	client.ID = uuid.New().String()
	client.CreatedAt = uc.now()
	client.UpdatedAt = client.CreatedAt
	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetClient obtiene un cliente del propietario con sub-colecciones resueltas.
func (uc *ClientUseCase) GetClient(ctx context.Context, ownerID, id string) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// ListClients lista la cartera del propietario.
func (uc *ClientUseCase) ListClients(ctx context.Context, ownerID string) ([]dto.ClientResponse, error) {
	clients, err := uc.clientRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, *toClientResponse(c))
	}
	return out, nil
}

// UpdateClient edita el cliente reemplazando en bloque emails y teléfonos.
func (uc *ClientUseCase) UpdateClient(ctx context.Context, ownerID, id string, in dto.ClientRequest) (*dto.ClientResponse, error) {
	existing, err := uc.clientRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	client, errs := uc.fromRequest(ownerID, in)
	if errs.HasErrors() {
		return nil, errs
	}
	client.ID = existing.ID
	client.CreatedAt = existing.CreatedAt
	client.UpdatedAt = uc.now()
	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// DeleteClient elimina el cliente y sus sub-colecciones.
func (uc *ClientUseCase) DeleteClient(ctx context.Context, ownerID, id string) error {
	existing, err := uc.clientRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.clientRepo.Delete(ctx, ownerID, id)
}

// fromRequest normaliza y valida la entrada. Los teléfonos se guardan en la
// forma canónica de 9 dígitos y el SIRET sin espacios.
func (uc *ClientUseCase) fromRequest(ownerID string, in dto.ClientRequest) (*entity.Client, domain.FieldErrors) {
	errs := domain.FieldErrors{}
	if in.CompanyName == "" {
		errs["company_name"] = "razón social requerida"
	}

	siret := contact.ParseSIRET(in.SIRET)
	if in.SIRET != "" && !contact.IsValidSIRET(siret) {
		errs["siret"] = "el SIRET debe tener 14 dígitos"
	}

	emails := make([]string, 0, len(in.Emails))
	for i, e := range in.Emails {
		if !contact.IsValidEmail(e) {
			errs[fmt.Sprintf("emails[%d]", i)] = "email inválido"
			continue
		}
		emails = append(emails, e)
	}

	phones := make([]string, 0, len(in.Phones))
	for i, p := range in.Phones {
		canonical := contact.ParsePhone(p)
		if !contact.IsValidPhone(canonical) {
			errs[fmt.Sprintf("phones[%d]", i)] = "teléfono inválido (se esperan 9 dígitos nacionales)"
			continue
		}
		phones = append(phones, canonical)
	}

	if errs.HasErrors() {
		return nil, errs
	}
	return &entity.Client{
		OwnerID:     ownerID,
		CompanyName: in.CompanyName,
		SIRET:       siret,
		Address:     in.Address,
		Notes:       in.Notes,
		Emails:      emails,
		Phones:      phones,
	}, nil
}

// toClientResponse pasa teléfonos y SIRET a forma de presentación.
func toClientResponse(c *entity.Client) *dto.ClientResponse {
	phones := make([]string, 0, len(c.Phones))
	for _, p := range c.Phones {
		phones = append(phones, contact.FormatPhone(p))
	}
	return &dto.ClientResponse{
		ID:          c.ID,
		CompanyName: c.CompanyName,
		SIRET:       contact.FormatSIRET(c.SIRET),
		Address:     c.Address,
		Notes:       c.Notes,
		Emails:      c.Emails,
		Phones:      phones,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
