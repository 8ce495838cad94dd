package profile

import (
	"context"
	"time"

	"github.com/tu-usuario/facturio/internal/application/dto"
	"github.com/tu-usuario/facturio/internal/domain"
	"github.com/tu-usuario/facturio/internal/domain/entity"
	"github.com/tu-usuario/facturio/internal/domain/repository"
	"github.com/tu-usuario/facturio/pkg/banking"
	"github.com/tu-usuario/facturio/pkg/contact"
)

// ProfileUseCase casos de uso del perfil del emisor: onboarding, edición y
// coordenadas bancarias.
type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	now         func() time.Time
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(profileRepo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: profileRepo, now: time.Now}
}

// GetProfile devuelve el perfil del usuario. Sin perfil guardado devuelve el
// formulario vacío con la cadencia por defecto y onboarding_completed=false.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	p, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return &dto.ProfileResponse{DeclarationMode: entity.DeclarationMonthly}, nil
	}
	return toProfileResponse(p), nil
}

// SaveProfile guarda el perfil (onboarding y edición posterior comparten esta
// operación). Teléfono y SIRET se normalizan a forma canónica.
//
// El cambio de cadencia de declaración aplica solo hacia adelante: los KPIs se
// recalculan con la cadencia vigente en cada consulta, nunca se reescriben
// periodos pasados.
func (uc *ProfileUseCase) SaveProfile(ctx context.Context, userID string, in dto.ProfileRequest) (*dto.ProfileResponse, error) {
	errs := domain.FieldErrors{}
	if in.FirstName == "" {
		errs["first_name"] = "nombre requerido"
	}
	if in.LastName == "" {
		errs["last_name"] = "apellido requerido"
	}

	phone := contact.ParsePhone(in.Phone)
	if in.Phone != "" && !contact.IsValidPhone(phone) {
		errs["phone"] = "teléfono inválido (se esperan 9 dígitos nacionales)"
	}
	siret := contact.ParseSIRET(in.SIRET)
	if in.SIRET != "" && !contact.IsValidSIRET(siret) {
		errs["siret"] = "el SIRET debe tener 14 dígitos"
	}

	mode := in.DeclarationMode
	switch mode {
	case "":
		mode = entity.DeclarationMonthly
	case entity.DeclarationMonthly, entity.DeclarationQuarterly:
	default:
		errs["declaration_mode"] = "cadencia inválida (monthly o quarterly)"
	}
	if errs.HasErrors() {
		return nil, errs
	}

	p := &entity.Profile{
		ID:                  userID,
		FirstName:           in.FirstName,
		LastName:            in.LastName,
		Phone:               phone,
		Address:             in.Address,
		SIRET:               siret,
		DeclarationMode:     mode,
		OnboardingCompleted: true,
		UpdatedAt:           uc.now(),
	}
	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return toProfileResponse(p), nil
}

// GetBankDetails devuelve las coordenadas bancarias, o vacío si no hay.
func (uc *ProfileUseCase) GetBankDetails(ctx context.Context, userID string) (*dto.BankDetailsResponse, error) {
	b, err := uc.profileRepo.GetBankDetails(ctx, userID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return &dto.BankDetailsResponse{}, nil
	}
	return &dto.BankDetailsResponse{
		IBAN: banking.FormatIBAN(b.IBAN),
		BIC:  b.BIC,
	}, nil
}

// SaveBankDetails valida IBAN (checksum mod-97) y BIC antes de guardar en
// forma canónica.
func (uc *ProfileUseCase) SaveBankDetails(ctx context.Context, userID string, in dto.BankDetailsRequest) (*dto.BankDetailsResponse, error) {
	errs := domain.FieldErrors{}
	iban := banking.ParseIBAN(in.IBAN)
	if !banking.IsValidIBAN(iban) {
		errs["iban"] = "IBAN francés inválido"
	}
	bic := banking.ParseIBAN(in.BIC) // misma normalización: sin espacios, mayúsculas
	if !banking.IsValidBIC(bic) {
		errs["bic"] = "BIC inválido"
	}
	if errs.HasErrors() {
		return nil, errs
	}

	b := &entity.BankDetails{
		UserID:    userID,
		IBAN:      iban,
		BIC:       bic,
		UpdatedAt: uc.now(),
	}
	if err := uc.profileRepo.UpsertBankDetails(ctx, b); err != nil {
		return nil, err
	}
	return &dto.BankDetailsResponse{
		IBAN: banking.FormatIBAN(b.IBAN),
		BIC:  b.BIC,
	}, nil
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		FirstName:           p.FirstName,
		LastName:            p.LastName,
		Phone:               contact.FormatPhone(p.Phone),
		Address:             p.Address,
		SIRET:               contact.FormatSIRET(p.SIRET),
		DeclarationMode:     p.DeclarationMode,
		OnboardingCompleted: p.OnboardingCompleted,
	}
}
