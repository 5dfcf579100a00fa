package actions

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/jhoicas/Tahsilat-api/internal/application/dto"
	"github.com/jhoicas/Tahsilat-api/internal/application/validation"
	"github.com/jhoicas/Tahsilat-api/internal/domain"
	"github.com/jhoicas/Tahsilat-api/internal/domain/entity"
	"github.com/jhoicas/Tahsilat-api/pkg/i18n"
	"github.com/jhoicas/Tahsilat-api/pkg/logger"
)

// NoteUseCase alta de notas sobre clientes.
type NoteUseCase struct {
	tx       TenantTxRunner
	resolver TenantResolver
	inv      Invalidator
	log      *logger.Logger
	now      func() time.Time
	newID    func() string
}

// NewNoteUseCase construye el caso de uso.
func NewNoteUseCase(tx TenantTxRunner, resolver TenantResolver, inv Invalidator, log *logger.Logger) *NoteUseCase {
	return &NoteUseCase{
		tx:       tx,
		resolver: resolver,
		inv:      inv,
		log:      log.Component("notes"),
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// CreateNote valida el formulario, resuelve la empresa de la sesión e inserta la nota.
// Solo tras un insert correcto se invalida la vista del cliente.
// El error devuelto es la causa (nil si Success); el ActionResult ya viene localizado.
func (uc *NoteUseCase) CreateNote(ctx context.Context, lang language.Tag, userID string, fields map[string]any) (dto.ActionResult, error) {
	var in dto.CreateNoteInput
	if err := validation.Decode(fields, &in); err != nil {
		return noteFailure(lang, err), err
	}
	in.CustomerID = strings.ToLower(in.CustomerID)

	tc, err := uc.resolver.Resolve(ctx, userID)
	if err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID).Msg("alta de nota sin tenant")
		return noteFailure(lang, err), err
	}

	note := &entity.Note{
		ID:         uc.newID(),
		CompanyID:  tc.CompanyID,
		CustomerID: in.CustomerID,
		Content:    in.Content,
		CreatedBy:  tc.UserID,
		CreatedAt:  uc.now().UTC(),
	}
	err = uc.tx.RunTenant(ctx, tc.CompanyID, func(r TenantRepos) error {
		customer, err := r.Customers.GetByID(ctx, tc.CompanyID, in.CustomerID)
		if err != nil {
			return domain.NewStoreError("get customer", err)
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		return domain.NewStoreError("insert note", r.Notes.Create(ctx, note))
	})
	if err != nil {
		uc.log.Error().Err(err).
			Str("company_id", tc.CompanyID).
			Str("customer_id", in.CustomerID).
			Msg("alta de nota fallida")
		return noteFailure(lang, err), err
	}

	if err := uc.inv.Invalidate(ctx, CustomerViewPath(in.CustomerID)); err != nil {
		uc.log.Warn().Err(err).Str("customer_id", in.CustomerID).Msg("revalidación de vista fallida")
	}
	uc.log.Info().
		Str("company_id", tc.CompanyID).
		Str("note_id", note.ID).
		Msg("nota creada")

	return dto.ActionResult{Success: true, Message: i18n.T(lang, i18n.MsgNoteCreated)}, nil
}
