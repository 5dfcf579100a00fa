package actions

import (
	"errors"
	"sort"

	"golang.org/x/text/language"

	"github.com/jhoicas/Tahsilat-api/internal/application/dto"
	"github.com/jhoicas/Tahsilat-api/internal/domain"
	"github.com/jhoicas/Tahsilat-api/pkg/i18n"
)

// noteFailure traduce el error del alta de nota a un ActionResult localizado.
func noteFailure(lang language.Tag, err error) dto.ActionResult {
	res := dto.ActionResult{Success: false}

	var verr *domain.ValidationError
	var storeErr *domain.StoreError
	switch {
	case errors.As(err, &verr):
		res.FieldErrors = make(map[string]string, len(verr.Fields))
		keys := make([]string, 0, len(verr.Fields))
		for field, key := range verr.Fields {
			res.FieldErrors[field] = i18n.T(lang, key)
			keys = append(keys, field)
		}
		sort.Strings(keys)
		if len(keys) > 0 {
			res.Error = res.FieldErrors[keys[0]]
		} else {
			res.Error = i18n.T(lang, i18n.MsgInvalidInput)
		}
	case errors.Is(err, domain.ErrUnauthenticated):
		res.Error = i18n.T(lang, i18n.MsgUnauthenticated)
	case errors.Is(err, domain.ErrProfileNotFound):
		res.Error = i18n.T(lang, i18n.MsgProfileNotFound)
	case errors.Is(err, domain.ErrNotFound):
		res.Error = i18n.T(lang, i18n.MsgCustomerNotFound)
	case errors.As(err, &storeErr):
		res.Error = i18n.T(lang, i18n.MsgNoteCreateFailed, storeErr.Err.Error())
	default:
		res.Error = i18n.T(lang, i18n.MsgNoteCreateFailed, err.Error())
	}
	return res
}
