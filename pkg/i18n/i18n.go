// Package i18n mensajes de cara al usuario. Turco es el idioma por defecto; inglés como alternativa.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Claves de mensaje.
const (
	MsgNoteCreated       = "note.created"
	MsgNoteCreateFailed  = "note.create_failed"
	MsgInvalidInput      = "form.invalid"
	MsgFieldRequired     = "form.required"
	MsgContentRequired   = "note.content_required"
	MsgContentTooLong    = "note.content_too_long"
	MsgCustomerIDInvalid = "note.customer_id_invalid"
	MsgUnauthenticated   = "auth.unauthenticated"
	MsgProfileNotFound   = "auth.profile_not_found"
	MsgTenantMismatch    = "auth.tenant_mismatch"
	MsgCustomerNotFound  = "customer.not_found"
	MsgInternal          = "internal"
)

var supported = []language.Tag{language.Turkish, language.English}

var matcher = language.NewMatcher(supported)

var cat = build()

func build() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Turkish))
	set := func(key, tr, en string) {
		_ = b.SetString(language.Turkish, key, tr)
		_ = b.SetString(language.English, key, en)
	}
	set(MsgNoteCreated, "Not başarıyla eklendi.", "Note added successfully.")
	set(MsgNoteCreateFailed, "Not eklenirken hata oluştu: %s", "Failed to add note: %s")
	set(MsgInvalidInput, "Geçersiz form verisi.", "Invalid form data.")
	set(MsgFieldRequired, "Bu alan zorunludur.", "This field is required.")
	set(MsgContentRequired, "Not içeriği boş olamaz.", "Note content cannot be empty.")
	set(MsgContentTooLong, "Not içeriği çok uzun.", "Note content is too long.")
	set(MsgCustomerIDInvalid, "Geçerli bir müşteri seçilmelidir.", "A valid customer must be selected.")
	set(MsgUnauthenticated, "Oturum açmanız gerekiyor.", "You must be signed in.")
	set(MsgProfileNotFound, "Kullanıcı profili bulunamadı.", "User profile not found.")
	set(MsgTenantMismatch, "Bu şirkete erişim yetkiniz yok.", "You do not have access to this company.")
	set(MsgCustomerNotFound, "Müşteri bulunamadı.", "Customer not found.")
	set(MsgInternal, "Beklenmeyen bir hata oluştu.", "An unexpected error occurred.")
	return b
}

// Default idioma usado cuando no se pide otro.
var Default = language.Turkish

// Match elige el idioma soportado más cercano a un header Accept-Language.
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return supported[idx]
}

// T traduce key al idioma lang, formateando args al estilo fmt.
func T(lang language.Tag, key string, args ...any) string {
	return message.NewPrinter(lang, message.Catalog(cat)).Sprintf(key, args...)
}
