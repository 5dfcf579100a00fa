package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestT_Turco(t *testing.T) {
	assert.Equal(t, "Not başarıyla eklendi.", T(language.Turkish, MsgNoteCreated))
	assert.Equal(t, "Not eklenirken hata oluştu: timeout", T(language.Turkish, MsgNoteCreateFailed, "timeout"))
}

func TestT_Ingles(t *testing.T) {
	assert.Equal(t, "Customer not found.", T(language.English, MsgCustomerNotFound))
}

func TestMatch(t *testing.T) {
	assert.Equal(t, language.English, Match("en-US,en;q=0.9"))
	assert.Equal(t, language.Turkish, Match("tr-TR"))
	assert.Equal(t, language.Turkish, Match("ja"), "idioma no soportado cae al default")
	assert.Equal(t, language.Turkish, Match(""))
}
