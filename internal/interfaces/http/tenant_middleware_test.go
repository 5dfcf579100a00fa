package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTenantSlug(t *testing.T) {
	cases := map[string]string{
		"acme.tahsilat.app":      "acme",
		"ACME.Tahsilat.app:8443": "acme",
		"tahsilat.app":           "",
		"www.tahsilat.app":       "",
		"a.b.tahsilat.app":       "",
		"acme.otro.com":          "",
		"":                       "",
	}
	for host, want := range cases {
		assert.Equal(t, want, tenantSlug(host, "tahsilat.app"), host)
	}
	assert.Equal(t, "", tenantSlug("acme.tahsilat.app", ""))
}
