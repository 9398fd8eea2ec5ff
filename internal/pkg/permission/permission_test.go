package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHas(t *testing.T) {
	all := []Permission{Admin, ViewTokens, ViewSuggestions, AddSuggestions}

	tests := []struct {
		stored Permission
		grants []Permission
	}{
		{stored: Admin, grants: all},
		{stored: ViewSuggestions, grants: []Permission{ViewSuggestions, AddSuggestions}},
		{stored: AddSuggestions, grants: []Permission{AddSuggestions}},
		{stored: ViewTokens, grants: nil},
		{stored: "", grants: nil},
		{stored: "admin", grants: nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.stored), func(t *testing.T) {
			for _, requested := range all {
				want := false
				for _, g := range tt.grants {
					if g == requested {
						want = true
					}
				}
				assert.Equal(t, want, Has(tt.stored, requested), "Has(%s, %s)", tt.stored, requested)
			}
		})
	}
}

func TestHas_UnknownRequestNeverGranted(t *testing.T) {
	assert.False(t, Has(Admin, "DELETE_EVERYTHING"))
	assert.False(t, Has(Admin, ""))
}

func TestParse(t *testing.T) {
	for _, s := range []string{"ADMIN", "VIEW_SUGGESTIONS", "ADD_SUGGESTIONS"} {
		p, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, Permission(s), p)
	}

	for _, s := range []string{"VIEW_TOKENS", "", "admin", "OWNER"} {
		_, err := Parse(s)
		assert.Error(t, err, s)
	}
}

func TestScanValue(t *testing.T) {
	var p Permission
	require.NoError(t, p.Scan([]byte("ADMIN")))
	assert.Equal(t, Admin, p)

	require.NoError(t, p.Scan("ADD_SUGGESTIONS"))
	assert.Equal(t, AddSuggestions, p)

	assert.Error(t, p.Scan(42))

	v, err := ViewSuggestions.Value()
	require.NoError(t, err)
	assert.Equal(t, "VIEW_SUGGESTIONS", v)
}
