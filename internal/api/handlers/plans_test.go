package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plancheck/internal/catalog"
	"plancheck/internal/types"
)

func TestPlansList(t *testing.T) {
	h := NewPlansHandler(catalog.NewDefault())
	router := chi.NewRouter()
	h.RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeData[[]PlanDTO](t, rec)
	require.NotEmpty(t, out)

	byName := make(map[types.PlanName]PlanDTO, len(out))
	for _, p := range out {
		byName[p.Name] = p
	}

	bundle, ok := byName[types.PlanBundlePro2024]
	require.True(t, ok)
	assert.Equal(t, types.TypePlan, bundle.Type)
	assert.Equal(t, 15, bundle.MaxDomains)
	assert.Equal(t, types.AddonMemberBundlePro2024, bundle.Addons[catalog.FamilyMember])

	member, ok := byName[types.AddonMemberBundlePro2024]
	require.True(t, ok)
	assert.Equal(t, types.TypeAddon, member.Type)
	assert.Empty(t, member.Addons)

	// Sorted by name, so the listing is stable across calls.
	for i := 1; i < len(out); i++ {
		assert.Less(t, string(out[i-1].Name), string(out[i].Name))
	}
}
