package controller

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindease/mindease-api/internal/adapter/api/dto"
	"github.com/mindease/mindease-api/internal/adapter/api/route"
	"github.com/mindease/mindease-api/internal/domain/flag"
	"github.com/mindease/mindease-api/internal/domain/role"
	"github.com/mindease/mindease-api/pkg/auth"
)

type flagFixture struct {
	router     *gin.Engine
	jwtService *auth.JWTService
	flags      *fakeFlagRepository
	roles      *fakeRoleRepository
}

func setupFlagRouter(t *testing.T) *flagFixture {
	t.Helper()

	fixture := &flagFixture{
		jwtService: newTestJWT(t),
		flags:      newFakeFlagRepository(),
		roles:      &fakeRoleRepository{},
	}

	fixture.router = newTestRouter()
	group := fixture.router.Group("/api/v1")
	route.SetupFlagRoutes(group, NewFlagController(fixture.flags, fixture.roles), auth.Middleware(fixture.jwtService))
	return fixture
}

func storedFlag(repo *fakeFlagRepository) *flag.Flag {
	now := time.Now()
	f := &flag.Flag{
		ID:          "ffffffff-ffff-ffff-ffff-ffffffffffff",
		ContentType: flag.ContentDiscussion,
		ContentID:   "dddddddd-dddd-dddd-dddd-dddddddddddd",
		Reason:      "Conteúdo ofensivo",
		ReporterID:  "11111111-1111-1111-1111-111111111111",
		Status:      flag.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	repo.flags[f.ID] = f
	return f
}

func TestFlagCreate(t *testing.T) {
	fixture := setupFlagRouter(t)

	reporterID := "11111111-1111-1111-1111-111111111111"
	token := tokenFor(t, fixture.jwtService, reporterID)

	recorder := doJSONRequest(t, fixture.router, http.MethodPost, "/api/v1/flags",
		dto.FlagRequest{
			ContentType: "discussion",
			ContentID:   "dddddddd-dddd-dddd-dddd-dddddddddddd",
			Reason:      "Conteúdo ofensivo",
		},
		map[string]string{"Authorization": "Bearer " + token},
	)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var response dto.FlagResponse
	decodeJSON(t, recorder.Body.Bytes(), &response)
	assert.Equal(t, "pending", response.Status, "denúncias novas nascem pendentes")
	assert.Equal(t, reporterID, response.ReporterID)
	assert.Len(t, fixture.flags.flags, 1)
}

func TestFlagListSemPapelDeModeracao(t *testing.T) {
	fixture := setupFlagRouter(t)
	storedFlag(fixture.flags)

	token := tokenFor(t, fixture.jwtService, "22222222-2222-2222-2222-222222222222")

	recorder := doJSONRequest(t, fixture.router, http.MethodGet, "/api/v1/flags", nil,
		map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestFlagListPorModerador(t *testing.T) {
	fixture := setupFlagRouter(t)
	storedFlag(fixture.flags)

	moderatorID := "22222222-2222-2222-2222-222222222222"
	fixture.roles.assignments = []role.Assignment{{ID: "a", UserID: moderatorID, Role: role.RoleModerator}}
	token := tokenFor(t, fixture.jwtService, moderatorID)

	recorder := doJSONRequest(t, fixture.router, http.MethodGet, "/api/v1/flags?status=pending", nil,
		map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response dto.FlagListResponse
	decodeJSON(t, recorder.Body.Bytes(), &response)
	assert.Equal(t, 1, response.TotalCount)
	require.Len(t, response.Data, 1)
	assert.Equal(t, "pending", response.Data[0].Status)
}

func TestFlagResolve(t *testing.T) {
	fixture := setupFlagRouter(t)
	f := storedFlag(fixture.flags)

	moderatorID := "22222222-2222-2222-2222-222222222222"
	fixture.roles.assignments = []role.Assignment{{ID: "a", UserID: moderatorID, Role: role.RoleModerator}}
	token := tokenFor(t, fixture.jwtService, moderatorID)

	recorder := doJSONRequest(t, fixture.router, http.MethodPatch, "/api/v1/flags/"+f.ID+"/resolve",
		dto.ResolveFlagRequest{Status: "resolved", ResolutionNotes: "Discussão ocultada"},
		map[string]string{"Authorization": "Bearer " + token},
	)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response dto.FlagResponse
	decodeJSON(t, recorder.Body.Bytes(), &response)
	assert.Equal(t, "resolved", response.Status)
	assert.Equal(t, moderatorID, response.ResolvedBy)
	assert.Equal(t, "Discussão ocultada", response.ResolutionNotes)
}

func TestFlagResolveStatusInvalido(t *testing.T) {
	fixture := setupFlagRouter(t)
	f := storedFlag(fixture.flags)

	moderatorID := "22222222-2222-2222-2222-222222222222"
	fixture.roles.assignments = []role.Assignment{{ID: "a", UserID: moderatorID, Role: role.RoleModerator}}
	token := tokenFor(t, fixture.jwtService, moderatorID)

	recorder := doJSONRequest(t, fixture.router, http.MethodPatch, "/api/v1/flags/"+f.ID+"/resolve",
		gin.H{"status": "qualquer-coisa"},
		map[string]string{"Authorization": "Bearer " + token},
	)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, flag.StatusPending, fixture.flags.flags[f.ID].Status)
}

func TestFlagResolveNaoEncontrada(t *testing.T) {
	fixture := setupFlagRouter(t)

	moderatorID := "22222222-2222-2222-2222-222222222222"
	fixture.roles.assignments = []role.Assignment{{ID: "a", UserID: moderatorID, Role: role.RoleModerator}}
	token := tokenFor(t, fixture.jwtService, moderatorID)

	recorder := doJSONRequest(t, fixture.router, http.MethodPatch, "/api/v1/flags/inexistente/resolve",
		dto.ResolveFlagRequest{Status: "dismissed"},
		map[string]string{"Authorization": "Bearer " + token},
	)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
