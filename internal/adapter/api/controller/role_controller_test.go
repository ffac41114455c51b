package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindease/mindease-api/internal/adapter/api/dto"
	"github.com/mindease/mindease-api/internal/adapter/api/route"
	"github.com/mindease/mindease-api/internal/domain/role"
	"github.com/mindease/mindease-api/pkg/auth"
)

func setupRoleRouter(t *testing.T, repo *fakeRoleRepository) (*gin.Engine, *auth.JWTService) {
	t.Helper()

	jwtService := newTestJWT(t)
	router := newTestRouter()
	group := router.Group("/api/v1")
	route.SetupRoleRoutes(group, NewRoleController(repo), auth.Middleware(jwtService))
	return router, jwtService
}

func TestAssignAdminSemToken(t *testing.T) {
	repo := &fakeRoleRepository{}
	router, _ := setupRoleRouter(t, repo)

	recorder := doJSONRequest(t, router, http.MethodPost, "/api/v1/roles/assign-admin", nil, nil)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var body map[string]string
	decodeJSON(t, recorder.Body.Bytes(), &body)
	assert.Equal(t, "Unauthorized", body["error"])
	assert.Equal(t, "User not authenticated", body["message"])
	assert.Empty(t, repo.assignments, "nenhuma concessão deve ocorrer sem autenticação")
}

func TestAssignAdminTokenInvalido(t *testing.T) {
	repo := &fakeRoleRepository{}
	router, _ := setupRoleRouter(t, repo)

	recorder := doJSONRequest(t, router, http.MethodPost, "/api/v1/roles/assign-admin", nil, map[string]string{
		"Authorization": "Bearer nao-e-um-token",
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Empty(t, repo.assignments)
}

func TestAssignAdminAutoConcessao(t *testing.T) {
	repo := &fakeRoleRepository{}
	router, jwtService := setupRoleRouter(t, repo)

	callerID := "11111111-1111-1111-1111-111111111111"
	token := tokenFor(t, jwtService, callerID)

	recorder := doJSONRequest(t, router, http.MethodPost, "/api/v1/roles/assign-admin", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response dto.AssignAdminResponse
	decodeJSON(t, recorder.Body.Bytes(), &response)
	assert.True(t, response.Success)
	assert.Equal(t, "Admin role assigned to current user", response.Message)
	assert.Equal(t, callerID, response.UserID)

	require.Len(t, repo.assignments, 1)
	assert.Equal(t, callerID, repo.assignments[0].UserID)
	assert.Equal(t, role.RoleAdmin, repo.assignments[0].Role)
}

func TestAssignAdminCorpoVazioEquivaleAutoConcessao(t *testing.T) {
	repo := &fakeRoleRepository{}
	router, jwtService := setupRoleRouter(t, repo)

	callerID := "11111111-1111-1111-1111-111111111111"
	token := tokenFor(t, jwtService, callerID)

	recorder := doJSONRequest(t, router, http.MethodPost, "/api/v1/roles/assign-admin", gin.H{}, map[string]string{
		"Authorization": "Bearer " + token,
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, repo.assignments, 1)
	assert.Equal(t, callerID, repo.assignments[0].UserID)
}

func TestAssignAdminOutroUsuarioSemPrivilegio(t *testing.T) {
	repo := &fakeRoleRepository{}
	router, jwtService := setupRoleRouter(t, repo)

	token := tokenFor(t, jwtService, "11111111-1111-1111-1111-111111111111")

	recorder := doJSONRequest(t, router, http.MethodPost, "/api/v1/roles/assign-admin",
		dto.AssignAdminRequest{UserID: "22222222-2222-2222-2222-222222222222"},
		map[string]string{"Authorization": "Bearer " + token},
	)

	assert.Equal(t, http.StatusForbidden, recorder.Code)

	var body map[string]string
	decodeJSON(t, recorder.Body.Bytes(), &body)
	assert.Equal(t, "Forbidden", body["error"])
	assert.Equal(t, "Only admins can assign roles to other users", body["message"])
	assert.Empty(t, repo.assignments, "a concessão não pode ocorrer quando o chamador não é admin")
}

func TestAssignAdminOutroUsuarioPorAdmin(t *testing.T) {
	callerID := "11111111-1111-1111-1111-111111111111"
	targetID := "22222222-2222-2222-2222-222222222222"

	repo := &fakeRoleRepository{assignments: []role.Assignment{
		{ID: "a", UserID: callerID, Role: role.RoleAdmin},
	}}
	router, jwtService := setupRoleRouter(t, repo)

	token := tokenFor(t, jwtService, callerID)

	recorder := doJSONRequest(t, router, http.MethodPost, "/api/v1/roles/assign-admin",
		dto.AssignAdminRequest{UserID: targetID},
		map[string]string{"Authorization": "Bearer " + token},
	)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response dto.AssignAdminResponse
	decodeJSON(t, recorder.Body.Bytes(), &response)
	assert.Equal(t, "Admin role assigned to user", response.Message)
	assert.Equal(t, targetID, response.UserID)

	require.Len(t, repo.assignments, 2)
	assert.Equal(t, targetID, repo.assignments[1].UserID)
}

func TestAssignAdminIdempotente(t *testing.T) {
	repo := &fakeRoleRepository{}
	router, jwtService := setupRoleRouter(t, repo)

	callerID := "11111111-1111-1111-1111-111111111111"
	token := tokenFor(t, jwtService, callerID)
	headers := map[string]string{"Authorization": "Bearer " + token}

	first := doJSONRequest(t, router, http.MethodPost, "/api/v1/roles/assign-admin", nil, headers)
	second := doJSONRequest(t, router, http.MethodPost, "/api/v1/roles/assign-admin", nil, headers)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Len(t, repo.assignments, 1, "concessões repetidas não devem duplicar linhas")
}

func TestAssignAdminPreflight(t *testing.T) {
	repo := &fakeRoleRepository{}
	router, _ := setupRoleRouter(t, repo)

	recorder := doJSONRequest(t, router, http.MethodOptions, "/api/v1/roles/assign-admin", nil, map[string]string{
		"Origin":                        "https://app.example.com",
		"Access-Control-Request-Method": "POST",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, repo.assignments)
}

func TestMyRoles(t *testing.T) {
	callerID := "11111111-1111-1111-1111-111111111111"
	repo := &fakeRoleRepository{assignments: []role.Assignment{
		{ID: "a", UserID: callerID, Role: role.RoleUser},
		{ID: "b", UserID: callerID, Role: role.RoleAdmin},
		{ID: "c", UserID: "33333333-3333-3333-3333-333333333333", Role: role.RoleAdmin},
	}}
	router, jwtService := setupRoleRouter(t, repo)

	token := tokenFor(t, jwtService, callerID)

	recorder := doJSONRequest(t, router, http.MethodGet, "/api/v1/roles/me", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response dto.RoleListResponse
	decodeJSON(t, recorder.Body.Bytes(), &response)
	assert.Equal(t, callerID, response.UserID)
	assert.Len(t, response.Roles, 2)
}
