package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mindease/mindease-api/internal/adapter/repository"
	"github.com/mindease/mindease-api/internal/domain/discussion"
	"github.com/mindease/mindease-api/internal/domain/flag"
	"github.com/mindease/mindease-api/internal/domain/mood"
	"github.com/mindease/mindease-api/internal/domain/role"
	"github.com/mindease/mindease-api/internal/domain/user"
	"github.com/mindease/mindease-api/internal/infrastructure/config"
	"github.com/mindease/mindease-api/pkg/auth"
	"github.com/mindease/mindease-api/pkg/completion"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter cria um router com o mesmo CORS permissivo da aplicação
func newTestRouter() *gin.Engine {
	router := gin.New()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:              []string{"authorization", "x-client-info", "apikey", "content-type"},
		OptionsResponseStatusCode: http.StatusOK,
	}))
	return router
}

// newTestJWT cria um serviço JWT de teste e um token para o usuário informado
func newTestJWT(t *testing.T) *auth.JWTService {
	t.Helper()
	cfg := &config.Config{
		JWTSecretKey:  "test-secret",
		JWTExpiration: time.Hour,
	}
	jwtService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	return jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, userID string) string {
	t.Helper()
	token, err := jwtService.GenerateToken(&user.User{ID: userID, Email: userID + "@example.com"}, "user")
	require.NoError(t, err)
	return token
}

// doJSONRequest executa uma requisição JSON contra o router de teste
func doJSONRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeJSON(t *testing.T, data []byte, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(data, out))
}

// fakeRoleRepository é uma implementação em memória de role.Repository.
// Assign reproduz a semântica ON CONFLICT DO NOTHING da tabela user_roles.
type fakeRoleRepository struct {
	assignments []role.Assignment
	assignErr   error
}

func (f *fakeRoleRepository) Assign(_ context.Context, a *role.Assignment) error {
	if f.assignErr != nil {
		return f.assignErr
	}
	for _, existing := range f.assignments {
		if existing.UserID == a.UserID && existing.Role == a.Role {
			return nil
		}
	}
	f.assignments = append(f.assignments, *a)
	return nil
}

func (f *fakeRoleRepository) FindByUser(_ context.Context, userID string) ([]role.Assignment, error) {
	result := []role.Assignment{}
	for _, a := range f.assignments {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeRoleRepository) HasRole(_ context.Context, userID string, r role.Role) (bool, error) {
	for _, a := range f.assignments {
		if a.UserID == userID && a.Role == r {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoleRepository) IsAdmin(ctx context.Context, userID string) (bool, error) {
	return f.HasRole(ctx, userID, role.RoleAdmin)
}

func (f *fakeRoleRepository) IsModeratorOrAdmin(ctx context.Context, userID string) (bool, error) {
	if ok, _ := f.HasRole(ctx, userID, role.RoleModerator); ok {
		return true, nil
	}
	return f.HasRole(ctx, userID, role.RoleAdmin)
}

// fakeCompleter registra o transcript recebido e devolve uma resposta fixa
type fakeCompleter struct {
	received [][]completion.Message
	response string
	err      error
}

func (f *fakeCompleter) Complete(_ context.Context, messages []completion.Message) (string, error) {
	f.received = append(f.received, messages)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// fakeUserRepository é uma implementação em memória de user.Repository
type fakeUserRepository struct {
	users map[string]*user.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*user.User{}}
}

func (f *fakeUserRepository) Create(_ context.Context, u *user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepository) FindByID(_ context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepository) Update(_ context.Context, u *user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepository) UpdateStatus(_ context.Context, id string, status user.Status) error {
	if u, ok := f.users[id]; ok {
		u.Status = status
	}
	return nil
}

func (f *fakeUserRepository) Exists(_ context.Context, id string) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

// fakeMoodRepository é uma implementação em memória de mood.Repository
type fakeMoodRepository struct {
	entries map[string]*mood.Entry
}

func newFakeMoodRepository() *fakeMoodRepository {
	return &fakeMoodRepository{entries: map[string]*mood.Entry{}}
}

func (f *fakeMoodRepository) Create(_ context.Context, e *mood.Entry) error {
	f.entries[e.ID] = e
	return nil
}

func (f *fakeMoodRepository) FindByID(_ context.Context, id string) (*mood.Entry, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, repository.ErrMoodEntryNotFound
	}
	return e, nil
}

func (f *fakeMoodRepository) ListByUser(_ context.Context, userID string, limit, offset int) ([]*mood.Entry, error) {
	result := []*mood.Entry{}
	for _, e := range f.entries {
		if e.UserID == userID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (f *fakeMoodRepository) CountByUser(_ context.Context, userID string) (int, error) {
	count := 0
	for _, e := range f.entries {
		if e.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeMoodRepository) Update(_ context.Context, e *mood.Entry) error {
	if _, ok := f.entries[e.ID]; !ok {
		return repository.ErrMoodEntryNotFound
	}
	f.entries[e.ID] = e
	return nil
}

func (f *fakeMoodRepository) UpdateSuggestion(_ context.Context, id, suggestion string) error {
	e, ok := f.entries[id]
	if !ok {
		return repository.ErrMoodEntryNotFound
	}
	e.AISuggestion = suggestion
	return nil
}

func (f *fakeMoodRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.entries[id]; !ok {
		return repository.ErrMoodEntryNotFound
	}
	delete(f.entries, id)
	return nil
}

// fakeFlagRepository é uma implementação em memória de flag.Repository
type fakeFlagRepository struct {
	flags map[string]*flag.Flag
}

func newFakeFlagRepository() *fakeFlagRepository {
	return &fakeFlagRepository{flags: map[string]*flag.Flag{}}
}

func (f *fakeFlagRepository) Create(_ context.Context, fl *flag.Flag) error {
	f.flags[fl.ID] = fl
	return nil
}

func (f *fakeFlagRepository) FindByID(_ context.Context, id string) (*flag.Flag, error) {
	fl, ok := f.flags[id]
	if !ok {
		return nil, repository.ErrFlagNotFound
	}
	return fl, nil
}

func (f *fakeFlagRepository) List(_ context.Context, status flag.Status, limit, offset int) ([]*flag.Flag, error) {
	result := []*flag.Flag{}
	for _, fl := range f.flags {
		if status == "" || fl.Status == status {
			result = append(result, fl)
		}
	}
	return result, nil
}

func (f *fakeFlagRepository) Count(_ context.Context, status flag.Status) (int, error) {
	count := 0
	for _, fl := range f.flags {
		if status == "" || fl.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeFlagRepository) Resolve(_ context.Context, id string, status flag.Status, notes, resolvedBy string) error {
	fl, ok := f.flags[id]
	if !ok {
		return repository.ErrFlagNotFound
	}
	fl.Status = status
	fl.ResolutionNotes = notes
	fl.ResolvedBy = resolvedBy
	return nil
}

// fakeDiscussionRepository é uma implementação em memória de discussion.Repository
type fakeDiscussionRepository struct {
	discussions map[string]*discussion.Discussion
	tags        []discussion.Tag
}

func newFakeDiscussionRepository() *fakeDiscussionRepository {
	return &fakeDiscussionRepository{discussions: map[string]*discussion.Discussion{}}
}

func (f *fakeDiscussionRepository) Create(_ context.Context, d *discussion.Discussion) error {
	f.discussions[d.ID] = d
	return nil
}

func (f *fakeDiscussionRepository) FindByID(_ context.Context, id string) (*discussion.Discussion, error) {
	d, ok := f.discussions[id]
	if !ok {
		return nil, repository.ErrDiscussionNotFound
	}
	return d, nil
}

func (f *fakeDiscussionRepository) ListVisible(_ context.Context, tag string, limit, offset int) ([]*discussion.Discussion, error) {
	result := []*discussion.Discussion{}
	for _, d := range f.discussions {
		if d.IsVisible() {
			result = append(result, d)
		}
	}
	return result, nil
}

func (f *fakeDiscussionRepository) CountVisible(_ context.Context, tag string) (int, error) {
	count := 0
	for _, d := range f.discussions {
		if d.IsVisible() {
			count++
		}
	}
	return count, nil
}

func (f *fakeDiscussionRepository) SetApproved(_ context.Context, id string, approved bool) error {
	d, ok := f.discussions[id]
	if !ok {
		return repository.ErrDiscussionNotFound
	}
	d.IsApproved = approved
	return nil
}

func (f *fakeDiscussionRepository) SetHidden(_ context.Context, id string, hidden bool) error {
	d, ok := f.discussions[id]
	if !ok {
		return repository.ErrDiscussionNotFound
	}
	d.IsHidden = hidden
	return nil
}

func (f *fakeDiscussionRepository) IncrementLikes(_ context.Context, id string) error {
	d, ok := f.discussions[id]
	if !ok {
		return repository.ErrDiscussionNotFound
	}
	d.LikeCount++
	return nil
}

func (f *fakeDiscussionRepository) ListTags(_ context.Context) ([]discussion.Tag, error) {
	return f.tags, nil
}
