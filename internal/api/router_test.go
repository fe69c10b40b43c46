package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/nexa-agro/auth-api/internal/core/domain"
	"github.com/nexa-agro/auth-api/internal/core/token"
)

// memDirectory is an in-memory UserDirectory with the reference data the
// migrations would seed.
type memDirectory struct {
	users  map[string]*domain.User
	nextID int64
}

func newMemDirectory() *memDirectory {
	return &memDirectory{users: make(map[string]*domain.User), nextID: 1}
}

var (
	memTipos = map[string]*domain.UserType{
		"productor":     {ID: 1, Nombre: "productor", Descripcion: "Productor agrícola"},
		"empresa":       {ID: 2, Nombre: "empresa", Descripcion: "Empresa compradora"},
		"transportista": {ID: 3, Nombre: "transportista", Descripcion: "Transportista de carga"},
	}
	memPlan = &domain.SubscriptionPlan{ID: 1, Nombre: "basico", Alcance: "municipal", IncluyeOfertaDemanda: true}
)

func (d *memDirectory) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := d.users[email]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, domain.ErrUserNotFound
}

func (d *memDirectory) FindUserByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range d.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (d *memDirectory) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := d.users[user.Email]; exists {
		return nil, domain.ErrEmailRegistered
	}
	clone := *user
	clone.ID = d.nextID
	clone.FechaRegistro = time.Now().UTC()
	d.nextID++
	stored := clone
	d.users[clone.Email] = &stored
	return &clone, nil
}

func (d *memDirectory) FindUserTypeByName(_ context.Context, name string) (*domain.UserType, error) {
	if t, ok := memTipos[name]; ok {
		return t, nil
	}
	return nil, domain.ErrInvalidUserType
}

func (d *memDirectory) FindSubscriptionPlanByName(_ context.Context, name string) (*domain.SubscriptionPlan, error) {
	if name == memPlan.Nombre {
		return memPlan, nil
	}
	return nil, domain.ErrPlanNotFound
}

func newTestRouter(dir *memDirectory) http.Handler {
	return NewRouter(RouterDeps{
		Directory: dir,
		Codec:     token.NewCodec("secreto", time.Hour),
		Log:       zerolog.Nop(),
	})
}

func doJSON(t *testing.T, h http.Handler, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const registroJuan = `{"nombre":"Juan Pérez","email":"juan@test.com","contrasena":"123456","tipo_usuario":"productor"}`

func TestRouter_RegisterLoginProfileFlow(t *testing.T) {
	h := newTestRouter(newMemDirectory())

	// Registro
	rec := doJSON(t, h, http.MethodPost, "/auth/registro", registroJuan, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("registro: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var registered struct {
		Usuario struct {
			Email string `json:"email"`
		} `json:"usuario"`
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &registered); err != nil {
		t.Fatalf("decode registro response: %v", err)
	}
	if registered.Usuario.Email != "juan@test.com" || registered.Token == "" {
		t.Fatalf("unexpected registro response: %s", rec.Body.String())
	}

	// Login
	rec = doJSON(t, h, http.MethodPost, "/auth/login", `{"email":"juan@test.com","contrasena":"123456"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var logged struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &logged); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if logged.Token == "" {
		t.Fatalf("login did not return a token")
	}

	// Perfil with the login token
	rec = doJSON(t, h, http.MethodGet, "/auth/perfil", "", logged.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("perfil: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Juan Pérez") {
		t.Fatalf("perfil missing nombre: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "contrasena") {
		t.Fatalf("perfil response leaks contrasena: %s", rec.Body.String())
	}
}

func TestRouter_RegisterDuplicateEmail(t *testing.T) {
	h := newTestRouter(newMemDirectory())

	if rec := doJSON(t, h, http.MethodPost, "/auth/registro", registroJuan, ""); rec.Code != http.StatusCreated {
		t.Fatalf("first registro failed: %d", rec.Code)
	}
	rec := doJSON(t, h, http.MethodPost, "/auth/registro", registroJuan, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d (%s)", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "mensaje") {
		t.Fatalf("error body missing mensaje envelope: %s", rec.Body.String())
	}
}

func TestRouter_RegisterValidation(t *testing.T) {
	h := newTestRouter(newMemDirectory())

	cases := []string{
		`{"email":"a@b.com","contrasena":"123456","tipo_usuario":"productor"}`,
		`{"nombre":"Juan","email":"a@b.com","contrasena":"12345","tipo_usuario":"productor"}`,
		`{"nombre":"Juan","email":"a@b.com","contrasena":"123456","tipo_usuario":"comprador"}`,
	}
	for _, body := range cases {
		rec := doJSON(t, h, http.MethodPost, "/auth/registro", body, "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestRouter_LoginFailures(t *testing.T) {
	dir := newMemDirectory()
	h := newTestRouter(dir)

	if rec := doJSON(t, h, http.MethodPost, "/auth/registro", registroJuan, ""); rec.Code != http.StatusCreated {
		t.Fatalf("registro failed: %d", rec.Code)
	}

	// Wrong password and unknown email must be indistinguishable.
	recWrong := doJSON(t, h, http.MethodPost, "/auth/login", `{"email":"juan@test.com","contrasena":"incorrecta"}`, "")
	recGhost := doJSON(t, h, http.MethodPost, "/auth/login", `{"email":"nadie@test.com","contrasena":"123456"}`, "")
	if recWrong.Code != http.StatusUnauthorized || recGhost.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", recWrong.Code, recGhost.Code)
	}
	if recWrong.Body.String() != recGhost.Body.String() {
		t.Fatalf("enumeration leak: %s vs %s", recWrong.Body.String(), recGhost.Body.String())
	}

	// Inactive account gets its own status.
	dir.users["juan@test.com"].Estado = "suspendido"
	rec := doJSON(t, h, http.MethodPost, "/auth/login", `{"email":"juan@test.com","contrasena":"123456"}`, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for an inactive account, got %d", rec.Code)
	}
}

func TestRouter_PerfilRequiresToken(t *testing.T) {
	h := newTestRouter(newMemDirectory())

	if rec := doJSON(t, h, http.MethodGet, "/auth/perfil", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	if rec := doJSON(t, h, http.MethodGet, "/auth/perfil", "", "basura"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with a garbage token, got %d", rec.Code)
	}

	// A token signed with another secret is refused.
	foreign, err := token.NewCodec("otro", time.Hour).Issue(1, "x@y.com", "productor")
	if err != nil {
		t.Fatalf("issue foreign token: %v", err)
	}
	if rec := doJSON(t, h, http.MethodGet, "/auth/perfil", "", foreign); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with a foreign token, got %d", rec.Code)
	}
}

func TestRouter_PerfilRejectsUnknownRole(t *testing.T) {
	h := newTestRouter(newMemDirectory())

	// Valid signature, but the role claim is outside the marketplace set.
	raw, err := token.NewCodec("secreto", time.Hour).Issue(1, "x@y.com", "admin")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if rec := doJSON(t, h, http.MethodGet, "/auth/perfil", "", raw); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for an unknown role, got %d", rec.Code)
	}
}

func TestRouter_HealthLiveness(t *testing.T) {
	h := newTestRouter(newMemDirectory())
	if rec := doJSON(t, h, http.MethodGet, "/health", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
