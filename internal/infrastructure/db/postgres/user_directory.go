package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nexa-agro/auth-api/internal/core/domain"
)

// UserDirectory implements ports.UserDirectory on PostgreSQL.
type UserDirectory struct {
	pool *pgxpool.Pool
}

func NewUserDirectory(pool *pgxpool.Pool) *UserDirectory {
	return &UserDirectory{pool: pool}
}

const userColumns = `
	u.id_usuario, u.nombre, u.email, u.contrasena, u.telefono, u.direccion,
	u.estado, u.suscripcion_activa, u.fecha_registro, u.ubicacion,
	t.id_tipo_usuario, t.nombre, t.descripcion,
	s.id_suscripcion, s.nombre, s.alcance, s.mensualidad,
	s.incluye_publicidad, s.incluye_filtros, s.incluye_oferta_demanda`

const userJoins = `
	FROM usuarios u
	JOIN tipos_usuario t ON t.id_tipo_usuario = u.id_tipo_usuario
	JOIN suscripciones s ON s.id_suscripcion = u.id_suscripcion`

func (d *UserDirectory) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := d.pool.QueryRow(ctx, "SELECT"+userColumns+userJoins+" WHERE u.email = $1", email)
	return scanUser(row)
}

func (d *UserDirectory) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	row := d.pool.QueryRow(ctx, "SELECT"+userColumns+userJoins+" WHERE u.id_usuario = $1", id)
	return scanUser(row)
}

// CreateUser inserts the user and reads back the joined record so the caller
// gets the generated identity and registration timestamp. The UNIQUE
// constraint on email is the authoritative duplicate guard; a violation maps
// to domain.ErrEmailRegistered regardless of any earlier pre-check.
func (d *UserDirectory) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	var id int64
	err := d.pool.QueryRow(ctx, `
		INSERT INTO usuarios (
			nombre, email, contrasena, telefono, direccion,
			estado, suscripcion_activa, id_tipo_usuario, id_suscripcion
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id_usuario`,
		user.Nombre,
		user.Email,
		user.PasswordHash,
		nullIfEmpty(user.Telefono),
		nullIfEmpty(user.Direccion),
		user.Estado,
		user.SuscripcionActiva,
		user.TipoUsuarioID,
		user.SuscripcionID,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrEmailRegistered
		}
		return nil, fmt.Errorf("insert usuario: %w", err)
	}

	return d.FindUserByID(ctx, id)
}

func (d *UserDirectory) FindUserTypeByName(ctx context.Context, name string) (*domain.UserType, error) {
	var t domain.UserType
	err := d.pool.QueryRow(ctx, `
		SELECT id_tipo_usuario, nombre, descripcion
		FROM tipos_usuario
		WHERE nombre = $1`, name,
	).Scan(&t.ID, &t.Nombre, &t.Descripcion)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidUserType
		}
		return nil, fmt.Errorf("find tipo_usuario: %w", err)
	}
	return &t, nil
}

func (d *UserDirectory) FindSubscriptionPlanByName(ctx context.Context, name string) (*domain.SubscriptionPlan, error) {
	var p domain.SubscriptionPlan
	err := d.pool.QueryRow(ctx, `
		SELECT id_suscripcion, nombre, alcance, mensualidad,
		       incluye_publicidad, incluye_filtros, incluye_oferta_demanda
		FROM suscripciones
		WHERE nombre = $1`, name,
	).Scan(&p.ID, &p.Nombre, &p.Alcance, &p.Mensualidad,
		&p.IncluyePublicidad, &p.IncluyeFiltros, &p.IncluyeOfertaDemanda)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("find suscripcion: %w", err)
	}
	return &p, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u         domain.User
		t         domain.UserType
		p         domain.SubscriptionPlan
		telefono  *string
		direccion *string
		ubicacion []byte
	)
	err := row.Scan(
		&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &telefono, &direccion,
		&u.Estado, &u.SuscripcionActiva, &u.FechaRegistro, &ubicacion,
		&t.ID, &t.Nombre, &t.Descripcion,
		&p.ID, &p.Nombre, &p.Alcance, &p.Mensualidad,
		&p.IncluyePublicidad, &p.IncluyeFiltros, &p.IncluyeOfertaDemanda,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan usuario: %w", err)
	}

	if telefono != nil {
		u.Telefono = *telefono
	}
	if direccion != nil {
		u.Direccion = *direccion
	}
	if len(ubicacion) > 0 {
		var loc domain.Ubicacion
		if err := json.Unmarshal(ubicacion, &loc); err != nil {
			return nil, fmt.Errorf("decode ubicacion: %w", err)
		}
		u.Ubicacion = &loc
	}
	u.TipoUsuarioID = t.ID
	u.SuscripcionID = p.ID
	u.TipoUsuario = &t
	u.Suscripcion = &p
	return &u, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
