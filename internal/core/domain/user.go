package domain

import "time"

// Marketplace roles. A user belongs to exactly one of these.
const (
	RoleProductor     = "productor"
	RoleEmpresa       = "empresa"
	RoleTransportista = "transportista"
)

// EstadoActivo is the only account state allowed to log in.
const EstadoActivo = "activo"

// DefaultPlanName is the subscription plan assigned at registration.
const DefaultPlanName = "basico"

// ValidRole reports whether name is one of the marketplace roles.
func ValidRole(name string) bool {
	switch name {
	case RoleProductor, RoleEmpresa, RoleTransportista:
		return true
	}
	return false
}

// UserType is immutable reference data describing a role category.
type UserType struct {
	ID          int64  `json:"-"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}

// SubscriptionPlan is a named service tier. Reference data for this service;
// plan changes belong to billing flows outside this API.
type SubscriptionPlan struct {
	ID                   int64    `json:"-"`
	Nombre               string   `json:"nombre"`
	Alcance              string   `json:"alcance"`
	Mensualidad          *float64 `json:"mensualidad,omitempty"`
	IncluyePublicidad    bool     `json:"incluye_publicidad"`
	IncluyeFiltros       bool     `json:"incluye_filtros"`
	IncluyeOfertaDemanda bool     `json:"incluye_oferta_demanda"`
}

// Ubicacion is the optional geographic location attached to a user.
type Ubicacion struct {
	Ciudad       string  `json:"ciudad,omitempty"`
	Departamento string  `json:"departamento,omitempty"`
	Latitud      float64 `json:"latitud,omitempty"`
	Longitud     float64 `json:"longitud,omitempty"`
}

// User models a registered marketplace account. The password hash is never
// serialized to clients.
type User struct {
	ID                int64             `json:"id_usuario"`
	Nombre            string            `json:"nombre"`
	Email             string            `json:"email"`
	PasswordHash      string            `json:"-"`
	Telefono          string            `json:"telefono,omitempty"`
	Direccion         string            `json:"direccion,omitempty"`
	Estado            string            `json:"estado"`
	SuscripcionActiva bool              `json:"suscripcion_activa"`
	FechaRegistro     time.Time         `json:"fecha_registro"`
	TipoUsuario       *UserType         `json:"tipo_usuario,omitempty"`
	Suscripcion       *SubscriptionPlan `json:"suscripcion,omitempty"`
	Ubicacion         *Ubicacion        `json:"ubicacion,omitempty"`

	// Foreign keys, only meaningful to the directory.
	TipoUsuarioID int64 `json:"-"`
	SuscripcionID int64 `json:"-"`
}
