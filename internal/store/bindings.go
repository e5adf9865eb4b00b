package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/bodypilot/internal/command"
)

// Navigation roles a key can be bound to.
const (
	RoleUp           = "up"
	RoleDown         = "down"
	RoleForward      = "forward"
	RoleStrafeLeft   = "strafeLeft"
	RoleStrafeRight  = "strafeRight"
	RoleFlightToggle = "flightToggle"
)

// Roles lists every bindable role in display order.
var Roles = []string{
	RoleUp,
	RoleDown,
	RoleForward,
	RoleStrafeLeft,
	RoleStrafeRight,
	RoleFlightToggle,
}

// Binding assigns a key to one navigation role.
type Binding struct {
	ID        string
	Role      string
	KeyName   string
	UpdatedAt time.Time
}

// BindingRepository provides access to stored key bindings.
type BindingRepository struct {
	db *sql.DB
}

// Bindings returns the binding repository for this store.
func (s *Store) Bindings() *BindingRepository {
	return &BindingRepository{db: s.db}
}

func validRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Set binds a key to a role, replacing any previous binding for that role.
func (r *BindingRepository) Set(role, keyName string) (*Binding, error) {
	if !validRole(role) {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	if _, ok := command.KeyByName(keyName); !ok {
		return nil, fmt.Errorf("unknown key %q", keyName)
	}

	b := &Binding{
		ID:        uuid.NewString(),
		Role:      role,
		KeyName:   keyName,
		UpdatedAt: time.Now(),
	}

	_, err := r.db.Exec(
		`INSERT INTO bindings (id, role, key_name, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(role) DO UPDATE SET key_name = excluded.key_name, updated_at = excluded.updated_at`,
		b.ID, b.Role, b.KeyName, b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Get returns the binding for one role, or ErrNotFound.
func (r *BindingRepository) Get(role string) (*Binding, error) {
	b := &Binding{}
	err := r.db.QueryRow(
		`SELECT id, role, key_name, updated_at FROM bindings WHERE role = ?`,
		role,
	).Scan(&b.ID, &b.Role, &b.KeyName, &b.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// List returns every stored binding.
func (r *BindingRepository) List() ([]*Binding, error) {
	rows, err := r.db.Query(`SELECT id, role, key_name, updated_at FROM bindings ORDER BY role`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bindings []*Binding
	for rows.Next() {
		b := &Binding{}
		if err := rows.Scan(&b.ID, &b.Role, &b.KeyName, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
	}
	return bindings, rows.Err()
}

// Delete removes a role's binding, reverting it to the default key.
func (r *BindingRepository) Delete(role string) error {
	result, err := r.db.Exec(`DELETE FROM bindings WHERE role = ?`, role)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// KeyMap builds the effective key map: defaults overridden by stored
// bindings. Rows holding keys that no longer resolve are ignored.
func (r *BindingRepository) KeyMap() (command.KeyMap, error) {
	km := command.DefaultKeyMap()

	bindings, err := r.List()
	if err != nil {
		return km, err
	}

	for _, b := range bindings {
		key, ok := command.KeyByName(b.KeyName)
		if !ok {
			continue
		}
		switch b.Role {
		case RoleUp:
			km.Up = key
		case RoleDown:
			km.Down = key
		case RoleForward:
			km.Forward = key
		case RoleStrafeLeft:
			km.StrafeLeft = key
		case RoleStrafeRight:
			km.StrafeRight = key
		case RoleFlightToggle:
			km.FlightToggle = key
		}
	}
	return km, nil
}
