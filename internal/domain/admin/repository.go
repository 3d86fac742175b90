package admin

import "context"

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (Admin, error)

	// Upsert inserts the admin if no document with the same email exists.
	// Used by the seed command only.
	Upsert(ctx context.Context, adm Admin) (Admin, bool, error)
}
