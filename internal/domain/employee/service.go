package employee

import "context"

type EmployeeService interface {
	// Signup registers a new employee. The optional image is uploaded to
	// object storage first; an upload failure aborts the whole signup.
	Signup(ctx context.Context, req SignupRequest, image *ImageUpload) (Profile, error)

	// List returns the full roster with password hashes excluded.
	List(ctx context.Context) ([]Profile, error)

	GetProfile(ctx context.Context, id string) (Profile, error)

	// UpdateProfile mutates only name and avatar; fields not supplied keep
	// their stored values.
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest, image *ImageUpload) (Profile, error)

	// Delete removes the employee and synchronously cascades deletion of
	// every leave record they own.
	Delete(ctx context.Context, id string) error
}
