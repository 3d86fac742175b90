package employee

import (
	"context"
	"fmt"

	"github.com/leavedesk/leave-backend-go/internal/domain/employee"
	"github.com/leavedesk/leave-backend-go/internal/domain/leave"
	"github.com/leavedesk/leave-backend-go/internal/service/file"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	leaveRepo    leave.LeaveRepository
	fileService  file.FileService
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, leaveRepo leave.LeaveRepository, fileService file.FileService) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		leaveRepo:    leaveRepo,
		fileService:  fileService,
	}
}

// Signup implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Signup(ctx context.Context, req employee.SignupRequest, image *employee.ImageUpload) (employee.Profile, error) {
	// Explicit existence check so the duplicate outcome stays distinct
	// even though the unique index would also reject the insert.
	_, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return employee.Profile{}, employee.ErrEmailExists
	}
	if err != employee.ErrEmployeeNotFound {
		return employee.Profile{}, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.Profile{}, fmt.Errorf("failed to hash password: %w", err)
	}

	// Upload before persisting; an upload failure fails the whole signup.
	var avatarURL string
	if image != nil {
		avatarURL, err = s.fileService.UploadAvatar(ctx, req.Email, image.File, image.Filename)
		if err != nil {
			return employee.Profile{}, fmt.Errorf("failed to upload avatar: %w", err)
		}
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Avatar:       avatarURL,
	})
	if err != nil {
		return employee.Profile{}, err
	}

	return created.ToProfile(), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Profile, error) {
	emps, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	profiles := make([]employee.Profile, 0, len(emps))
	for _, emp := range emps {
		profiles = append(profiles, emp.ToProfile())
	}
	return profiles, nil
}

// GetProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetProfile(ctx context.Context, id string) (employee.Profile, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Profile{}, err
	}
	return emp.ToProfile(), nil
}

// UpdateProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateProfile(ctx context.Context, id string, req employee.UpdateProfileRequest, image *employee.ImageUpload) (employee.Profile, error) {
	// A missing image keeps the stored avatar reference unchanged.
	var avatarURL *string
	if image != nil {
		url, err := s.fileService.UploadAvatar(ctx, id, image.File, image.Filename)
		if err != nil {
			return employee.Profile{}, fmt.Errorf("failed to upload avatar: %w", err)
		}
		avatarURL = &url
	}

	emp, err := s.employeeRepo.UpdateProfile(ctx, id, req.Name, avatarURL)
	if err != nil {
		return employee.Profile{}, err
	}
	return emp.ToProfile(), nil
}

// Delete implements employee.EmployeeService. Leaves are removed first so a
// success response never leaves orphaned records behind.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if _, err := s.leaveRepo.DeleteByEmployee(ctx, id); err != nil {
		return fmt.Errorf("failed to delete leave history: %w", err)
	}

	return s.employeeRepo.Delete(ctx, id)
}
