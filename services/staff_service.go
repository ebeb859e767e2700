package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/devnaspi/ThelittlelemonApi/entity"
	"github.com/devnaspi/ThelittlelemonApi/repository"
)

// StaffService manages the manager and delivery-crew rosters. The target role
// is always an explicit argument so both rosters share one code path.
type StaffService struct {
	UserRepo *repository.UserRepository
}

func NewStaffService(repo *repository.UserRepository) *StaffService {
	return &StaffService{UserRepo: repo}
}

type MemberOut struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type AddMemberIn struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// ListMembers returns id and username only.
func (s *StaffService) ListMembers(role string) ([]MemberOut, error) {
	users, err := s.UserRepo.ListByRole(role)
	if err != nil {
		return nil, err
	}
	out := make([]MemberOut, 0, len(users))
	for _, u := range users {
		out = append(out, MemberOut{ID: u.ID, Username: u.Username})
	}
	return out, nil
}

// AddMember creates the account and assigns the role. A taken username is a
// conflict, not a bare store error.
func (s *StaffService) AddMember(role string, in *AddMemberIn) (*entity.User, error) {
	username := strings.TrimSpace(in.Username)

	count, err := s.UserRepo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Username: username,
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: string(hashed),
		Role:     role,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetMember looks the user up within the role.
func (s *StaffService) GetMember(role string, userID uint) (*MemberOut, error) {
	user, err := s.UserRepo.FindByIDAndRole(userID, role)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &MemberOut{ID: user.ID, Username: user.Username}, nil
}

// RemoveMember takes the user out of the role by demoting them to customer.
// The account itself survives.
func (s *StaffService) RemoveMember(role string, userID uint) error {
	if _, err := s.GetMember(role, userID); err != nil {
		return err
	}
	return s.UserRepo.UpdateRole(userID, entity.RoleCustomer)
}
