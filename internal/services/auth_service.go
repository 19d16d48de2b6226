package services

import (
	"net/http"
	"net/mail"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/docpoint/booking-backend/internal/apperr"
	"github.com/docpoint/booking-backend/internal/dto"
	"github.com/docpoint/booking-backend/internal/models"
	"github.com/docpoint/booking-backend/internal/repository"
	"github.com/docpoint/booking-backend/internal/token"
)

var (
	ErrRoleInvalid = apperr.Validation("Role must be either PATIENT or DOCTOR")
	ErrEmailTaken  = apperr.Conflict("E-mail already in use")
	ErrWeakPassword = apperr.Validation(
		"Password should be more stronger (use at least one uppercase character, one special symbol and one number)")
	ErrEmailNotFound    = apperr.New(http.StatusBadRequest, apperr.KindNotFound, "E-mail not found")
	ErrPasswordMismatch = apperr.Validation("Password does not match")
)

// AuthService backs signup and signin. Accounts are immutable after
// creation; both operations end by issuing a fresh identity token.
type AuthService struct {
	users  repository.UserRepository
	tokens *token.Service
}

func NewAuthService(users repository.UserRepository, tokens *token.Service) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Signup(req *dto.SignupRequest) (string, error) {
	if req.FullName == "" {
		return "", apperr.Validation("Full name is required")
	}
	role, ok := models.ParseRole(req.Role)
	if !ok {
		return "", ErrRoleInvalid
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return "", apperr.Validation("A valid e-mail is required")
	}
	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return "", ErrEmailTaken
	} else if err != repository.ErrNotFound {
		return "", err
	}
	if !strongPassword(req.Password) {
		return "", ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := models.User{
		UserID:   string(role) + "_" + uuid.NewString(),
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
		FullName: req.FullName,
	}
	if err := s.users.Create(&user); err != nil {
		// unique index caught a concurrent signup with the same email
		if err == repository.ErrDuplicate {
			return "", ErrEmailTaken
		}
		return "", err
	}

	return s.tokens.Issue(models.Identity{
		UserID:   user.UserID,
		Role:     user.Role,
		FullName: user.FullName,
		Email:    user.Email,
	})
}

func (s *AuthService) Signin(req *dto.SigninRequest) (string, error) {
	if req.Password == "" {
		return "", apperr.Validation("E-mail and password are required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return "", apperr.Validation("A valid e-mail is required")
	}

	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if err == repository.ErrNotFound {
			return "", ErrEmailNotFound
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return "", ErrPasswordMismatch
	}

	// role re-read from the record, normalized uppercase
	role, _ := models.ParseRole(string(user.Role))
	return s.tokens.Issue(models.Identity{
		UserID:   user.UserID,
		Role:     role,
		FullName: user.FullName,
		Email:    user.Email,
	})
}

// strongPassword enforces the signup strength policy: at least 8
// characters with upper case, lower case, a digit and a symbol.
func strongPassword(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var upper, lower, digit, symbol bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}
