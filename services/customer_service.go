package services

import (
	"errors"
	"fmt"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-reservation/models"
)

type CustomerService struct {
	DB     *gorm.DB
	Logger zerolog.Logger
}

func NewCustomerService(db *gorm.DB, logger zerolog.Logger) *CustomerService {
	return &CustomerService{DB: db, Logger: logger}
}

// ResolveOrCreate finds the customer owning the email or creates a passwordless
// guest record. Concurrent calls for the same new email converge on one row:
// the unique index on email is the backstop, and a duplicate-key violation is
// resolved by retrying the lookup once.
func (s *CustomerService) ResolveOrCreate(email, firstName, lastName, phoneNumber string) (*models.Customer, error) {
	return resolveOrCreateCustomer(s.DB, email, firstName, lastName, phoneNumber)
}

// Register creates a customer with a bcrypt password hash and the USER role.
func (s *CustomerService) Register(email, firstName, lastName, phoneNumber, password string) (*models.Customer, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	var existing models.Customer
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing customer: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	customer := models.Customer{
		Email:       email,
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		PhoneNumber: strings.TrimSpace(phoneNumber),
		Password:    string(hash),
		Roles:       defaultRoles(),
	}
	if err := s.DB.Create(&customer).Error; err != nil {
		if isDuplicateKeyErr(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.Logger.Info().Str("email", email).Uint("customer_id", customer.ID).Msg("customer registered")
	return &customer, nil
}

// GetByEmail returns the customer owning the (normalized) email.
func (s *CustomerService) GetByEmail(email string) (*models.Customer, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	var customer models.Customer
	if err := s.DB.Where("email = ?", email).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}
	return &customer, nil
}

// resolveOrCreateCustomer is shared with the booking transaction so guest
// resolution participates in the booking's atomicity.
func resolveOrCreateCustomer(db *gorm.DB, email, firstName, lastName, phoneNumber string) (*models.Customer, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	var customer models.Customer
	err := db.Where("email = ?", email).First(&customer).Error
	if err == nil {
		return &customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	customer = models.Customer{
		Email:       email,
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		PhoneNumber: strings.TrimSpace(phoneNumber),
		Roles:       defaultRoles(),
	}
	if err := db.Create(&customer).Error; err != nil {
		if !isDuplicateKeyErr(err) {
			return nil, fmt.Errorf("failed to create customer: %w", err)
		}
		// Lost the race: another request created this email first. Reuse it.
		customer = models.Customer{}
		if err := db.Where("email = ?", email).First(&customer).Error; err != nil {
			return nil, fmt.Errorf("failed to reload customer after duplicate email: %w", err)
		}
	}
	return &customer, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func defaultRoles() datatypes.JSON {
	return datatypes.JSON([]byte(`["` + models.RoleUser + `"]`))
}

// isDuplicateKeyErr recognizes unique-constraint violations across gorm, the
// MySQL driver and the sqlite driver used in tests.
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint")
}
