package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/errors"
	shared "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/models"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/utils"
)

// UsersService реализует операции над учётной записью:
//   - регистрация и выпуск токена
//   - аутентификация по email и паролю
//   - смена email и удаление своей учётной записи
//   - восстановление текущего пользователя по проверенному токену
type UsersService struct {
	users    UsersRepo
	hasher   crypto.PasswordHasher
	jwt      crypto.JWTConfig
	validate *Validator

	dummyOnce   sync.Once
	dummyDigest string
}

// UserInput — атрибуты запроса. nil означает, что ключ не передан.
type UserInput struct {
	Email        *string
	Password     *string
	Confirmation *string
}

// SecurityToken — выданный пользователю токен доступа.
type SecurityToken struct {
	Prefix string
	Token  string
}

func NewUsersService(users UsersRepo, hasher crypto.PasswordHasher, jwt crypto.JWTConfig, v *Validator) *UsersService {
	return &UsersService{
		users:    users,
		hasher:   hasher,
		jwt:      jwt,
		validate: v,
	}
}

// Register создаёт пользователя и сразу выдаёт ему токен.
//
// Все нарушения возвращаются одной *serr.ValidationError.
// Уникальность email проверяется заранее и ещё раз уникальным индексом
// при вставке: гонку двух регистраций ловит база.
func (s *UsersService) Register(ctx context.Context, in UserInput) (SecurityToken, error) {
	r := registration{
		Email:        utils.Deref(in.Email),
		Password:     utils.Deref(in.Password),
		Confirmation: in.Confirmation,
	}

	msgs := s.validate.Messages(r)
	if !isBlank(r.Email) {
		taken, err := s.emailTaken(ctx, r.Email, uuid.Nil)
		if err != nil {
			return SecurityToken{}, err
		}
		if taken {
			// сообщения по email идут первыми
			msgs = append([]string{MsgEmailTaken}, msgs...)
		}
	}
	if len(msgs) > 0 {
		return SecurityToken{}, serr.NewValidationError(msgs...)
	}

	digest, err := s.hasher.Hash(r.Password)
	if err != nil {
		return SecurityToken{}, fmt.Errorf("%w: hash password: %v", serr.ErrInternal, err)
	}

	u, err := s.users.Create(ctx, r.Email, digest)
	if err != nil {
		if errors.Is(err, serr.ErrAlreadyExists) {
			return SecurityToken{}, serr.NewValidationError(MsgEmailTaken)
		}
		return SecurityToken{}, err
	}

	return s.issue(u)
}

// Authenticate проверяет email и пароль и выдаёт токен.
//
// Неизвестный email и неверный пароль неотличимы: одно и то же сообщение,
// и в обоих случаях выполняется проверка хэша.
func (s *UsersService) Authenticate(ctx context.Context, in UserInput) (SecurityToken, error) {
	email := utils.Deref(in.Email)
	password := utils.Deref(in.Password)

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			s.verifyDummy(password)
			return SecurityToken{}, serr.NewValidationError(MsgInvalidCredentials).WithCause(serr.ErrInvalidCredentials)
		}
		return SecurityToken{}, err
	}

	ok, err := s.hasher.Verify(password, u.PasswordDigest)
	if err != nil {
		return SecurityToken{}, fmt.Errorf("%w: verify password: %v", serr.ErrInternal, err)
	}
	if !ok {
		return SecurityToken{}, serr.NewValidationError(MsgInvalidCredentials).WithCause(serr.ErrInvalidCredentials)
	}

	return s.issue(u)
}

// Update меняет email текущего пользователя, если ключ email передан.
// Без ключа email запись не трогается.
func (s *UsersService) Update(ctx context.Context, current models.User, in UserInput) error {
	if in.Email == nil {
		return nil
	}

	f := emailChange{Email: *in.Email}
	msgs := s.validate.Messages(f)
	if !isBlank(f.Email) {
		taken, err := s.emailTaken(ctx, f.Email, current.ID)
		if err != nil {
			return err
		}
		if taken {
			msgs = append(msgs, MsgEmailTaken)
		}
	}
	if len(msgs) > 0 {
		return serr.NewValidationError(msgs...)
	}

	if f.Email == current.Email {
		return nil
	}

	_, err := s.users.UpdateEmail(ctx, current.ID, f.Email)
	switch {
	case errors.Is(err, serr.ErrAlreadyExists):
		return serr.NewValidationError(MsgEmailTaken)
	case errors.Is(err, serr.ErrNotFound):
		// пользователя удалили между аутентификацией и обновлением
		return serr.ErrUnauthorized
	}
	return err
}

// Destroy удаляет учётную запись текущего пользователя.
// Повторное удаление уже удалённой записи не считается ошибкой.
func (s *UsersService) Destroy(ctx context.Context, current models.User) error {
	err := s.users.Delete(ctx, current.ID)
	if errors.Is(err, serr.ErrNotFound) {
		return nil
	}
	return err
}

// Resolve загружает пользователя по проверенному токену.
// Пользователь, удалённый после выдачи токена, — это serr.ErrUnauthorized.
func (s *UsersService) Resolve(ctx context.Context, p models.Principal) (models.User, error) {
	u, err := s.users.GetByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return models.User{}, serr.ErrUnauthorized
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *UsersService) issue(u models.User) (SecurityToken, error) {
	token, err := crypto.NewAccessToken(u.ID.String(), s.jwt)
	if err != nil {
		return SecurityToken{}, fmt.Errorf("%w: sign token: %v", serr.ErrInternal, err)
	}
	return SecurityToken{Prefix: shared.BearerPrefix, Token: token}, nil
}

// emailTaken сообщает, занят ли email кем-то, кроме self.
func (s *UsersService) emailTaken(ctx context.Context, email string, self uuid.UUID) (bool, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, serr.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.ID != self, nil
}

// verifyDummy тратит на неизвестный email столько же времени, сколько на проверку пароля.
func (s *UsersService) verifyDummy(password string) {
	s.dummyOnce.Do(func() {
		s.dummyDigest, _ = s.hasher.Hash("tabkeeper-timing-equalizer")
	})
	if s.dummyDigest != "" {
		_, _ = s.hasher.Verify(password, s.dummyDigest)
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
