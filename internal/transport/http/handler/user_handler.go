package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-user-api/internal/domain"
	"go-user-api/internal/repo"
	"go-user-api/internal/transport/http/ez"
	mdw "go-user-api/internal/transport/http/middleware"
	resp "go-user-api/internal/transport/http/response"
	"go-user-api/pkg/utils"
)

type userOut struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type listOut struct {
	Users []domain.User `json:"users"`
}

type msgOut struct {
	Message string `json:"message"`
}

// MountUserActions 注册全部接口。public 不走认证（仅 /register），
// authed 已挂 BasicAuth。
func MountUserActions(public, authed *gin.RouterGroup, db *gorm.DB, log *zap.Logger) {
	ezPublic := ez.New(public, log)
	ezAuth := ez.New(authed, log)

	// --- POST /register ---
	type registerIn struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
		Name     *string `json:"name"`
	}
	ez.RegisterAction[registerIn, userOut](ezPublic, db, ez.Action[registerIn, userOut]{
		Method: http.MethodPost,
		Path:   "/register",
		Binder: ez.BindJSON,
		Status: http.StatusCreated,
		UseTx:  true,
		Handler: func(c *gin.Context, tx *gorm.DB, in *registerIn) (userOut, error) {
			if in.Username == nil && in.Email == nil && in.Password == nil && in.Name == nil {
				return userOut{}, ez.BadRequest(resp.MsgNoInput)
			}
			if f := utils.FirstMissing(
				utils.Required{Name: "username", Set: in.Username != nil},
				utils.Required{Name: "email", Set: in.Email != nil},
				utils.Required{Name: "password", Set: in.Password != nil},
				utils.Required{Name: "name", Set: in.Name != nil},
			); f != "" {
				return userOut{}, ez.BadRequest(f + " is required")
			}
			if !utils.ValidateEmail(*in.Email) {
				return userOut{}, ez.BadRequest(resp.MsgBadEmail)
			}

			users := repo.NewUserRepo(tx)
			if u, err := users.FindByUsername(*in.Username); err != nil {
				return userOut{}, ez.Internal(err)
			} else if u != nil {
				return userOut{}, ez.Conflict("Username already exists")
			}
			if u, err := users.FindByEmail(*in.Email); err != nil {
				return userOut{}, ez.Internal(err)
			} else if u != nil {
				return userOut{}, ez.Conflict("Email already exists")
			}

			hash, err := utils.HashPassword(*in.Password)
			if err != nil {
				return userOut{}, ez.Internal(err)
			}
			u := &domain.User{
				Username:     *in.Username,
				Email:        *in.Email,
				PasswordHash: hash,
				Name:         *in.Name,
			}
			if err := users.Create(u); err != nil {
				// 并发注册抢同一个唯一槽位：输家在这里拿到 409
				if errors.Is(err, domain.ErrDuplicate) {
					return userOut{}, ez.Conflict("Username or email already exists")
				}
				return userOut{}, ez.Internal(err)
			}
			return userOut{Message: resp.MsgRegistered, User: u}, nil
		},
	})

	// --- GET /login ---
	ez.RegisterAction[struct{}, userOut](ezAuth, db, ez.Action[struct{}, userOut]{
		Method: http.MethodGet,
		Path:   "/login",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, _ *gorm.DB, _ *struct{}) (userOut, error) {
			u, ok := mdw.Principal(c)
			if !ok {
				return userOut{}, ez.Unauthorized(resp.MsgUnauthorized)
			}
			return userOut{Message: resp.MsgLoginOK, User: u}, nil
		},
	})

	// --- GET /users ---
	ez.RegisterAction[struct{}, listOut](ezAuth, db, ez.Action[struct{}, listOut]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (listOut, error) {
			users, err := repo.NewUserRepo(tx).List()
			if err != nil {
				return listOut{}, ez.Internal(err)
			}
			return listOut{Users: users}, nil
		},
	})

	// --- GET /users/:id ---
	ez.RegisterAction[struct{}, domain.User](ezAuth, db, ez.Action[struct{}, domain.User]{
		Method: http.MethodGet,
		Path:   "/users/:id",
		Binder: ez.BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (domain.User, error) {
			id, err := paramID(c)
			if err != nil {
				return domain.User{}, ez.NotFound(resp.MsgRouteMissing)
			}
			u, err := repo.NewUserRepo(tx).FindByID(id)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return domain.User{}, ez.NotFound(resp.MsgRouteMissing)
				}
				return domain.User{}, ez.Internal(err)
			}
			return *u, nil
		},
	})

	// --- PUT /users/:id ---
	type updateIn struct {
		Username *string `json:"username"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
		Name     *string `json:"name"`
	}
	ez.RegisterAction[updateIn, userOut](ezAuth, db, ez.Action[updateIn, userOut]{
		Method: http.MethodPut,
		Path:   "/users/:id",
		Binder: ez.BindJSON,
		UseTx:  true,
		Handler: func(c *gin.Context, tx *gorm.DB, in *updateIn) (userOut, error) {
			id, err := paramID(c)
			if err != nil {
				return userOut{}, ez.NotFound(resp.MsgRouteMissing)
			}
			users := repo.NewUserRepo(tx)
			if _, err := users.FindByID(id); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return userOut{}, ez.NotFound(resp.MsgRouteMissing)
				}
				return userOut{}, ez.Internal(err)
			}
			if in.Username == nil && in.Email == nil && in.Password == nil && in.Name == nil {
				return userOut{}, ez.BadRequest(resp.MsgNoInput)
			}

			patch := domain.UserPatch{Name: in.Name}
			if in.Username != nil {
				other, err := users.FindByUsername(*in.Username)
				if err != nil {
					return userOut{}, ez.Internal(err)
				}
				if other != nil && other.ID != id {
					return userOut{}, ez.Conflict("Username already taken")
				}
				patch.Username = in.Username
			}
			if in.Email != nil {
				if !utils.ValidateEmail(*in.Email) {
					return userOut{}, ez.BadRequest(resp.MsgBadEmail)
				}
				other, err := users.FindByEmail(*in.Email)
				if err != nil {
					return userOut{}, ez.Internal(err)
				}
				if other != nil && other.ID != id {
					return userOut{}, ez.Conflict("Email already taken")
				}
				patch.Email = in.Email
			}
			if in.Password != nil {
				hash, err := utils.HashPassword(*in.Password)
				if err != nil {
					return userOut{}, ez.Internal(err)
				}
				patch.PasswordHash = &hash
			}

			u, err := users.Update(id, patch)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrNotFound):
					return userOut{}, ez.NotFound(resp.MsgRouteMissing)
				case errors.Is(err, domain.ErrDuplicate):
					return userOut{}, ez.Conflict("Username or email already taken")
				}
				return userOut{}, ez.Internal(err)
			}
			return userOut{Message: resp.MsgUpdated, User: u}, nil
		},
	})

	// --- DELETE /users/:id ---
	ez.RegisterAction[struct{}, msgOut](ezAuth, db, ez.Action[struct{}, msgOut]{
		Method: http.MethodDelete,
		Path:   "/users/:id",
		Binder: ez.BindNone,
		UseTx:  true,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (msgOut, error) {
			id, err := paramID(c)
			if err != nil {
				return msgOut{}, ez.NotFound(resp.MsgRouteMissing)
			}
			if err := repo.NewUserRepo(tx).Delete(id); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return msgOut{}, ez.NotFound(resp.MsgRouteMissing)
				}
				return msgOut{}, ez.Internal(err)
			}
			return msgOut{Message: resp.MsgDeleted}, nil
		},
	})
}

func paramID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
