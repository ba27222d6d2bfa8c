package admin_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	appadmin "github.com/muhammadheryan/warung-order/application/admin"
	"github.com/muhammadheryan/warung-order/cmd/config"
	"github.com/muhammadheryan/warung-order/constant"
	redismocks "github.com/muhammadheryan/warung-order/mocks/repository/redis"
	"github.com/muhammadheryan/warung-order/model"
	redisrepo "github.com/muhammadheryan/warung-order/repository/redis"
	cerr "github.com/muhammadheryan/warung-order/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-for-jwt-signing"

func plainPasswordConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      testSecret,
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
			AdminPassword:  "warung-rahasia",
		},
	}
}

func TestAdminApp_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("warung-rahasia"), bcrypt.MinCost)

	type fields struct {
		config    *config.Config
		redisRepo *redismocks.RedisRepository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.AdminLoginRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: plain password",
			fields: fields{
				config:    plainPasswordConfig(),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			req: &model.AdminLoginRequest{Password: "warung-rahasia"},
			mockCall: func(f fields) {
				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), "admin", time.Hour).
					Return(nil).
					Once()
			},
		},
		{
			name: "success: bcrypt hash takes precedence",
			fields: fields{
				config: &config.Config{
					Auth: config.AuthConfig{
						JWTSecret:         testSecret,
						JWTExpiration:     time.Hour,
						SessionExpTime:    time.Hour,
						AdminPasswordHash: string(hashed),
						AdminPassword:     "ignored",
					},
				},
				redisRepo: redismocks.NewRedisRepository(t),
			},
			req: &model.AdminLoginRequest{Password: "warung-rahasia"},
			mockCall: func(f fields) {
				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), "admin", time.Hour).
					Return(nil).
					Once()
			},
		},
		{
			name: "error: wrong password",
			fields: fields{
				config:    plainPasswordConfig(),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			req:     &model.AdminLoginRequest{Password: "tebakan"},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: empty password",
			fields: fields{
				config:    plainPasswordConfig(),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			req:     &model.AdminLoginRequest{},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: no admin password configured",
			fields: fields{
				config:    &config.Config{Auth: config.AuthConfig{JWTSecret: testSecret}},
				redisRepo: redismocks.NewRedisRepository(t),
			},
			req:     &model.AdminLoginRequest{Password: "anything"},
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
		{
			name: "error: SetSession returns error",
			fields: fields{
				config:    plainPasswordConfig(),
				redisRepo: redismocks.NewRedisRepository(t),
			},
			req: &model.AdminLoginRequest{Password: "warung-rahasia"},
			mockCall: func(f fields) {
				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), "admin", time.Hour).
					Return(errors.New("redis error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appadmin.NewAdminApp(tt.fields.config, tt.fields.redisRepo)

			got, err := app.Login(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Token == "" {
				t.Fatal("Login() token should not be empty")
			}
			if !got.ExpiresAt.After(time.Now()) {
				t.Fatalf("Login() expires_at = %v, want a future time", got.ExpiresAt)
			}
		})
	}
}

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAdminApp_ValidateToken(t *testing.T) {
	valid := func() jwt.RegisteredClaims {
		return jwt.RegisteredClaims{
			Subject:   "admin",
			ID:        "sess-1",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
	}

	tests := []struct {
		name     string
		token    func(t *testing.T) string
		mockCall func(r *redismocks.RedisRepository)
		wantErr  bool
	}{
		{
			name:  "success: signed token with a live session",
			token: func(t *testing.T) string { return signToken(t, testSecret, valid()) },
			mockCall: func(r *redismocks.RedisRepository) {
				r.On("GetSession", mock.Anything, "sess-1").Return("admin", nil).Once()
			},
		},
		{
			name:  "error: session logged out or expired",
			token: func(t *testing.T) string { return signToken(t, testSecret, valid()) },
			mockCall: func(r *redismocks.RedisRepository) {
				r.On("GetSession", mock.Anything, "sess-1").Return("", redisrepo.ErrKeyNotFound).Once()
			},
			wantErr: true,
		},
		{
			name:    "error: wrong signing secret",
			token:   func(t *testing.T) string { return signToken(t, "other-secret", valid()) },
			wantErr: true,
		},
		{
			name: "error: expired token",
			token: func(t *testing.T) string {
				c := valid()
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return signToken(t, testSecret, c)
			},
			wantErr: true,
		},
		{
			name: "error: token without jti",
			token: func(t *testing.T) string {
				c := valid()
				c.ID = ""
				return signToken(t, testSecret, c)
			},
			wantErr: true,
		},
		{
			name:    "error: garbage",
			token:   func(t *testing.T) string { return "not-a-jwt" },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			redisRepo := redismocks.NewRedisRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(redisRepo)
			}
			app := appadmin.NewAdminApp(plainPasswordConfig(), redisRepo)

			got, err := app.ValidateToken(context.Background(), tt.token(t))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.ID != "sess-1" || got.Subject != "admin" {
				t.Fatalf("ValidateToken() = %+v", got)
			}
		})
	}
}

func TestAdminApp_LoginThenValidate(t *testing.T) {
	redisRepo := redismocks.NewRedisRepository(t)
	var sessionID string
	redisRepo.
		On("SetSession", mock.Anything, mock.AnythingOfType("string"), "admin", time.Hour).
		Run(func(args mock.Arguments) { sessionID = args.String(1) }).
		Return(nil).
		Once()
	redisRepo.
		On("GetSession", mock.Anything, mock.AnythingOfType("string")).
		Return("admin", nil).
		Once()

	app := appadmin.NewAdminApp(plainPasswordConfig(), redisRepo)
	res, err := app.Login(context.Background(), &model.AdminLoginRequest{Password: "warung-rahasia"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	session, err := app.ValidateToken(context.Background(), res.Token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if session.ID != sessionID {
		t.Fatalf("session id = %s, want %s", session.ID, sessionID)
	}
}

func TestAdminApp_Logout(t *testing.T) {
	redisRepo := redismocks.NewRedisRepository(t)
	redisRepo.On("DeleteSession", mock.Anything, "sess-1").Return(nil).Once()
	redisRepo.On("DeleteSession", mock.Anything, "sess-2").Return(errors.New("redis error")).Once()
	app := appadmin.NewAdminApp(plainPasswordConfig(), redisRepo)

	if err := app.Logout(context.Background(), "sess-1"); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if err := app.Logout(context.Background(), "sess-2"); !cerr.Is(err, constant.ErrInternal) {
		t.Fatalf("Logout() error = %v, want internal", err)
	}
}
